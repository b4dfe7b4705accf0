package routes

import (
	"github.com/gin-gonic/gin"

	taxonomyhandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/taxonomy"
	"github.com/vforit/ticktrack/internal/interfaces/http/middleware"
)

type ConfigRouteConfig struct {
	ConfigHandler  *taxonomyhandlers.ConfigHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupConfigRoutes(engine *gin.Engine, config *ConfigRouteConfig) {
	entries := engine.Group("/configmaster")
	entries.Use(config.AuthMiddleware.RequireAuth())
	{
		entries.GET("", config.ConfigHandler.ListEntries)
		entries.POST("",
			config.AuthMiddleware.RequireFresh(),
			config.ConfigHandler.CreateEntry)

		entries.GET("/:id", config.ConfigHandler.GetEntry)
		entries.PUT("/:id", config.ConfigHandler.UpdateEntry)
		entries.DELETE("/:id", config.ConfigHandler.DeleteEntry)
	}
}
