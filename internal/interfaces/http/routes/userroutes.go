package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/user"
	"github.com/vforit/ticktrack/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/user")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("", config.UserHandler.ListUsers)

		users.GET("/:id", config.UserHandler.GetUser)
		users.PUT("/:id", config.UserHandler.UpdateUser)
		users.DELETE("/:id", config.UserHandler.DeleteUser)
	}
}
