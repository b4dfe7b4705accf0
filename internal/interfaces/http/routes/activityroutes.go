package routes

import (
	"github.com/gin-gonic/gin"

	activityhandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/activity"
	"github.com/vforit/ticktrack/internal/interfaces/http/middleware"
)

type ActivityRouteConfig struct {
	ActivityHandler *activityhandlers.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupActivityRoutes(engine *gin.Engine, config *ActivityRouteConfig) {
	logs := engine.Group("/activity-log")
	logs.Use(config.AuthMiddleware.RequireAuth())
	{
		logs.GET("", config.ActivityHandler.ListLogs)
		logs.POST("", config.ActivityHandler.CreateLog)

		// Filtered lists before the generic :id routes
		logs.GET("/user/:id", config.ActivityHandler.ListLogsByUser)
		logs.GET("/ticket/:id", config.ActivityHandler.ListLogsByTicket)

		logs.GET("/:id", config.ActivityHandler.GetLog)
		logs.PUT("/:id", config.ActivityHandler.UpdateLog)
		logs.DELETE("/:id", config.ActivityHandler.DeleteLog)
	}
}
