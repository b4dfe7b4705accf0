package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/user"
	"github.com/vforit/ticktrack/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *userhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	// Registration is restricted to freshly logged-in users.
	engine.POST("/register",
		config.AuthMiddleware.RequireAuth(),
		config.AuthMiddleware.RequireFresh(),
		config.AuthHandler.Register)

	engine.POST("/login", config.AuthHandler.Login)
	engine.POST("/refresh", config.AuthHandler.Refresh)

	engine.POST("/logout",
		config.AuthMiddleware.RequireAuth(),
		config.AuthHandler.Logout)
}
