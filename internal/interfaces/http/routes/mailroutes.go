package routes

import (
	"github.com/gin-gonic/gin"

	mailhandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/mail"
	"github.com/vforit/ticktrack/internal/interfaces/http/middleware"
)

type MailRouteConfig struct {
	MailHandler    *mailhandlers.MailHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupMailRoutes(engine *gin.Engine, config *MailRouteConfig) {
	mail := engine.Group("/mail")
	mail.Use(config.AuthMiddleware.RequireAuth())
	{
		mail.POST("/send", config.MailHandler.SendMail)
	}
}
