package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vforit/ticktrack/internal/interfaces/http/middleware"
	"github.com/vforit/ticktrack/internal/interfaces/http/routes"
)

func (c *Container) setupRouter() {
	registerValidators()

	switch c.cfg.Server.Mode {
	case "release", "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.user,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:     c.hdlrs.ticket,
		CommentHandler:    c.hdlrs.comment,
		AttachmentHandler: c.hdlrs.attachment,
		AuthMiddleware:    c.authMiddleware,
	})
	routes.SetupActivityRoutes(engine, &routes.ActivityRouteConfig{
		ActivityHandler: c.hdlrs.activity,
		AuthMiddleware:  c.authMiddleware,
	})
	routes.SetupConfigRoutes(engine, &routes.ConfigRouteConfig{
		ConfigHandler:  c.hdlrs.config,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupMailRoutes(engine, &routes.MailRouteConfig{
		MailHandler:    c.hdlrs.mail,
		AuthMiddleware: c.authMiddleware,
	})

	c.engine = engine
}
