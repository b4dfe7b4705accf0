package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/ticket"
	"github.com/vforit/ticktrack/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	CommentHandler    *tickethandlers.CommentHandler
	AttachmentHandler *tickethandlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	fresh := config.AuthMiddleware.RequireFresh()

	tickets := engine.Group("/ticket")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("", fresh, config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Nested comment endpoints
		tickets.GET("/:id/comments", config.CommentHandler.ListComments)
		tickets.POST("/:id/comments", config.CommentHandler.AddComment)

		// Nested attachment endpoints
		tickets.GET("/:id/attachments", config.AttachmentHandler.ListAttachments)
		tickets.POST("/:id/attachments", fresh, config.AttachmentHandler.CreateAttachment)
		tickets.POST("/:id/attachments/:attachment_id/upload", fresh, config.AttachmentHandler.UploadAttachment)
		tickets.GET("/:id/attachments/:attachment_id/download", config.AttachmentHandler.DownloadAttachment)
		tickets.GET("/:id/attachment/:attachment_id", config.AttachmentHandler.GetAttachment)
		tickets.DELETE("/:id/attachment/:attachment_id", config.AttachmentHandler.DeleteAttachment)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}

	comments := engine.Group("/comments")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.GET("/:id", config.CommentHandler.GetComment)
		comments.PUT("/:id", config.CommentHandler.UpdateComment)
		comments.DELETE("/:id", config.CommentHandler.DeleteComment)
	}
}
