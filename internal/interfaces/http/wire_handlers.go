package http

import (
	activityhandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/activity"
	mailhandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/mail"
	taxonomyhandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/taxonomy"
	tickethandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/ticket"
	userhandlers "github.com/vforit/ticktrack/internal/interfaces/http/handlers/user"
	"github.com/vforit/ticktrack/internal/interfaces/http/middleware"
)

type handlerSet struct {
	auth       *userhandlers.AuthHandler
	user       *userhandlers.UserHandler
	ticket     *tickethandlers.TicketHandler
	comment    *tickethandlers.CommentHandler
	attachment *tickethandlers.AttachmentHandler
	activity   *activityhandlers.ActivityHandler
	config     *taxonomyhandlers.ConfigHandler
	mail       *mailhandlers.MailHandler
}

func (c *Container) wireHandlers() {
	ucs := c.ucs

	c.hdlrs = &handlerSet{
		auth:    userhandlers.NewAuthHandler(ucs.registerUser, ucs.loginUser, ucs.logoutUser, ucs.refreshToken),
		user:    userhandlers.NewUserHandler(ucs.getUser, ucs.listUsers, ucs.updateUser, ucs.deleteUser),
		ticket:  tickethandlers.NewTicketHandler(ucs.createTicket, ucs.getTicket, ucs.listTickets, ucs.updateTicket, ucs.deleteTicket),
		comment: tickethandlers.NewCommentHandler(ucs.addComment, ucs.getComment, ucs.listComments, ucs.updateComment, ucs.deleteComment),
		attachment: tickethandlers.NewAttachmentHandler(
			ucs.createAttachment, ucs.uploadAttachment, ucs.downloadAttachment,
			ucs.getAttachment, ucs.listAttachments, ucs.deleteAttachment),
		activity: activityhandlers.NewActivityHandler(ucs.createLog, ucs.getLog, ucs.listLogs, ucs.updateLog, ucs.deleteLog),
		config:   taxonomyhandlers.NewConfigHandler(ucs.createEntry, ucs.getEntry, ucs.listEntries, ucs.updateEntry, ucs.deleteEntry),
		mail:     mailhandlers.NewMailHandler(ucs.sendMail),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.revocationStore)
}
