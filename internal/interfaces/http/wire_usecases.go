package http

import (
	activityUC "github.com/vforit/ticktrack/internal/application/activity/usecases"
	mailUC "github.com/vforit/ticktrack/internal/application/mail/usecases"
	taxonomyUC "github.com/vforit/ticktrack/internal/application/taxonomy/usecases"
	ticketUC "github.com/vforit/ticktrack/internal/application/ticket/usecases"
	userUC "github.com/vforit/ticktrack/internal/application/user/usecases"
)

type useCases struct {
	registerUser *userUC.RegisterUserUseCase
	loginUser    *userUC.LoginUserUseCase
	logoutUser   *userUC.LogoutUserUseCase
	refreshToken *userUC.RefreshTokenUseCase
	getUser      *userUC.GetUserUseCase
	listUsers    *userUC.ListUsersUseCase
	updateUser   *userUC.UpdateUserUseCase
	deleteUser   *userUC.DeleteUserUseCase

	createTicket *ticketUC.CreateTicketUseCase
	getTicket    *ticketUC.GetTicketUseCase
	listTickets  *ticketUC.ListTicketsUseCase
	updateTicket *ticketUC.UpdateTicketUseCase
	deleteTicket *ticketUC.DeleteTicketUseCase

	addComment    *ticketUC.AddCommentUseCase
	getComment    *ticketUC.GetCommentUseCase
	listComments  *ticketUC.ListCommentsUseCase
	updateComment *ticketUC.UpdateCommentUseCase
	deleteComment *ticketUC.DeleteCommentUseCase

	createAttachment   *ticketUC.CreateAttachmentUseCase
	uploadAttachment   *ticketUC.UploadAttachmentUseCase
	downloadAttachment *ticketUC.DownloadAttachmentUseCase
	getAttachment      *ticketUC.GetAttachmentUseCase
	listAttachments    *ticketUC.ListAttachmentsUseCase
	deleteAttachment   *ticketUC.DeleteAttachmentUseCase

	createLog *activityUC.CreateLogUseCase
	getLog    *activityUC.GetLogUseCase
	listLogs  *activityUC.ListLogsUseCase
	updateLog *activityUC.UpdateLogUseCase
	deleteLog *activityUC.DeleteLogUseCase

	createEntry *taxonomyUC.CreateEntryUseCase
	getEntry    *taxonomyUC.GetEntryUseCase
	listEntries *taxonomyUC.ListEntriesUseCase
	updateEntry *taxonomyUC.UpdateEntryUseCase
	deleteEntry *taxonomyUC.DeleteEntryUseCase

	sendMail *mailUC.SendMailUseCase
}

func (c *Container) wireUseCases() {
	log := c.log
	repos := c.repos

	c.ucs = &useCases{
		registerUser: userUC.NewRegisterUserUseCase(repos.user, c.passwordHasher, log),
		loginUser:    userUC.NewLoginUserUseCase(repos.user, c.passwordHasher, c.jwtService, log),
		logoutUser:   userUC.NewLogoutUserUseCase(c.revocationStore, log),
		refreshToken: userUC.NewRefreshTokenUseCase(c.jwtService, c.revocationStore, c.cfg.Auth.JWT.AccessExpMinutes, log),
		getUser:      userUC.NewGetUserUseCase(repos.user, log),
		listUsers:    userUC.NewListUsersUseCase(repos.user, log),
		updateUser:   userUC.NewUpdateUserUseCase(repos.user, c.passwordHasher, log),
		deleteUser:   userUC.NewDeleteUserUseCase(repos.user, repos.ticket, repos.comment, repos.activity, c.txManager, log),

		createTicket: ticketUC.NewCreateTicketUseCase(repos.ticket, repos.user, c.mailService, log),
		getTicket:    ticketUC.NewGetTicketUseCase(repos.ticket, log),
		listTickets:  ticketUC.NewListTicketsUseCase(repos.ticket, log),
		updateTicket: ticketUC.NewUpdateTicketUseCase(repos.ticket, log),
		deleteTicket: ticketUC.NewDeleteTicketUseCase(repos.ticket, repos.comment, repos.attachment, repos.activity, c.fileStorage, c.txManager, log),

		addComment:    ticketUC.NewAddCommentUseCase(repos.ticket, repos.comment, log),
		getComment:    ticketUC.NewGetCommentUseCase(repos.comment, log),
		listComments:  ticketUC.NewListCommentsUseCase(repos.ticket, repos.comment, log),
		updateComment: ticketUC.NewUpdateCommentUseCase(repos.comment, log),
		deleteComment: ticketUC.NewDeleteCommentUseCase(repos.comment, log),

		createAttachment:   ticketUC.NewCreateAttachmentUseCase(repos.ticket, repos.attachment, log),
		uploadAttachment:   ticketUC.NewUploadAttachmentUseCase(repos.attachment, c.fileStorage, log),
		downloadAttachment: ticketUC.NewDownloadAttachmentUseCase(repos.attachment, c.fileStorage, log),
		getAttachment:      ticketUC.NewGetAttachmentUseCase(repos.attachment, log),
		listAttachments:    ticketUC.NewListAttachmentsUseCase(repos.ticket, repos.attachment, log),
		deleteAttachment:   ticketUC.NewDeleteAttachmentUseCase(repos.attachment, c.fileStorage, log),

		createLog: activityUC.NewCreateLogUseCase(repos.activity, log),
		getLog:    activityUC.NewGetLogUseCase(repos.activity, log),
		listLogs:  activityUC.NewListLogsUseCase(repos.activity, log),
		updateLog: activityUC.NewUpdateLogUseCase(repos.activity, log),
		deleteLog: activityUC.NewDeleteLogUseCase(repos.activity, log),

		createEntry: taxonomyUC.NewCreateEntryUseCase(repos.config, log),
		getEntry:    taxonomyUC.NewGetEntryUseCase(repos.config, log),
		listEntries: taxonomyUC.NewListEntriesUseCase(repos.config, log),
		updateEntry: taxonomyUC.NewUpdateEntryUseCase(repos.config, log),
		deleteEntry: taxonomyUC.NewDeleteEntryUseCase(repos.config, log),

		sendMail: mailUC.NewSendMailUseCase(c.mailService, log),
	}
}
