package http

import (
	"github.com/vforit/ticktrack/internal/infrastructure/repository"
)

type repositories struct {
	user       *repository.UserRepository
	ticket     *repository.TicketRepository
	comment    *repository.CommentRepository
	attachment *repository.AttachmentRepository
	activity   *repository.ActivityLogRepository
	config     *repository.ConfigMasterRepository
}

func (c *Container) wireRepositories() {
	c.repos = &repositories{
		user:       repository.NewUserRepository(c.db),
		ticket:     repository.NewTicketRepository(c.db),
		comment:    repository.NewCommentRepository(c.db),
		attachment: repository.NewAttachmentRepository(c.db),
		activity:   repository.NewActivityLogRepository(c.db),
		config:     repository.NewConfigMasterRepository(c.db),
	}
}
