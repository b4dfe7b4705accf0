package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/domain/activity"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	"github.com/vforit/ticktrack/internal/shared/db"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type DeleteTicketUseCase struct {
	ticketRepo     ticket.Repository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	activityRepo   activity.Repository
	storage        FileStorage
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	activityRepo activity.Repository,
	storage FileStorage,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		activityRepo:   activityRepo,
		storage:        storage,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute deletes a ticket with its comments, attachments and activity
// logs in one transaction. Stored attachment files are removed after the
// transaction commits; a leftover file is logged, not fatal.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, ticketID uint) error {
	if _, err := uc.ticketRepo.GetByID(ctx, ticketID); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", ticketID)
		return fmt.Errorf("failed to get ticket: %w", err)
	}

	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket attachments", "error", err, "ticket_id", ticketID)
		return fmt.Errorf("failed to list ticket attachments: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByTicketID(txCtx, ticketID); err != nil {
			return err
		}
		if err := uc.attachmentRepo.DeleteByTicketID(txCtx, ticketID); err != nil {
			return err
		}
		if err := uc.activityRepo.DeleteByTicketID(txCtx, ticketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, ticketID)
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", ticketID)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	for _, a := range attachments {
		if !a.IsUploaded() {
			continue
		}
		if err := uc.storage.Remove(a.Filepath()); err != nil {
			uc.logger.Warnw("failed to remove attachment file", "error", err,
				"ticket_id", ticketID, "attachment_id", a.ID(), "path", a.Filepath())
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", ticketID)
	return nil
}
