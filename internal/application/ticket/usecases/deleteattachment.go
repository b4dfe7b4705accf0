package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type DeleteAttachmentUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	storage        FileStorage
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	attachmentRepo ticket.AttachmentRepository,
	storage FileStorage,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

// Execute removes the stored file first, then the record. A file that is
// already gone does not block record deletion.
func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, ticketID, attachmentID uint) error {
	attachment, err := uc.attachmentRepo.GetByTicketAndID(ctx, ticketID, attachmentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to get attachment", "error", err,
			"ticket_id", ticketID, "attachment_id", attachmentID)
		return fmt.Errorf("failed to get attachment: %w", err)
	}

	if attachment.IsUploaded() {
		if err := uc.storage.Remove(attachment.Filepath()); err != nil {
			uc.logger.Errorw("failed to remove attachment file", "error", err,
				"attachment_id", attachmentID, "path", attachment.Filepath())
			return fmt.Errorf("failed to remove attachment file: %w", err)
		}
	}

	if err := uc.attachmentRepo.Delete(ctx, attachment.ID()); err != nil {
		if apperrors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to delete attachment", "error", err, "attachment_id", attachmentID)
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	uc.logger.Infow("attachment deleted", "attachment_id", attachmentID, "ticket_id", ticketID)
	return nil
}
