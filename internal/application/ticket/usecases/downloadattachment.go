package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

// DownloadAttachmentResult carries what the transport layer needs to
// stream the stored file.
type DownloadAttachmentResult struct {
	Filename string
	Path     string
}

type DownloadAttachmentUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	storage        FileStorage
	logger         logger.Interface
}

func NewDownloadAttachmentUseCase(
	attachmentRepo ticket.AttachmentRepository,
	storage FileStorage,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

// Execute resolves the stored file for an attachment. Not found covers
// three cases: no record, no upload yet, and a record whose file has gone
// missing on disk.
func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, ticketID, attachmentID uint) (*DownloadAttachmentResult, error) {
	attachment, err := uc.attachmentRepo.GetByTicketAndID(ctx, ticketID, attachmentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get attachment", "error", err,
			"ticket_id", ticketID, "attachment_id", attachmentID)
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	if !attachment.IsUploaded() {
		return nil, apperrors.NewNotFoundError("attachment file has not been uploaded")
	}

	if !uc.storage.Exists(attachment.Filepath()) {
		uc.logger.Warnw("attachment file missing on disk",
			"attachment_id", attachmentID, "path", attachment.Filepath())
		return nil, apperrors.NewNotFoundError("attachment file not found")
	}

	return &DownloadAttachmentResult{
		Filename: attachment.Filename(),
		Path:     attachment.Filepath(),
	}, nil
}
