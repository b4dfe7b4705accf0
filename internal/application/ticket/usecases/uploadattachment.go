package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type UploadAttachmentCommand struct {
	TicketID     uint
	AttachmentID uint
	Filename     string
	Content      io.Reader
}

// UploadAttachmentUseCase stores the file for a previously created
// attachment record. The storage path is computed from the ticket ID and
// the bare filename, never taken from the client.
type UploadAttachmentUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	storage        FileStorage
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	attachmentRepo ticket.AttachmentRepository,
	storage FileStorage,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error) {
	if cmd.Filename == "" {
		return nil, apperrors.NewValidationError("filename is required")
	}

	attachment, err := uc.attachmentRepo.GetByTicketAndID(ctx, cmd.TicketID, cmd.AttachmentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get attachment", "error", err,
			"ticket_id", cmd.TicketID, "attachment_id", cmd.AttachmentID)
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	path, err := uc.storage.Write(cmd.TicketID, cmd.Filename, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to store attachment file", "error", err,
			"ticket_id", cmd.TicketID, "attachment_id", cmd.AttachmentID)
		return nil, fmt.Errorf("failed to store attachment file: %w", err)
	}

	if err := attachment.MarkUploaded(path); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Update(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to update attachment record", "error", err,
			"attachment_id", cmd.AttachmentID)
		return nil, fmt.Errorf("failed to update attachment record: %w", err)
	}

	uc.logger.Infow("attachment uploaded",
		"attachment_id", attachment.ID(), "ticket_id", cmd.TicketID, "path", path)
	return dto.NewAttachmentDTO(attachment), nil
}
