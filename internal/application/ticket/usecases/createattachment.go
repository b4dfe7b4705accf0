package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type CreateAttachmentCommand struct {
	TicketID uint
	Filename string
}

// CreateAttachmentUseCase records attachment metadata ahead of the upload.
// The record starts with a placeholder path; the upload step supplies the
// file and the real server-computed path.
type CreateAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewCreateAttachmentUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *CreateAttachmentUseCase {
	return &CreateAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *CreateAttachmentUseCase) Execute(ctx context.Context, cmd CreateAttachmentCommand) (*dto.AttachmentDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	attachment, err := ticket.NewAttachment(cmd.TicketID, cmd.Filename)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	uc.logger.Infow("attachment record created",
		"attachment_id", attachment.ID(), "ticket_id", cmd.TicketID, "filename", cmd.Filename)
	return dto.NewAttachmentDTO(attachment), nil
}
