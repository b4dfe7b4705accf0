package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type ListAttachmentsUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, ticketID uint) ([]*dto.AttachmentDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, ticketID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", ticketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "error", err, "ticket_id", ticketID)
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	return dto.NewAttachmentDTOs(attachments), nil
}
