package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type GetAttachmentUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetAttachmentUseCase(attachmentRepo ticket.AttachmentRepository, logger logger.Interface) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetAttachmentUseCase) Execute(ctx context.Context, ticketID, attachmentID uint) (*dto.AttachmentDTO, error) {
	attachment, err := uc.attachmentRepo.GetByTicketAndID(ctx, ticketID, attachmentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get attachment", "error", err,
			"ticket_id", ticketID, "attachment_id", attachmentID)
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return dto.NewAttachmentDTO(attachment), nil
}
