package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

// UpdateTicketCommand carries a partial update. Nil fields stay untouched.
// AssignedTo and ApprovedBy are double pointers: an outer nil means "leave
// alone", an inner nil means "clear the reference".
type UpdateTicketCommand struct {
	TicketID    uint
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	Category    *string
	Subcategory *string
	AssignedTo  **uint
	ApprovedBy  **uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	existingTicket, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	patch := ticket.Patch{
		Title:       cmd.Title,
		Description: cmd.Description,
		Status:      cmd.Status,
		Priority:    cmd.Priority,
		Category:    cmd.Category,
		Subcategory: cmd.Subcategory,
		AssignedTo:  cmd.AssignedTo,
		ApprovedBy:  cmd.ApprovedBy,
	}

	if err := existingTicket.ApplyPatch(patch); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existingTicket); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket updated", "ticket_id", existingTicket.ID())
	return dto.NewTicketDTO(existingTicket), nil
}
