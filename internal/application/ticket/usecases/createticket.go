package usecases

import (
	"context"
	"fmt"

	"github.com/vforit/ticktrack/internal/application/ticket/dto"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	"github.com/vforit/ticktrack/internal/domain/user"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/goroutine"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Status      string
	Priority    string
	Category    string
	Subcategory string
	CreatedBy   uint
	AssignedTo  *uint
	ApprovedBy  *uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	mailSender MailSender
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	mailSender MailSender,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		mailSender: mailSender,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		cmd.Status,
		cmd.Priority,
		cmd.Category,
		cmd.Subcategory,
		cmd.CreatedBy,
		cmd.AssignedTo,
		cmd.ApprovedBy,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "created_by", newTicket.CreatedBy())

	recipients := uc.collectRecipients(ctx, newTicket)
	if len(recipients) > 0 && uc.mailSender != nil {
		uc.notifyAsync(newTicket, recipients)
	}

	return dto.NewTicketDTO(newTicket), nil
}

// collectRecipients resolves the creator, assignee and approver to their
// usernames, which double as mail addresses. A dangling assignee or
// approver reference is tolerated; a missing creator means the row that
// was just inserted points at nobody and is logged as an integrity fault.
func (uc *CreateTicketUseCase) collectRecipients(ctx context.Context, t *ticket.Ticket) []string {
	var recipients []string

	creator, err := uc.userRepo.GetByID(ctx, t.CreatedBy())
	if err != nil {
		uc.logger.Errorw("ticket creator not found", "error", err,
			"ticket_id", t.ID(), "created_by", t.CreatedBy())
	} else {
		recipients = append(recipients, creator.Username())
	}

	for _, ref := range []*uint{t.AssignedTo(), t.ApprovedBy()} {
		if ref == nil {
			continue
		}
		u, err := uc.userRepo.GetByID(ctx, *ref)
		if err != nil {
			uc.logger.Warnw("ticket reference lookup failed", "error", err,
				"ticket_id", t.ID(), "user_id", *ref)
			continue
		}
		recipients = append(recipients, u.Username())
	}

	return recipients
}

// notifyAsync sends the creation notification without blocking the request.
// Delivery failure is logged and otherwise ignored.
func (uc *CreateTicketUseCase) notifyAsync(t *ticket.Ticket, recipients []string) {
	subject := fmt.Sprintf("Ticket #%d created: %s", t.ID(), t.Title())
	body := fmt.Sprintf("A new ticket has been created.\n\n**Title:** %s\n\n**Priority:** %s\n\n%s",
		t.Title(), t.Priority(), t.Description())

	goroutine.SafeGo(uc.logger, "ticket-notification", func() {
		if err := uc.mailSender.Send(subject, recipients, body, uc.mailSender.DefaultSender()); err != nil {
			uc.logger.Warnw("failed to send ticket notification", "error", err,
				"ticket_id", t.ID(), "recipients", len(recipients))
		}
	})
}
