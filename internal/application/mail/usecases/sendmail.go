package usecases

import (
	"context"
	"fmt"

	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

// MailSender delivers a message over the configured relay.
type MailSender interface {
	Send(subject string, recipients []string, body, sender string) error
	DefaultSender() string
}

type SendMailCommand struct {
	Subject    string
	Recipients []string
	Body       string
	Sender     string
}

type SendMailUseCase struct {
	mailSender MailSender
	logger     logger.Interface
}

func NewSendMailUseCase(mailSender MailSender, logger logger.Interface) *SendMailUseCase {
	return &SendMailUseCase{
		mailSender: mailSender,
		logger:     logger,
	}
}

// Execute sends an ad-hoc message. Body and sender are optional; the
// sender falls back to the configured default address.
func (uc *SendMailUseCase) Execute(_ context.Context, cmd SendMailCommand) error {
	if cmd.Subject == "" {
		return apperrors.NewValidationError("subject is required")
	}
	if len(cmd.Recipients) == 0 {
		return apperrors.NewValidationError("at least one recipient is required")
	}

	sender := cmd.Sender
	if sender == "" {
		sender = uc.mailSender.DefaultSender()
	}

	if err := uc.mailSender.Send(cmd.Subject, cmd.Recipients, cmd.Body, sender); err != nil {
		uc.logger.Errorw("failed to send mail", "error", err, "recipients", len(cmd.Recipients))
		return fmt.Errorf("failed to send mail: %w", err)
	}

	uc.logger.Infow("mail sent", "subject", cmd.Subject, "recipients", len(cmd.Recipients))
	return nil
}
