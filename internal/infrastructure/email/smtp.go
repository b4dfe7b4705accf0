package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/vforit/ticktrack/internal/shared/services/markdown"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPMailService sends transactional mail over SMTP. Bodies are treated
// as markdown: the plain-text part carries the source, the HTML
// alternative carries the sanitized rendering.
type SMTPMailService struct {
	config   SMTPConfig
	dialer   *gomail.Dialer
	markdown markdown.Service
}

func NewSMTPMailService(config SMTPConfig) *SMTPMailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPMailService{
		config:   config,
		dialer:   dialer,
		markdown: markdown.NewService(),
	}
}

// DefaultSender returns the configured fallback sender address.
func (s *SMTPMailService) DefaultSender() string {
	return s.config.FromAddress
}

// Send delivers one message to all recipients. An empty sender falls back
// to the configured default.
func (s *SMTPMailService) Send(subject string, recipients []string, body, sender string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if sender == "" {
		sender = s.config.FromAddress
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(sender, s.config.FromName))
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if htmlBody, err := s.markdown.ToHTMLSanitized(body); err == nil && htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
