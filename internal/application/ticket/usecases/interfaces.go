package usecases

import (
	"io"
)

// MailSender delivers notification mail. Implemented by the SMTP service;
// ticket creation uses it fire-and-forget.
type MailSender interface {
	Send(subject string, recipients []string, body, sender string) error
	DefaultSender() string
}

// FileStorage stores attachment binaries under server-computed paths.
type FileStorage interface {
	PathFor(ticketID uint, filename string) (string, error)
	Write(ticketID uint, filename string, content io.Reader) (string, error)
	Exists(path string) bool
	Remove(path string) error
}
