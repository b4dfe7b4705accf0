package usecases

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vforit/ticktrack/internal/domain/activity"
	"github.com/vforit/ticktrack/internal/domain/ticket"
	"github.com/vforit/ticktrack/internal/domain/user"
	"github.com/vforit/ticktrack/internal/shared/db"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc         func(ctx context.Context, ticketID uint) error
	GetByIDFunc        func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context) ([]*ticket.Ticket, error)
	CountByCreatorFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByCreator(ctx context.Context, userID uint) (int64, error) {
	if m.CountByCreatorFunc != nil {
		return m.CountByCreatorFunc(ctx, userID)
	}
	return 0, nil
}

type mockCommentRepository struct {
	SaveFunc             func(ctx context.Context, c *ticket.Comment) error
	UpdateFunc           func(ctx context.Context, c *ticket.Comment) error
	DeleteFunc           func(ctx context.Context, commentID uint) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
	DeleteByUserIDFunc   func(ctx context.Context, userID uint) error
	GetByIDFunc          func(ctx context.Context, commentID uint) (*ticket.Comment, error)
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc             func(ctx context.Context, a *ticket.Attachment) error
	UpdateFunc           func(ctx context.Context, a *ticket.Attachment) error
	DeleteFunc           func(ctx context.Context, attachmentID uint) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
	GetByIDFunc          func(ctx context.Context, attachmentID uint) (*ticket.Attachment, error)
	GetByTicketAndIDFunc func(ctx context.Context, ticketID, attachmentID uint) (*ticket.Attachment, error)
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) Update(ctx context.Context, a *ticket.Attachment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, attachmentID)
	}
	return nil
}

func (m *mockAttachmentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByTicketAndID(ctx context.Context, ticketID, attachmentID uint) (*ticket.Attachment, error) {
	if m.GetByTicketAndIDFunc != nil {
		return m.GetByTicketAndIDFunc(ctx, ticketID, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockActivityRepository struct {
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockActivityRepository) Save(ctx context.Context, l *activity.Log) error   { return nil }
func (m *mockActivityRepository) Update(ctx context.Context, l *activity.Log) error { return nil }
func (m *mockActivityRepository) Delete(ctx context.Context, logID uint) error      { return nil }

func (m *mockActivityRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockActivityRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return nil
}

func (m *mockActivityRepository) GetByID(ctx context.Context, logID uint) (*activity.Log, error) {
	return nil, nil
}

func (m *mockActivityRepository) List(ctx context.Context) ([]*activity.Log, error) {
	return nil, nil
}

func (m *mockActivityRepository) ListByUserID(ctx context.Context, userID uint) ([]*activity.Log, error) {
	return nil, nil
}

func (m *mockActivityRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*activity.Log, error) {
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, userID uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error  { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

type mockMailSender struct {
	SendFunc          func(subject string, recipients []string, body, sender string) error
	DefaultSenderFunc func() string
}

func (m *mockMailSender) Send(subject string, recipients []string, body, sender string) error {
	if m.SendFunc != nil {
		return m.SendFunc(subject, recipients, body, sender)
	}
	return nil
}

func (m *mockMailSender) DefaultSender() string {
	if m.DefaultSenderFunc != nil {
		return m.DefaultSenderFunc()
	}
	return "ticktrack@localhost"
}

type mockFileStorage struct {
	PathForFunc func(ticketID uint, filename string) (string, error)
	WriteFunc   func(ticketID uint, filename string, content io.Reader) (string, error)
	ExistsFunc  func(path string) bool
	RemoveFunc  func(path string) error
}

func (m *mockFileStorage) PathFor(ticketID uint, filename string) (string, error) {
	if m.PathForFunc != nil {
		return m.PathForFunc(ticketID, filename)
	}
	return "uploads/1/file", nil
}

func (m *mockFileStorage) Write(ticketID uint, filename string, content io.Reader) (string, error) {
	if m.WriteFunc != nil {
		return m.WriteFunc(ticketID, filename, content)
	}
	return "uploads/1/file", nil
}

func (m *mockFileStorage) Exists(path string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	return true
}

func (m *mockFileStorage) Remove(path string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(path)
	}
	return nil
}

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) Fatal(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	return db.NewTransactionManager(gdb)
}

func testTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()

	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(id, "Printer offline", "The office printer stopped responding.",
		"open", "medium", "hardware", "printer", 1, nil, nil, now, now)
	require.NoError(t, err)
	return tk
}

func testComment(t *testing.T, id, ticketID, userID uint, content string) *ticket.Comment {
	t.Helper()

	now := time.Now().UTC()
	c, err := ticket.ReconstructComment(id, ticketID, userID, content, now, now)
	require.NoError(t, err)
	return c
}

func testAttachment(t *testing.T, id, ticketID uint, filename, filepath string) *ticket.Attachment {
	t.Helper()

	a, err := ticket.ReconstructAttachment(id, ticketID, filename, filepath, time.Now().UTC())
	require.NoError(t, err)
	return a
}

func testRequester(t *testing.T, id uint, username string) *user.User {
	t.Helper()

	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, username, "hash", "Test User", "Engineer", "member", false, now, now)
	require.NoError(t, err)
	return u
}
