package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vforit/ticktrack/internal/domain/activity"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type mockActivityRepository struct {
	SaveFunc             func(ctx context.Context, l *activity.Log) error
	UpdateFunc           func(ctx context.Context, l *activity.Log) error
	DeleteFunc           func(ctx context.Context, logID uint) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
	DeleteByUserIDFunc   func(ctx context.Context, userID uint) error
	GetByIDFunc          func(ctx context.Context, logID uint) (*activity.Log, error)
	ListFunc             func(ctx context.Context) ([]*activity.Log, error)
	ListByUserIDFunc     func(ctx context.Context, userID uint) ([]*activity.Log, error)
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*activity.Log, error)
}

func (m *mockActivityRepository) Save(ctx context.Context, l *activity.Log) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, l)
	}
	return nil
}

func (m *mockActivityRepository) Update(ctx context.Context, l *activity.Log) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *mockActivityRepository) Delete(ctx context.Context, logID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, logID)
	}
	return nil
}

func (m *mockActivityRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockActivityRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockActivityRepository) GetByID(ctx context.Context, logID uint) (*activity.Log, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, logID)
	}
	return nil, nil
}

func (m *mockActivityRepository) List(ctx context.Context) ([]*activity.Log, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockActivityRepository) ListByUserID(ctx context.Context, userID uint) ([]*activity.Log, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockActivityRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*activity.Log, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
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

func testLog(t *testing.T, id, userID uint, ticketID *uint, action string) *activity.Log {
	t.Helper()

	l, err := activity.ReconstructLog(id, userID, ticketID, action, time.Now().UTC())
	require.NoError(t, err)
	return l
}
