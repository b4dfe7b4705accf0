package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vforit/ticktrack/internal/domain/taxonomy"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

type mockEntryRepository struct {
	SaveFunc    func(ctx context.Context, e *taxonomy.Entry) error
	UpdateFunc  func(ctx context.Context, e *taxonomy.Entry) error
	DeleteFunc  func(ctx context.Context, entryID uint) error
	GetByIDFunc func(ctx context.Context, entryID uint) (*taxonomy.Entry, error)
	ListFunc    func(ctx context.Context) ([]*taxonomy.Entry, error)
}

func (m *mockEntryRepository) Save(ctx context.Context, e *taxonomy.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEntryRepository) Update(ctx context.Context, e *taxonomy.Entry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEntryRepository) Delete(ctx context.Context, entryID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, entryID)
	}
	return nil
}

func (m *mockEntryRepository) GetByID(ctx context.Context, entryID uint) (*taxonomy.Entry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, entryID)
	}
	return nil, nil
}

func (m *mockEntryRepository) List(ctx context.Context) ([]*taxonomy.Entry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
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

func strPtr(s string) *string { return &s }

func testEntry(t *testing.T, id uint, entryType, value string, color *string) *taxonomy.Entry {
	t.Helper()

	now := time.Now().UTC()
	e, err := taxonomy.ReconstructEntry(id, entryType, value, value, color, nil, now, now)
	require.NoError(t, err)
	return e
}

func TestCreateEntryUseCase_Execute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := &mockEntryRepository{
			SaveFunc: func(ctx context.Context, e *taxonomy.Entry) error {
				return e.SetID(1)
			},
		}

		uc := NewCreateEntryUseCase(mockRepo, newNopLogger())
		result, err := uc.Execute(context.Background(), CreateEntryCommand{
			Type:  "priority",
			Value: "high",
			Label: "High",
			Color: strPtr("#ff0000"),
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
		assert.Equal(t, "priority", result.Type)
		require.NotNil(t, result.Color)
		assert.Equal(t, "#ff0000", *result.Color)
		assert.Nil(t, result.Parent)
	})

	t.Run("missing type", func(t *testing.T) {
		uc := NewCreateEntryUseCase(&mockEntryRepository{}, newNopLogger())
		_, err := uc.Execute(context.Background(), CreateEntryCommand{Value: "high", Label: "High"})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})
}

func TestUpdateEntryUseCase_Execute(t *testing.T) {
	t.Run("explicit null clears the color", func(t *testing.T) {
		var updated *taxonomy.Entry
		mockRepo := &mockEntryRepository{
			GetByIDFunc: func(ctx context.Context, entryID uint) (*taxonomy.Entry, error) {
				return testEntry(t, entryID, "priority", "high", strPtr("#ff0000")), nil
			},
			UpdateFunc: func(ctx context.Context, e *taxonomy.Entry) error {
				updated = e
				return nil
			},
		}

		var cleared *string
		uc := NewUpdateEntryUseCase(mockRepo, newNopLogger())
		result, err := uc.Execute(context.Background(), UpdateEntryCommand{
			EntryID: 3,
			Color:   &cleared,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Color)
		require.NotNil(t, updated)
	})

	t.Run("absent fields stay untouched", func(t *testing.T) {
		mockRepo := &mockEntryRepository{
			GetByIDFunc: func(ctx context.Context, entryID uint) (*taxonomy.Entry, error) {
				return testEntry(t, entryID, "priority", "high", strPtr("#ff0000")), nil
			},
		}

		uc := NewUpdateEntryUseCase(mockRepo, newNopLogger())
		result, err := uc.Execute(context.Background(), UpdateEntryCommand{
			EntryID: 3,
			Label:   strPtr("Urgent"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Urgent", result.Label)
		require.NotNil(t, result.Color)
		assert.Equal(t, "#ff0000", *result.Color)
	})

	t.Run("unknown entry", func(t *testing.T) {
		mockRepo := &mockEntryRepository{
			GetByIDFunc: func(ctx context.Context, entryID uint) (*taxonomy.Entry, error) {
				return nil, apperrors.NewNotFoundError("config entry not found")
			},
		}

		uc := NewUpdateEntryUseCase(mockRepo, newNopLogger())
		_, err := uc.Execute(context.Background(), UpdateEntryCommand{EntryID: 99})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
