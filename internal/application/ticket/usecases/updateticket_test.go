package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		var updated *ticket.Ticket
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return testTicket(t, ticketID), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}

		uc := NewUpdateTicketUseCase(mockRepo, newNopLogger())
		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID: 5,
			Status:   strPtr("closed"),
			Priority: strPtr("low"),
		})

		require.NoError(t, err)
		assert.Equal(t, "closed", result.Status)
		assert.Equal(t, "low", result.Priority)
		assert.Equal(t, "Printer offline", result.Title, "untouched field survives")
		require.NotNil(t, updated)
	})

	t.Run("explicit null clears the assignee", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				tk := testTicket(t, ticketID)
				assignee := uintPtr(4)
				require.NoError(t, tk.ApplyPatch(ticket.Patch{AssignedTo: &assignee}))
				return tk, nil
			},
		}

		var cleared *uint
		uc := NewUpdateTicketUseCase(mockRepo, newNopLogger())
		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID:   5,
			AssignedTo: &cleared,
		})

		require.NoError(t, err)
		assert.Nil(t, result.AssignedTo)
	})

	t.Run("invalid patch value", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return testTicket(t, ticketID), nil
			},
		}

		uc := NewUpdateTicketUseCase(mockRepo, newNopLogger())
		_, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID: 5,
			Title:    strPtr(""),
		})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, apperrors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewUpdateTicketUseCase(mockRepo, newNopLogger())
		_, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 99})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
