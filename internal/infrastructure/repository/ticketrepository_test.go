package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vforit/ticktrack/internal/domain/ticket"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func newTestTicket(t *testing.T, title string, createdBy uint, assignedTo *uint) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(title, "Test description", "", "", "", "", createdBy, assignedTo, nil)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := newTestTicket(t, "Printer offline", 1, uintPtr(2))
	require.NoError(t, repo.Save(ctx, tk))
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "Printer offline", found.Title())
	assert.Equal(t, "open", found.Status())
	assert.Equal(t, "medium", found.Priority())
	assert.Equal(t, "ALL", found.Category())
	require.NotNil(t, found.AssignedTo())
	assert.Equal(t, uint(2), *found.AssignedTo())
	assert.Nil(t, found.ApprovedBy())
}

func TestTicketRepository_GetByID_NotFound(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTicketRepository_Update(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := newTestTicket(t, "Printer offline", 1, uintPtr(2))
	require.NoError(t, repo.Save(ctx, tk))

	status := "closed"
	var cleared *uint
	require.NoError(t, tk.ApplyPatch(ticket.Patch{Status: &status, AssignedTo: &cleared}))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "closed", found.Status())
	assert.Nil(t, found.AssignedTo(), "cleared assignee persists as NULL")
}

func TestTicketRepository_Delete(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := newTestTicket(t, "Printer offline", 1, nil)
	require.NoError(t, repo.Save(ctx, tk))
	require.NoError(t, repo.Delete(ctx, tk.ID()))

	err := repo.Delete(ctx, tk.ID())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTicketRepository_CountByCreator(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestTicket(t, "First", 1, nil)))
	require.NoError(t, repo.Save(ctx, newTestTicket(t, "Second", 1, nil)))
	require.NoError(t, repo.Save(ctx, newTestTicket(t, "Other creator", 2, nil)))

	count, err := repo.CountByCreator(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByCreator(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTicketRepository_List(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestTicket(t, "First", 1, nil)))
	require.NoError(t, repo.Save(ctx, newTestTicket(t, "Second", 2, nil)))

	tickets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "First", tickets[0].Title())
	assert.Equal(t, "Second", tickets[1].Title())
}
