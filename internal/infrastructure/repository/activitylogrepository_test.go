package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vforit/ticktrack/internal/domain/activity"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
)

func newTestLog(t *testing.T, userID uint, ticketID *uint, action string) *activity.Log {
	t.Helper()

	l, err := activity.NewLog(userID, ticketID, action)
	require.NoError(t, err)
	return l
}

func TestActivityLogRepository_SaveAndGet(t *testing.T) {
	repo := NewActivityLogRepository(setupTestDB(t))
	ctx := context.Background()

	l := newTestLog(t, 7, uintPtr(5), "ticket created")
	require.NoError(t, repo.Save(ctx, l))
	assert.NotZero(t, l.ID())

	found, err := repo.GetByID(ctx, l.ID())
	require.NoError(t, err)
	assert.Equal(t, "ticket created", found.Action())
	require.NotNil(t, found.TicketID())
	assert.Equal(t, uint(5), *found.TicketID())
}

func TestActivityLogRepository_SaveWithoutTicket(t *testing.T) {
	repo := NewActivityLogRepository(setupTestDB(t))
	ctx := context.Background()

	l := newTestLog(t, 7, nil, "logged in")
	require.NoError(t, repo.Save(ctx, l))

	found, err := repo.GetByID(ctx, l.ID())
	require.NoError(t, err)
	assert.Nil(t, found.TicketID())
}

func TestActivityLogRepository_Update(t *testing.T) {
	repo := NewActivityLogRepository(setupTestDB(t))
	ctx := context.Background()

	l := newTestLog(t, 7, uintPtr(5), "original")
	require.NoError(t, repo.Save(ctx, l))

	action := "corrected"
	var detached *uint
	require.NoError(t, l.ApplyPatch(activity.Patch{Action: &action, TicketID: &detached}))
	require.NoError(t, repo.Update(ctx, l))

	found, err := repo.GetByID(ctx, l.ID())
	require.NoError(t, err)
	assert.Equal(t, "corrected", found.Action())
	assert.Nil(t, found.TicketID(), "detached reference persists as NULL")
}

func TestActivityLogRepository_FilteredLists(t *testing.T) {
	repo := NewActivityLogRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestLog(t, 7, uintPtr(5), "ticket created")))
	require.NoError(t, repo.Save(ctx, newTestLog(t, 7, nil, "logged in")))
	require.NoError(t, repo.Save(ctx, newTestLog(t, 8, uintPtr(5), "status changed")))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byUser, err := repo.ListByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byTicket, err := repo.ListByTicketID(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, byTicket, 2)
}

func TestActivityLogRepository_CascadeDeletes(t *testing.T) {
	repo := NewActivityLogRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestLog(t, 7, uintPtr(5), "a")))
	require.NoError(t, repo.Save(ctx, newTestLog(t, 7, nil, "b")))
	require.NoError(t, repo.Save(ctx, newTestLog(t, 8, uintPtr(5), "c")))

	require.NoError(t, repo.DeleteByUserID(ctx, 7))
	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, uint(8), remaining[0].UserID())

	require.NoError(t, repo.DeleteByTicketID(ctx, 5))
	remaining, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestActivityLogRepository_Delete(t *testing.T) {
	repo := NewActivityLogRepository(setupTestDB(t))
	ctx := context.Background()

	l := newTestLog(t, 7, nil, "ephemeral")
	require.NoError(t, repo.Save(ctx, l))
	require.NoError(t, repo.Delete(ctx, l.ID()))

	_, err := repo.GetByID(ctx, l.ID())
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.Delete(ctx, l.ID())
	assert.True(t, apperrors.IsNotFound(err))
}
