package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vforit/ticktrack/internal/domain/taxonomy"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func newTestEntry(t *testing.T, entryType, value, label string, color, parent *string) *taxonomy.Entry {
	t.Helper()

	e, err := taxonomy.NewEntry(entryType, value, label, color, parent)
	require.NoError(t, err)
	return e
}

func TestConfigMasterRepository_SaveAndGet(t *testing.T) {
	repo := NewConfigMasterRepository(setupTestDB(t))
	ctx := context.Background()

	e := newTestEntry(t, "priority", "high", "High", strPtr("#ff0000"), nil)
	require.NoError(t, repo.Save(ctx, e))
	assert.NotZero(t, e.ID())

	found, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, "priority", found.Type())
	assert.Equal(t, "high", found.Value())
	require.NotNil(t, found.Color())
	assert.Equal(t, "#ff0000", *found.Color())
	assert.Nil(t, found.Parent())
}

func TestConfigMasterRepository_Update(t *testing.T) {
	repo := NewConfigMasterRepository(setupTestDB(t))
	ctx := context.Background()

	e := newTestEntry(t, "subcategory", "printer", "Printer", strPtr("#00ff00"), strPtr("hardware"))
	require.NoError(t, repo.Save(ctx, e))

	label := "Printers"
	var clearedColor *string
	require.NoError(t, e.ApplyPatch(taxonomy.Patch{Label: &label, Color: &clearedColor}))
	require.NoError(t, repo.Update(ctx, e))

	found, err := repo.GetByID(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, "Printers", found.Label())
	assert.Nil(t, found.Color(), "cleared color persists as NULL")
	require.NotNil(t, found.Parent())
	assert.Equal(t, "hardware", *found.Parent())
}

func TestConfigMasterRepository_List(t *testing.T) {
	repo := NewConfigMasterRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestEntry(t, "status", "open", "Open", nil, nil)))
	require.NoError(t, repo.Save(ctx, newTestEntry(t, "status", "closed", "Closed", nil, nil)))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "open", entries[0].Value())
	assert.Equal(t, "closed", entries[1].Value())
}

func TestConfigMasterRepository_Delete(t *testing.T) {
	repo := NewConfigMasterRepository(setupTestDB(t))
	ctx := context.Background()

	e := newTestEntry(t, "status", "open", "Open", nil, nil)
	require.NoError(t, repo.Save(ctx, e))
	require.NoError(t, repo.Delete(ctx, e.ID()))

	_, err := repo.GetByID(ctx, e.ID())
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.Delete(ctx, e.ID())
	assert.True(t, apperrors.IsNotFound(err))
}
