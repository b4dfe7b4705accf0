package activity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestNewLog(t *testing.T) {
	t.Run("with ticket reference", func(t *testing.T) {
		l, err := NewLog(1, uintPtr(5), "created ticket")
		require.NoError(t, err)
		assert.Equal(t, uint(1), l.UserID())
		require.NotNil(t, l.TicketID())
		assert.Equal(t, uint(5), *l.TicketID())
	})

	t.Run("without ticket reference", func(t *testing.T) {
		l, err := NewLog(1, nil, "logged in")
		require.NoError(t, err)
		assert.Nil(t, l.TicketID())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewLog(0, nil, "action")
		assert.Error(t, err)

		_, err = NewLog(1, nil, "")
		assert.Error(t, err)

		_, err = NewLog(1, nil, strings.Repeat("a", 201))
		assert.Error(t, err)
	})
}

func TestLog_ApplyPatch(t *testing.T) {
	newLog := func(t *testing.T) *Log {
		l, err := NewLog(1, uintPtr(5), "created ticket")
		require.NoError(t, err)
		return l
	}

	t.Run("update action", func(t *testing.T) {
		l := newLog(t)
		action := "updated ticket"
		require.NoError(t, l.ApplyPatch(Patch{Action: &action}))
		assert.Equal(t, "updated ticket", l.Action())
		require.NotNil(t, l.TicketID())
	})

	t.Run("detach ticket with explicit null", func(t *testing.T) {
		l := newLog(t)
		var cleared *uint
		require.NoError(t, l.ApplyPatch(Patch{TicketID: &cleared}))
		assert.Nil(t, l.TicketID())
	})

	t.Run("zero user rejected", func(t *testing.T) {
		l := newLog(t)
		zero := uint(0)
		assert.Error(t, l.ApplyPatch(Patch{UserID: &zero}))
	})

	t.Run("empty action rejected", func(t *testing.T) {
		l := newLog(t)
		empty := ""
		assert.Error(t, l.ApplyPatch(Patch{Action: &empty}))
	})
}
