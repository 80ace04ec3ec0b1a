package session_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwed-assistant/internal/chat"
	"dwed-assistant/internal/chat/session"
)

func TestStore_GetCreatesAndReuses(t *testing.T) {
	st := session.NewStore(8, time.Minute)

	a := st.Get("a")
	require.NoError(t, a.AppendUser("hello"))

	again := st.Get("a")
	assert.Same(t, a, again)
	assert.Equal(t, 1, again.Len())

	b := st.Get("b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 0, b.Len())
}

func TestStore_ResetClearsHistory(t *testing.T) {
	st := session.NewStore(8, time.Minute)

	s := st.Get("a")
	require.NoError(t, s.AppendUser("hello"))
	s.AppendAssistant("hi there")

	st.Reset("a")
	assert.Equal(t, 0, st.Get("a").Len())

	// Unknown id is a no-op.
	st.Reset("never-seen")
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	st := session.NewStore(2, time.Minute)

	st.Get("a")
	st.Get("b")
	st.Get("a") // refresh a
	st.Get("c") // evicts b

	assert.LessOrEqual(t, st.Len(), 2)
}

func TestSession_AppendUserRejectsEmpty(t *testing.T) {
	var s session.Session
	err := s.AppendUser("   ")
	require.ErrorIs(t, err, chat.ErrEmptyMessage)
	assert.Equal(t, 0, s.Len())
}

func TestSession_SnapshotIsCopy(t *testing.T) {
	var s session.Session
	require.NoError(t, s.AppendUser("first"))
	s.AppendAssistant("second")

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, chat.Turn{Role: chat.RoleUser, Content: "first"}, snap[0])
	assert.Equal(t, chat.Turn{Role: chat.RoleAssistant, Content: "second"}, snap[1])

	snap[0].Content = "mutated"
	assert.Equal(t, "first", s.Snapshot()[0].Content)
}

func TestSession_ConcurrentAppends(t *testing.T) {
	var s session.Session
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.AppendUser(fmt.Sprintf("msg %d", i))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
