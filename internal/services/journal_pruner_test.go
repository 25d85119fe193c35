package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/web/internal/infrastructure/journal"
)

func openStore(t *testing.T) *journal.Store {
	t.Helper()
	store, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"), "journal")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestJournalRecorder_Record(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	recorder := NewJournalRecorder(store, nil)

	recorder.Record(context.Background(), "acc-1", "login", "sess-1")
	recorder.Record(context.Background(), "acc-1", "task_created", "t1")

	events, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "task_created", events[0].Action)
	assert.Equal(t, "acc-1", events[0].Actor)
}

func TestJournalRecorder_NilStoreIsNoop(t *testing.T) {
	t.Parallel()

	recorder := NewJournalRecorder(nil, nil)
	recorder.Record(context.Background(), "acc-1", "login", "sess-1")
}

func TestJournalPruner_Prune(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	old := journal.Event{Action: "login", At: time.Now().Add(-48 * time.Hour)}
	fresh := journal.Event{Action: "logout", At: time.Now()}
	require.NoError(t, store.Append(old))
	require.NoError(t, store.Append(fresh))

	pruner := NewJournalPruner(store, nil, PrunerConfig{
		Interval:  time.Hour,
		Retention: 24 * time.Hour,
	})
	require.NoError(t, pruner.Prune())

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}
