package activity

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecorder(t *testing.T) *Recorder {
	t.Helper()
	return NewRecorder(filepath.Join(t.TempDir(), "state", "activity.jsonl"))
}

func TestRecordFillsIDAndTimestamp(t *testing.T) {
	r := testRecorder(t)

	require.NoError(t, r.Record(Entry{Hook: "stop", Message: "done", Backend: "say", Success: true}))

	entries, err := r.List(Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.True(t, entries[0].Success)
}

func TestRecordCreatesParentDirectory(t *testing.T) {
	r := testRecorder(t)
	require.NoError(t, r.Record(Entry{Hook: "stop"}))
	_, err := os.Stat(r.path)
	assert.NoError(t, err)
}

func TestListMissingLogReturnsEmpty(t *testing.T) {
	r := testRecorder(t)
	entries, err := r.List(Filter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListSkipsCorruptLines(t *testing.T) {
	r := testRecorder(t)
	require.NoError(t, r.Record(Entry{Hook: "stop", Message: "first"}))

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{broken json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, r.Record(Entry{Hook: "stop", Message: "second"}))

	entries, err := r.List(Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
}

func TestListFilters(t *testing.T) {
	r := testRecorder(t)
	now := time.Now().UTC()
	require.NoError(t, r.Record(Entry{Hook: "stop", SessionID: "s1", Timestamp: now}))
	require.NoError(t, r.Record(Entry{Hook: "notification", SessionID: "s1", Timestamp: now}))
	require.NoError(t, r.Record(Entry{Hook: "stop", SessionID: "s2", Timestamp: now}))

	byHook, err := r.List(Filter{Hook: "stop"})
	require.NoError(t, err)
	assert.Len(t, byHook, 2)

	bySession, err := r.List(Filter{SessionID: "s1"})
	require.NoError(t, err)
	assert.Len(t, bySession, 2)

	limited, err := r.List(Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "s2", limited[0].SessionID)
}

func TestClear(t *testing.T) {
	r := testRecorder(t)
	require.NoError(t, r.Record(Entry{Hook: "stop"}))
	require.NoError(t, r.Clear())
	require.NoError(t, r.Clear()) // idempotent

	entries, err := r.List(Filter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
