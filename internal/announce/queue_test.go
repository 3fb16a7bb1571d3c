package announce

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herald-hooks/herald/internal/activity"
)

type interval struct {
	enter, exit time.Time
}

// instrumentedBackend records when each Speak call is inside playback so
// tests can assert mutual exclusion.
type instrumentedBackend struct {
	mu        sync.Mutex
	intervals []interval
	hold      time.Duration
	err       error
}

func (b *instrumentedBackend) Name() string    { return "instrumented" }
func (b *instrumentedBackend) Available() bool { return true }

func (b *instrumentedBackend) Speak(_ context.Context, _ string) error {
	enter := time.Now()
	time.Sleep(b.hold)
	b.mu.Lock()
	b.intervals = append(b.intervals, interval{enter: enter, exit: time.Now()})
	b.mu.Unlock()
	return b.err
}

func testQueue(t *testing.T, enabled bool, maxWait time.Duration) (*Queue, string) {
	t.Helper()
	dir := t.TempDir()
	lockPath := filepath.Join(dir, "herald.lock")
	return &Queue{
		lock:         NewLock(lockPath),
		recorder:     activity.NewRecorder(filepath.Join(dir, "activity.jsonl")),
		queueEnabled: enabled,
		pollInterval: 10 * time.Millisecond,
		maxWait:      maxWait,
	}, lockPath
}

func TestAnnounceMutualExclusionUnderContention(t *testing.T) {
	q, lockPath := testQueue(t, true, 5*time.Second)
	backend := &instrumentedBackend{hold: 30 * time.Millisecond}

	const n = 4
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		// Separate Queue values sharing one lock path stand in for
		// separate processes.
		worker := &Queue{
			lock:         NewLock(lockPath),
			recorder:     q.recorder,
			queueEnabled: true,
			pollInterval: q.pollInterval,
			maxWait:      q.maxWait,
		}
		go func() {
			defer wg.Done()
			_ = worker.Announce(context.Background(), backend, Request{Hook: "stop", Text: "hi"})
		}()
	}
	wg.Wait()

	require.Len(t, backend.intervals, n)
	for i := 0; i < len(backend.intervals); i++ {
		for j := i + 1; j < len(backend.intervals); j++ {
			a, b := backend.intervals[i], backend.intervals[j]
			overlap := a.enter.Before(b.exit) && b.enter.Before(a.exit)
			assert.False(t, overlap, "speak intervals %d and %d overlap", i, j)
		}
	}
}

func TestAnnounceEscapeValveBoundsWaiting(t *testing.T) {
	q, lockPath := testQueue(t, true, 200*time.Millisecond)

	// A live holder that never releases: our own PID.
	require.NoError(t, os.WriteFile(lockPath, []byte(pidString()), 0o644))

	backend := &instrumentedBackend{}
	start := time.Now()
	err := q.Announce(context.Background(), backend, Request{Hook: "stop", Text: "hi"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Len(t, backend.intervals, 1, "announcement must not be dropped")
	assert.Less(t, elapsed, 800*time.Millisecond, "escape valve must fire near max wait")
	assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
}

func TestAnnounceSpeakFailureIsRecordedOnce(t *testing.T) {
	q, _ := testQueue(t, true, time.Second)
	backend := &instrumentedBackend{err: errors.New("network timeout")}

	err := q.Announce(context.Background(), backend, Request{Hook: "stop", SessionID: "s1", Text: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network timeout")

	entries, lerr := q.recorder.List(activity.Filter{})
	require.NoError(t, lerr)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success)
	assert.Equal(t, "network timeout", entries[0].Error)
	assert.Equal(t, "instrumented", entries[0].Backend)
	assert.Equal(t, "s1", entries[0].SessionID)
}

func TestAnnounceReleasesLockAfterFailure(t *testing.T) {
	q, lockPath := testQueue(t, true, time.Second)
	backend := &instrumentedBackend{err: errors.New("boom")}

	_ = q.Announce(context.Background(), backend, Request{Hook: "stop", Text: "hi"})

	_, err := os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err), "lock must be released even when speak fails")
}

func TestAnnounceDisabledQueueNeverCreatesLock(t *testing.T) {
	q, lockPath := testQueue(t, false, time.Second)
	backend := &instrumentedBackend{hold: 20 * time.Millisecond}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = q.Announce(context.Background(), backend, Request{Hook: "stop", Text: "hi"})
		}()
	}
	wg.Wait()

	require.Len(t, backend.intervals, 2)
	_, err := os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err), "disabled queue must not touch the lock file")
}

func TestAnnounceNilBackend(t *testing.T) {
	q, _ := testQueue(t, true, time.Second)
	err := q.Announce(context.Background(), nil, Request{Hook: "stop"})
	require.Error(t, err)

	entries, lerr := q.recorder.List(activity.Filter{})
	require.NoError(t, lerr)
	assert.Empty(t, entries)
}

func pidString() string {
	return strconv.Itoa(os.Getpid())
}
