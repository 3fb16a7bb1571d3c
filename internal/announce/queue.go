package announce

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/herald-hooks/herald/internal/activity"
	"github.com/herald-hooks/herald/internal/config"
	"github.com/herald-hooks/herald/internal/tts"
)

// Request carries the announcement text and the metadata recorded with it.
type Request struct {
	Hook      string
	SessionID string
	AgentName string
	AgentType string
	Text      string
}

// Queue serializes announcements across hook processes. Audio output is an
// inherently serial resource; the queue guarantees at most one holder at a
// time (barring the documented stale-lock race) and guarantees liveness
// through the max-wait escape valve: an announcement is never dropped
// because of contention, only spoken unserialized.
type Queue struct {
	lock         *Lock
	recorder     *activity.Recorder
	queueEnabled bool
	pollInterval time.Duration
	maxWait      time.Duration
}

// NewQueue builds a queue from settings, using the shared lock and activity
// log paths.
func NewQueue(s *config.Settings) *Queue {
	return &Queue{
		lock:         NewLock(config.LockPath()),
		recorder:     activity.NewRecorder(config.ActivityLogPath()),
		queueEnabled: s.Queue.Enabled,
		pollInterval: time.Duration(s.Queue.PollIntervalMs) * time.Millisecond,
		maxWait:      time.Duration(s.Queue.MaxWaitMs) * time.Millisecond,
	}
}

// Announce speaks text through backend, holding the cross-process lock when
// queueing is enabled. The speak outcome is recorded in the activity log
// exactly once per attempt and returned to the caller; callers at the hook
// boundary log and ignore it so a failed announcement never fails the hook.
func (q *Queue) Announce(ctx context.Context, backend tts.Backend, req Request) error {
	if backend == nil {
		return tts.ErrNoBackend
	}

	held := false
	if q.queueEnabled {
		held = q.acquire()
	}

	start := time.Now()
	err := backend.Speak(ctx, req.Text)
	duration := time.Since(start)

	entry := activity.Entry{
		Hook:       req.Hook,
		SessionID:  req.SessionID,
		AgentName:  req.AgentName,
		AgentType:  req.AgentType,
		Message:    req.Text,
		Backend:    backend.Name(),
		DurationMs: duration.Milliseconds(),
		Success:    err == nil,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	if rerr := q.recorder.Record(entry); rerr != nil {
		log.Warn().Err(rerr).Msg("activity record failed")
	}

	if held {
		q.lock.Release()
	}
	return err
}

// acquire blocks until the lock is held or the escape valve fires. Returns
// whether the lock is actually held; false means "speak anyway, unlocked".
// Polling is fixed-interval with no fairness guarantee: announcements are
// infrequent and short relative to speech duration, so arrival order under
// contention does not matter.
func (q *Queue) acquire() bool {
	deadline := time.Now().Add(q.maxWait)
	for {
		ok, err := q.lock.TryAcquire()
		if err != nil {
			log.Warn().Err(err).Msg("announcement lock unusable, speaking unlocked")
			return false
		}
		if ok {
			return true
		}
		if !time.Now().Before(deadline) {
			if q.lock.ForceAcquire() {
				log.Warn().Str("path", q.lock.Path()).Msg("max wait exceeded, lock stolen")
				return true
			}
			log.Warn().Str("path", q.lock.Path()).Msg("max wait exceeded, speaking unlocked")
			return false
		}
		time.Sleep(q.pollInterval)
	}
}
