// Package activity persists one record per announcement attempt to an
// append-only JSONL log consumed by the inspection UI.
package activity

import (
	"bufio"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Entry is one announcement attempt. Entries are never mutated; the UI may
// clear the whole log but the core only appends.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Hook       string    `json:"hook"`
	SessionID  string    `json:"session_id,omitempty"`
	AgentName  string    `json:"agent_name,omitempty"`
	AgentType  string    `json:"agent_type,omitempty"`
	Message    string    `json:"message"`
	Backend    string    `json:"backend"`
	DurationMs int64     `json:"duration_ms"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
}

// Filter narrows List results.
type Filter struct {
	Hook      string
	SessionID string
	Limit     int
}

// Recorder appends entries to a JSONL file at a fixed path.
type Recorder struct {
	path string
}

// NewRecorder creates a recorder writing to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Record appends one entry, creating the log and its parent directory as
// needed and filling in ID and timestamp when absent. Best-effort
// telemetry: callers run it inside a guarded region so a failure here can
// never suppress the speak outcome already obtained.
func (r *Recorder) Record(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o750); err != nil {
		return err
	}

	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// List returns entries matching the filter, oldest first. A missing log
// yields an empty collection; corrupt lines are skipped so one bad write
// never takes out the whole history.
func (r *Recorder) List(f Filter) ([]Entry, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer file.Close()

	entries := []Entry{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			log.Debug().Err(err).Msg("skipping corrupt activity log line")
			continue
		}
		if f.Hook != "" && e.Hook != f.Hook {
			continue
		}
		if f.SessionID != "" && e.SessionID != f.SessionID {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		// Return what was readable.
		log.Warn().Err(err).Msg("activity log read truncated")
	}

	if f.Limit > 0 && len(entries) > f.Limit {
		entries = entries[len(entries)-f.Limit:]
	}
	return entries, nil
}

// Clear removes the log. Exposed for the inspection UI's clear operation.
func (r *Recorder) Clear() error {
	err := os.Remove(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
