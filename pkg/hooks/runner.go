// Package hooks provides the shared runtime for herald hook entry points:
// stdin payload handling, event logging, and the non-fatal exit policy.
package hooks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/herald-hooks/herald/internal/config"
)

// StdinTimeout bounds how long a hook waits for its payload. The host
// always writes the payload immediately; the timeout only guards against
// being launched without a payload at all.
const StdinTimeout = 5 * time.Second

// BaseInput holds the fields common to every hook payload.
type BaseInput struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path,omitempty"`
	CWD            string `json:"cwd,omitempty"`
	HookEventName  string `json:"hook_event_name,omitempty"`
}

// HookContext carries the decoded common fields plus the raw payload to a
// hook handler.
type HookContext struct {
	Hook      string
	RawInput  []byte
	SessionID string
	CWD       string
	Project   string
	Settings  *config.Settings
}

// Run reads the JSON payload from stdin, appends it to the per-hook event
// log, and invokes handler. Hooks must never fail the host lifecycle event:
// every error is logged to stderr and the process exits 0. Only a missing
// payload exits early, still with status 0.
func Run[T any](hook string, handler func(*HookContext, *T) error) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Str("hook", hook).Msg("hook panicked")
		}
		os.Exit(0)
	}()

	raw, err := readStdin()
	if err != nil {
		log.Warn().Err(err).Str("hook", hook).Msg("no hook payload")
		return
	}

	appendEventLog(hook, raw)

	var input T
	if err := json.Unmarshal(raw, &input); err != nil {
		log.Warn().Err(err).Str("hook", hook).Msg("unparseable hook payload")
		return
	}
	ctx, err := newContext(hook, raw)
	if err != nil {
		log.Warn().Err(err).Str("hook", hook).Msg("unparseable hook payload")
		return
	}

	if err := handler(ctx, &input); err != nil {
		log.Warn().Err(err).Str("hook", hook).Msg("hook handler failed")
	}
}

// newContext decodes the common payload fields.
func newContext(hook string, raw []byte) (*HookContext, error) {
	var base BaseInput
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, err
	}
	ctx := &HookContext{
		Hook:      hook,
		RawInput:  raw,
		SessionID: base.SessionID,
		CWD:       base.CWD,
		Settings:  config.Get(),
	}
	if base.CWD != "" {
		ctx.Project = filepath.Base(base.CWD)
	}
	return ctx, nil
}

// readStdin reads the whole payload with a timeout so a hook launched
// without stdin input cannot hang the host.
func readStdin() ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(os.Stdin)
		ch <- result{data, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, r.err
		}
		if len(r.data) == 0 {
			return nil, fmt.Errorf("empty payload")
		}
		return r.data, nil
	case <-time.After(StdinTimeout):
		return nil, fmt.Errorf("timed out waiting for payload")
	}
}

// eventLogLine wraps a raw payload with its arrival time.
type eventLogLine struct {
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// appendEventLog appends the raw payload to ~/.herald/logs/<hook>.jsonl.
// Best-effort: event logging must never block the hook.
func appendEventLog(hook string, raw []byte) {
	dir := config.EventLogDir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.Warn().Err(err).Msg("event log dir")
		return
	}

	line, err := json.Marshal(eventLogLine{Timestamp: time.Now().UTC(), Payload: raw})
	if err != nil {
		log.Warn().Err(err).Msg("event log encode")
		return
	}

	path := filepath.Join(dir, hook+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("event log open")
		return
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("event log write")
	}
}
