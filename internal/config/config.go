// Package config provides configuration management for herald.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
)

const (
	// DefaultUIPort is the default HTTP port for the local web UI.
	DefaultUIPort = 38555

	// DefaultPollIntervalMs is how often a waiting announcer re-checks the lock.
	DefaultPollIntervalMs = 100

	// DefaultMaxWaitMs bounds total time spent waiting for the announcement lock.
	DefaultMaxWaitMs = 5000
)

// DefaultProviderPriority is the backend preference order used when the
// settings file does not specify one. Unavailable backends are skipped at
// resolve time, so listing a cloud backend first is safe on machines
// without API keys.
var DefaultProviderPriority = []string{
	"elevenlabs", "openai", "say", "espeak", "powershell",
}

// QueueSettings controls the cross-process announcement lock.
type QueueSettings struct {
	Enabled        bool `json:"enabled"`
	MaxWaitMs      int  `json:"max_wait_ms"`
	PollIntervalMs int  `json:"poll_interval_ms"`
}

// Settings holds the application configuration.
type Settings struct {
	// Enabled globally switches spoken announcements on or off.
	Enabled bool `json:"enabled"`

	// ProviderPriority is the ordered backend preference list.
	ProviderPriority []string `json:"provider_priority"`

	// Voice is passed to backends that support voice selection.
	Voice string `json:"voice,omitempty"`

	// Messages overrides the per-hook announcement templates.
	// Placeholders: {hook}, {agent}, {project}.
	Messages map[string]string `json:"messages,omitempty"`

	// UIPort is the port the local web UI listens on.
	UIPort int `json:"ui_port"`

	Queue QueueSettings `json:"queue"`
}

var (
	cached   *Settings
	cachedMu sync.RWMutex
)

// DataDir returns the state directory path (~/.herald), honoring
// HERALD_DATA_DIR for tests and non-standard layouts.
func DataDir() string {
	if dir := os.Getenv("HERALD_DATA_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".herald")
}

// SettingsPath returns the settings file path.
func SettingsPath() string {
	return filepath.Join(DataDir(), "settings.json")
}

// LockPath returns the announcement lock file path.
func LockPath() string {
	return filepath.Join(DataDir(), "herald.lock")
}

// ActivityLogPath returns the announcement activity log path.
func ActivityLogPath() string {
	return filepath.Join(DataDir(), "activity.jsonl")
}

// EventLogDir returns the directory holding per-hook event logs.
func EventLogDir() string {
	return filepath.Join(DataDir(), "logs")
}

// EnsureDataDir creates the state directory if it doesn't exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0o750)
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Enabled:          true,
		ProviderPriority: append([]string(nil), DefaultProviderPriority...),
		UIPort:           DefaultUIPort,
		Queue: QueueSettings{
			Enabled:        true,
			MaxWaitMs:      DefaultMaxWaitMs,
			PollIntervalMs: DefaultPollIntervalMs,
		},
	}
}

// Get returns the cached settings, loading them on first use. Hook processes
// call this once per invocation; the web UI invalidates the cache whenever
// the settings file changes on disk.
func Get() *Settings {
	cachedMu.RLock()
	if cached != nil {
		defer cachedMu.RUnlock()
		return cached
	}
	cachedMu.RUnlock()

	cachedMu.Lock()
	defer cachedMu.Unlock()
	if cached == nil {
		cached = Load()
	}
	return cached
}

// Invalidate drops the cached settings so the next Get re-reads the file.
func Invalidate() {
	cachedMu.Lock()
	cached = nil
	cachedMu.Unlock()
}

// Load reads settings from disk, falling back to defaults for missing or
// unreadable content, then applies environment overrides.
func Load() *Settings {
	s := Default()

	if data, err := os.ReadFile(SettingsPath()); err == nil {
		var file Settings
		if err := json.Unmarshal(data, &file); err == nil {
			s = &file
			if len(s.ProviderPriority) == 0 {
				s.ProviderPriority = append([]string(nil), DefaultProviderPriority...)
			}
			if s.UIPort == 0 {
				s.UIPort = DefaultUIPort
			}
			if s.Queue.MaxWaitMs == 0 {
				s.Queue.MaxWaitMs = DefaultMaxWaitMs
			}
			if s.Queue.PollIntervalMs == 0 {
				s.Queue.PollIntervalMs = DefaultPollIntervalMs
			}
		}
	}

	applyEnvOverrides(s)
	return s
}

// Save writes settings to disk and invalidates the cache.
func Save(s *Settings) error {
	if err := EnsureDataDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(SettingsPath(), append(data, '\n'), 0o644); err != nil {
		return err
	}
	Invalidate()
	return nil
}

func applyEnvOverrides(s *Settings) {
	if v := os.Getenv("HERALD_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Enabled = b
		}
	}
	if v := os.Getenv("HERALD_PROVIDERS"); v != "" {
		parts := strings.Split(v, ",")
		var priority []string
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				priority = append(priority, p)
			}
		}
		if len(priority) > 0 {
			s.ProviderPriority = priority
		}
	}
	if v := os.Getenv("HERALD_VOICE"); v != "" {
		s.Voice = v
	}
	if v := os.Getenv("HERALD_QUEUE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Queue.Enabled = b
		}
	}
	if v := os.Getenv("HERALD_MAX_WAIT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.Queue.MaxWaitMs = n
		}
	}
}
