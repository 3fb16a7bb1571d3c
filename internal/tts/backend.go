// Package tts provides speech backends, backend resolution, and text
// normalization for spoken announcements.
package tts

import (
	"context"
	"errors"
)

// ErrNoBackend is returned when no registered backend is available.
var ErrNoBackend = errors.New("no speech backend available")

// ErrQuotaExceeded signals that a cloud backend rejected the request for
// quota or billing reasons. Cloud backends fall back to a native backend in
// the same call before surfacing any error.
var ErrQuotaExceeded = errors.New("quota exceeded")

// Backend is a named text-to-speech implementation.
//
// Available must be side-effect free: it may inspect the environment, look
// up executables, or check the platform, but must not produce audio or
// perform network calls. Speak blocks until playback completes or fails.
type Backend interface {
	Name() string
	Available() bool
	Speak(ctx context.Context, text string) error
}

// Options carries per-process backend construction parameters.
type Options struct {
	// Voice selects a synthesis voice on backends that support one.
	Voice string
}

// Factory constructs a backend instance.
type Factory func(opts Options) Backend

// Registry maps stable backend names to factories. Names are unique within
// a process; registry order carries no meaning, only the caller-supplied
// priority list does.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces a factory under the given name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Lookup returns the factory registered under name, if any.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// DefaultRegistry returns a registry with every built-in backend. Cloud
// backends are wired with the first available native backend as their
// quota fallback.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("say", func(opts Options) Backend { return NewSay(opts.Voice) })
	r.Register("espeak", func(opts Options) Backend { return NewESpeak() })
	r.Register("powershell", func(opts Options) Backend { return NewPowerShell() })
	r.Register("elevenlabs", func(opts Options) Backend {
		return NewElevenLabs(opts.Voice, nativeFallback(opts))
	})
	r.Register("openai", func(opts Options) Backend {
		return NewOpenAI(opts.Voice, nativeFallback(opts))
	})
	return r
}

// nativeFallback picks the platform's on-device backend for cloud backends
// to degrade to when they hit quota errors.
func nativeFallback(opts Options) Backend {
	for _, b := range []Backend{NewSay(opts.Voice), NewESpeak(), NewPowerShell()} {
		if b.Available() {
			return b
		}
	}
	return nil
}
