package announce

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/herald-hooks/herald/internal/config"
	"github.com/herald-hooks/herald/internal/tts"
)

// speakTimeout caps one backend call. The queue's max wait bounds queueing
// time only; this guards against a hung synthesis or playback subprocess.
const speakTimeout = 2 * time.Minute

// Event describes one announceable lifecycle event.
type Event struct {
	Hook      string
	SessionID string
	AgentName string
	AgentType string
	CWD       string

	// Text overrides the per-hook template when set.
	Text string
}

// Speak resolves a backend, renders and normalizes the message, and runs it
// through the queue. Every failure path converges on "log what you can and
// return"; nothing here may take down the calling hook.
func Speak(ctx context.Context, ev Event) error {
	s := config.Get()
	if !s.Enabled {
		return nil
	}

	opts := tts.Options{Voice: s.Voice}
	backend := tts.Resolve(s.ProviderPriority, tts.DefaultRegistry(), opts)
	if backend == nil {
		log.Debug().Strs("priority", s.ProviderPriority).Msg("no speech backend available, skipping announcement")
		return nil
	}

	text := ev.Text
	if text == "" {
		text = Message(s, ev.Hook, ev.AgentName, ProjectName(ev.CWD))
	}
	text = tts.Normalize(text)

	req := Request{
		Hook:      ev.Hook,
		SessionID: ev.SessionID,
		AgentName: ev.AgentName,
		AgentType: ev.AgentType,
		Text:      text,
	}
	speakCtx, cancel := context.WithTimeout(ctx, speakTimeout)
	defer cancel()
	return NewQueue(s).Announce(speakCtx, backend, req)
}
