package tts

import (
	"context"
	"os"
)

const (
	elevenLabsEndpoint = "https://api.elevenlabs.io/v1/text-to-speech/"

	// DefaultElevenLabsVoice is the "Rachel" stock voice.
	DefaultElevenLabsVoice = "21m00Tcm4TlvDq8ikWAM"

	elevenLabsModel = "eleven_turbo_v2_5"
)

// ElevenLabs synthesizes speech through the ElevenLabs HTTP API and plays
// the result with a local audio player.
type ElevenLabs struct {
	voice    string
	fallback Backend
	endpoint string
}

// NewElevenLabs creates the ElevenLabs backend. fallback may be nil; when
// set it handles quota-exhausted synthesis in the same Speak call.
func NewElevenLabs(voice string, fallback Backend) *ElevenLabs {
	if voice == "" {
		voice = DefaultElevenLabsVoice
	}
	return &ElevenLabs{voice: voice, fallback: fallback, endpoint: elevenLabsEndpoint}
}

func (e *ElevenLabs) Name() string { return "elevenlabs" }

func (e *ElevenLabs) Available() bool {
	return os.Getenv("ELEVENLABS_API_KEY") != "" && findPlayer() != nil
}

func (e *ElevenLabs) Speak(ctx context.Context, text string) error {
	return speakWithFallback(ctx, e.Name(), e.fallback, text, func(ctx context.Context) ([]byte, error) {
		return postSynthesis(ctx, e.endpoint+e.voice,
			map[string]string{
				"xi-api-key": os.Getenv("ELEVENLABS_API_KEY"),
				"Accept":     "audio/mpeg",
			},
			map[string]any{
				"text":     text,
				"model_id": elevenLabsModel,
			})
	})
}
