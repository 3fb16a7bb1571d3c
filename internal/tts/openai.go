package tts

import (
	"context"
	"os"
)

const (
	openAIEndpoint = "https://api.openai.com/v1/audio/speech"

	// DefaultOpenAIVoice is a neutral stock voice.
	DefaultOpenAIVoice = "nova"

	openAIModel = "tts-1"
)

// OpenAI synthesizes speech through the OpenAI audio API and plays the
// result with a local audio player.
type OpenAI struct {
	voice    string
	fallback Backend
	endpoint string
}

// NewOpenAI creates the OpenAI backend. fallback may be nil; when set it
// handles quota-exhausted synthesis in the same Speak call.
func NewOpenAI(voice string, fallback Backend) *OpenAI {
	if voice == "" {
		voice = DefaultOpenAIVoice
	}
	return &OpenAI{voice: voice, fallback: fallback, endpoint: openAIEndpoint}
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Available() bool {
	return os.Getenv("OPENAI_API_KEY") != "" && findPlayer() != nil
}

func (o *OpenAI) Speak(ctx context.Context, text string) error {
	return speakWithFallback(ctx, o.Name(), o.fallback, text, func(ctx context.Context) ([]byte, error) {
		return postSynthesis(ctx, o.endpoint,
			map[string]string{
				"Authorization": "Bearer " + os.Getenv("OPENAI_API_KEY"),
			},
			map[string]any{
				"model":           openAIModel,
				"input":           text,
				"voice":           o.voice,
				"response_format": "mp3",
			})
	})
}
