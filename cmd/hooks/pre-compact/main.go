// Package main provides the pre-compact hook entry point.
package main

import (
	"context"

	"github.com/herald-hooks/herald/internal/announce"
	"github.com/herald-hooks/herald/pkg/hooks"
)

// Input is the hook input from the coding assistant.
type Input struct {
	hooks.BaseInput
	Trigger            string `json:"trigger,omitempty"` // "manual" or "auto"
	CustomInstructions string `json:"custom_instructions,omitempty"`
}

func main() {
	hooks.Run("pre-compact", handlePreCompact)
}

func handlePreCompact(ctx *hooks.HookContext, input *Input) error {
	return announce.Speak(context.Background(), announce.Event{
		Hook:      "pre-compact",
		SessionID: ctx.SessionID,
		CWD:       ctx.CWD,
	})
}
