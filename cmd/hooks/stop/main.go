// Package main provides the stop hook entry point.
package main

import (
	"context"

	"github.com/herald-hooks/herald/internal/announce"
	"github.com/herald-hooks/herald/pkg/hooks"
)

// Input is the hook input from the coding assistant.
type Input struct {
	hooks.BaseInput
	StopHookActive bool `json:"stop_hook_active"`
}

func main() {
	hooks.Run("stop", handleStop)
}

func handleStop(ctx *hooks.HookContext, input *Input) error {
	// A re-entrant stop (the host invoking us because of our own stop
	// handling) must stay silent.
	if input.StopHookActive {
		return nil
	}
	return announce.Speak(context.Background(), announce.Event{
		Hook:      "stop",
		SessionID: ctx.SessionID,
		CWD:       ctx.CWD,
	})
}
