// Package main provides the session-start hook entry point.
package main

import (
	"context"

	"github.com/herald-hooks/herald/internal/announce"
	"github.com/herald-hooks/herald/pkg/hooks"
)

// Input is the hook input from the coding assistant.
type Input struct {
	hooks.BaseInput
	Source string `json:"source"` // "startup", "resume", "clear", "compact"
}

func main() {
	hooks.Run("session-start", handleSessionStart)
}

func handleSessionStart(ctx *hooks.HookContext, input *Input) error {
	// /clear restarts the session in place; announcing it is just noise.
	if input.Source == "clear" {
		return nil
	}
	return announce.Speak(context.Background(), announce.Event{
		Hook:      "session-start",
		SessionID: ctx.SessionID,
		CWD:       ctx.CWD,
	})
}
