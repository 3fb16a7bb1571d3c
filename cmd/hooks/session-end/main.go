// Package main provides the session-end hook entry point.
package main

import (
	"context"

	"github.com/herald-hooks/herald/internal/announce"
	"github.com/herald-hooks/herald/pkg/hooks"
)

// Input is the hook input from the coding assistant.
type Input struct {
	hooks.BaseInput
	Reason string `json:"reason,omitempty"`
}

func main() {
	hooks.Run("session-end", handleSessionEnd)
}

func handleSessionEnd(ctx *hooks.HookContext, input *Input) error {
	return announce.Speak(context.Background(), announce.Event{
		Hook:      "session-end",
		SessionID: ctx.SessionID,
		CWD:       ctx.CWD,
	})
}
