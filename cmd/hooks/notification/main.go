// Package main provides the notification hook entry point.
package main

import (
	"context"

	"github.com/herald-hooks/herald/internal/announce"
	"github.com/herald-hooks/herald/pkg/hooks"
)

// Input is the hook input from the coding assistant.
type Input struct {
	hooks.BaseInput
	Message string `json:"message"`
}

func main() {
	hooks.Run("notification", handleNotification)
}

func handleNotification(ctx *hooks.HookContext, input *Input) error {
	return announce.Speak(context.Background(), announce.Event{
		Hook:      "notification",
		SessionID: ctx.SessionID,
		CWD:       ctx.CWD,
		Text:      input.Message,
	})
}
