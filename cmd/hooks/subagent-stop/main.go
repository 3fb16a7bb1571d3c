// Package main provides the subagent-stop hook entry point.
package main

import (
	"context"

	"github.com/herald-hooks/herald/internal/announce"
	"github.com/herald-hooks/herald/pkg/hooks"
)

// Input is the hook input from the coding assistant.
type Input struct {
	hooks.BaseInput
	AgentName string `json:"agent_name,omitempty"`
	AgentType string `json:"agent_type,omitempty"`
}

func main() {
	hooks.Run("subagent-stop", handleSubagentStop)
}

func handleSubagentStop(ctx *hooks.HookContext, input *Input) error {
	return announce.Speak(context.Background(), announce.Event{
		Hook:      "subagent-stop",
		SessionID: ctx.SessionID,
		AgentName: input.AgentName,
		AgentType: input.AgentType,
		CWD:       ctx.CWD,
	})
}
