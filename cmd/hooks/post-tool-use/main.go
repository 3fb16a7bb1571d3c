// Package main provides the post-tool-use hook entry point. Log-only.
package main

import (
	json "github.com/goccy/go-json"

	"github.com/herald-hooks/herald/pkg/hooks"
)

// Input is the hook input from the coding assistant.
type Input struct {
	hooks.BaseInput
	ToolName     string          `json:"tool_name"`
	ToolInput    json.RawMessage `json:"tool_input,omitempty"`
	ToolResponse json.RawMessage `json:"tool_response,omitempty"`
}

func main() {
	hooks.Run("post-tool-use", func(*hooks.HookContext, *Input) error {
		return nil
	})
}
