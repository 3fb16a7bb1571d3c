// Package main provides the pre-tool-use hook entry point. It records the
// event and nothing else: tool screening is out of scope for herald.
package main

import (
	json "github.com/goccy/go-json"

	"github.com/herald-hooks/herald/pkg/hooks"
)

// Input is the hook input from the coding assistant.
type Input struct {
	hooks.BaseInput
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input,omitempty"`
}

func main() {
	hooks.Run("pre-tool-use", func(*hooks.HookContext, *Input) error {
		return nil
	})
}
