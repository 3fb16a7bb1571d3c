// Package main provides the user-prompt-submit hook entry point. Log-only.
package main

import (
	"github.com/herald-hooks/herald/pkg/hooks"
)

// Input is the hook input from the coding assistant.
type Input struct {
	hooks.BaseInput
	Prompt string `json:"prompt"`
}

func main() {
	hooks.Run("user-prompt-submit", func(*hooks.HookContext, *Input) error {
		return nil
	})
}
