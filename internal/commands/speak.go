package commands

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/herald-hooks/herald/internal/announce"
)

// NewSpeakCmd creates the speak command.
func NewSpeakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speak <text>...",
		Short: "Announce arbitrary text through the configured backends",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errors.New("nothing to say")
			}
			cwd, _ := os.Getwd()
			return announce.Speak(cmd.Context(), announce.Event{
				Hook: "speak",
				CWD:  cwd,
				Text: text,
			})
		},
	}
}
