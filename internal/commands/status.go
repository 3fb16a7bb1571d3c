package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/herald-hooks/herald/internal/config"
	"github.com/herald-hooks/herald/internal/installer"
	"github.com/herald-hooks/herald/internal/tts"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show installation state, settings, and available backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := settingsPath(cmd)

			status, err := installer.Installed(path)
			if err != nil {
				return err
			}
			events := make([]string, 0, len(status))
			for event := range status {
				events = append(events, event)
			}
			sort.Strings(events)

			fmt.Fprintf(out, "Settings file: %s\n", path)
			fmt.Fprintln(out, "Hooks:")
			for _, event := range events {
				mark := "missing"
				if status[event] {
					mark = "installed"
				}
				fmt.Fprintf(out, "  %-18s %s\n", event, mark)
			}

			s := config.Get()
			fmt.Fprintf(out, "\nAnnouncements enabled: %v\n", s.Enabled)
			fmt.Fprintf(out, "Queue enabled: %v (max wait %dms, poll %dms)\n",
				s.Queue.Enabled, s.Queue.MaxWaitMs, s.Queue.PollIntervalMs)
			fmt.Fprintf(out, "Data directory: %s\n", config.DataDir())

			fmt.Fprintln(out, "\nBackends:")
			registry := tts.DefaultRegistry()
			opts := tts.Options{Voice: s.Voice}
			for _, name := range s.ProviderPriority {
				factory, ok := registry.Lookup(name)
				if !ok {
					fmt.Fprintf(out, "  %-12s unknown\n", name)
					continue
				}
				mark := "unavailable"
				if factory(opts).Available() {
					mark = "available"
				}
				fmt.Fprintf(out, "  %-12s %s\n", name, mark)
			}

			if _, err := os.Stat(config.SettingsPath()); os.IsNotExist(err) {
				fmt.Fprintln(out, "\nNo herald settings file yet; run `herald init`.")
			}
			return nil
		},
	}
}
