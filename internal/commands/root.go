// Package commands implements the herald CLI.
package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/herald-hooks/herald/internal/installer"
)

// Execute runs the CLI application.
func Execute(version string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:           "herald",
		Short:         "Voice announcements for coding assistant lifecycle events",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().String("settings", "", "Override assistant settings file path")

	root.AddCommand(NewInitCmd())
	root.AddCommand(NewStatusCmd())
	root.AddCommand(NewUninstallCmd())
	root.AddCommand(NewUICmd())
	root.AddCommand(NewSpeakCmd())

	err := root.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}

// settingsPath resolves the assistant settings file from the --settings
// flag, falling back to the default location.
func settingsPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("settings"); path != "" {
		return path
	}
	return installer.DefaultSettingsPath()
}
