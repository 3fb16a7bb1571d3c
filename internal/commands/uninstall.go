package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herald-hooks/herald/internal/installer"
)

// NewUninstallCmd creates the uninstall command.
func NewUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove herald hooks from the assistant settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := settingsPath(cmd)
			if err := installer.Uninstall(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed herald hooks from %s\n", path)
			fmt.Fprintln(cmd.OutOrStdout(), "The herald data directory was left in place.")
			return nil
		},
	}
}
