package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/herald-hooks/herald/internal/config"
	"github.com/herald-hooks/herald/internal/installer"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	var binDir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Install herald hooks into the assistant settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if binDir == "" {
				exe, err := os.Executable()
				if err != nil {
					return fmt.Errorf("resolve binary directory: %w", err)
				}
				binDir = filepath.Dir(exe)
			}

			if err := config.EnsureDataDir(); err != nil {
				return err
			}
			if _, err := os.Stat(config.SettingsPath()); os.IsNotExist(err) {
				if err := config.Save(config.Default()); err != nil {
					return err
				}
			}

			path := settingsPath(cmd)
			if err := installer.Install(path, binDir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Installed %d hooks into %s\n", len(installer.HookNames()), path)
			fmt.Fprintf(cmd.OutOrStdout(), "Hook binaries expected under %s\n", binDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&binDir, "bin-dir", "", "Directory holding the herald-hook-* binaries (default: alongside this binary)")

	return cmd
}
