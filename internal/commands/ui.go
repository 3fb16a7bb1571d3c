package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/herald-hooks/herald/internal/config"
	"github.com/herald-hooks/herald/internal/webui"
)

// NewUICmd creates the ui command.
func NewUICmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Serve the local configuration and activity web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = config.Get().UIPort
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "herald UI on http://127.0.0.1:%d (ctrl-c to stop)\n", port)
			return webui.NewService(cmd.Root().Version).Run(ctx, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default: ui_port from settings)")

	return cmd
}
