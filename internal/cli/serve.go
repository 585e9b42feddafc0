package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jabulente/bubblechart/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bubble chart HTTP API",
		Long: `Run the bubble chart HTTP API.

The server exposes the packing pipeline over HTTP:

  GET  /healthz          liveness and version
  POST /api/v1/layout    pack areas into a layout
  POST /api/v1/render    render a layout to SVG, PNG, PDF, or JSON

The server shares the local result cache with the CLI commands and shuts
down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := server.New(runner, c.Logger)
			printInfo("Listening on %s", addr)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
