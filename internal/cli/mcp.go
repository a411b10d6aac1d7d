package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/portalfit/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp <csv>",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

The CSV is loaded once at startup; the reload tool swaps in a new file
without restarting. Logs go to stderr so stdout stays a clean protocol
stream.

Add to your MCP client config:

{
  "mcpServers": {
    "portalfit": {
      "command": "/path/to/portalfit",
      "args": ["mcp", "/path/to/portal.csv"]
    }
  }
}`,
	Args: cobra.ExactArgs(1),
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Check if MCP is enabled
	if !cfg.MCP.Enabled {
		return fmt.Errorf("MCP server is disabled in config")
	}

	b, r, err := loadRoster(cfg, logger, args[0])
	if err != nil {
		return err
	}

	server := mcp.New(b, r, mcp.Options{
		Version:  version,
		Defaults: cfg.FilterDefaults(),
		HighFit:  cfg.Scoring.HighFitThreshold,
		Logger:   logger,
	})

	// Handle interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return server.Run(ctx)
}
