package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/portalfit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	configFile, err := config.ExpandPath(configPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(out, "Config file already exists at %s\n", configFile)
		fmt.Fprintln(out, "Use 'portalfit config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Point [similarity] at your team and player similarity JSON files")
	fmt.Fprintln(out, "  2. Run 'portalfit score <portal.csv>' to rank candidates")
	fmt.Fprintln(out, "  3. Run 'portalfit mcp <portal.csv>' to serve them to an MCP client")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	configFile, err := config.ExpandPath(configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// No file: show the built-in defaults instead
		data, err = toml.Marshal(config.Default())
		if err != nil {
			return fmt.Errorf("failed to encode defaults: %w", err)
		}
		fmt.Fprintln(out, "# No config file found; showing defaults.")
		fmt.Fprintln(out, "# Run 'portalfit config init' to create one.")
		fmt.Fprintln(out)
		fmt.Fprint(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "# Config file: %s\n\n", configFile)
	fmt.Fprintln(out, string(data))
	return nil
}

const defaultConfig = `# portalfit configuration

[scoring]
# Rows whose previous team contains this text (case-insensitive) are dropped.
# Leave empty to keep every row.
exclude_team = "illinois"
# Similarity score used when a team or player is missing from its table.
lookup_miss_score = 50.0
# Clamp computed fit scores to 0-100.
clamp_fit_score = false
# Fit score at or above which a player counts as a high fit in stats.
high_fit_threshold = 75.0

[similarity]
# JSON objects mapping an exact team or player name to a 0-100 score.
# Empty means every lookup misses.
team_path = ""
player_path = ""

[filters]
# Default range filters; heights are in inches.
min_height = 66
max_height = 84
min_usage = 0.0
max_usage = 35.0
min_fit_score = 0.0

[export]
dir = "."

[logging]
# debug, info, warn, error
level = "info"
# console or json
format = "console"

[mcp]
enabled = true
transport = "stdio"
`
