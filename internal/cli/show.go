package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/portalfit/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <csv> <id|name>",
	Short: "Show one candidate in detail",
	Long: `Show the full profile of a single candidate, including the
per-category breakdown of the Player Evaluation Score.

The identifier can be:
  - Player ID as listed by 'portalfit score'
  - Player name (exact, or case-insensitive prefix)

Examples:
  portalfit show portal.csv 12
  portalfit show portal.csv "Jordan Smith"
  portalfit show portal.csv jord -o json`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	identifier := args[1]

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	_, r, err := loadRoster(cfg, logger, args[0])
	if err != nil {
		return err
	}

	p, ok := r.Find(identifier)
	if !ok {
		return fmt.Errorf("no player found matching %q", identifier)
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, p)
}
