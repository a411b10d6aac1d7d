package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/portalfit/internal/output"
)

var scoreCmd = &cobra.Command{
	Use:     "score <csv>",
	Aliases: []string{"list"},
	Short:   "Score, filter and rank portal candidates",
	Long: `Load a transfer portal export, score every candidate and list the
ones matching the filters, best fit first.

Examples:
  portalfit score portal.csv
  portalfit score portal.csv --position PG --min-fit 70
  portalfit score portal.csv --conference SEC --sort ppg --order desc
  portalfit score portal.csv --search smith -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

var (
	scoreQuery queryFlags
	scoreLimit int
)

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreQuery.register(scoreCmd, true)
	scoreCmd.Flags().IntVarP(&scoreLimit, "limit", "n", 0, "Maximum number of players to show (0 for all)")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	_, r, err := loadRoster(cfg, logger, args[0])
	if err != nil {
		return err
	}

	players, err := scoreQuery.apply(cmd, cfg, r.Players)
	if err != nil {
		return err
	}
	matched := len(players)
	if scoreLimit > 0 && len(players) > scoreLimit {
		players = players[:scoreLimit]
	}

	out := cmd.OutOrStdout()
	if err := output.OutputTo(out, outputFmt, players); err != nil {
		return err
	}

	if outputFmt == output.FormatTable || outputFmt == "" {
		fmt.Fprintf(out, "\n%d of %d players shown", len(players), len(r.Players))
		if matched > len(players) {
			fmt.Fprintf(out, " (%d matched)", matched)
		}
		fmt.Fprintln(out)
	}
	return nil
}
