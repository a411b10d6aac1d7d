package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/portalfit/internal/filter"
	"github.com/vijay-prabhu/portalfit/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats <csv>",
	Short: "Summarize the filtered candidate pool",
	Long: `Show summary statistics and insights for the candidates matching
the filters: average fit score, high-fit count, the most common position
and conference, and an overall quality label.

Examples:
  portalfit stats portal.csv
  portalfit stats portal.csv --conference B1G
  portalfit stats portal.csv --high-fit 80 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

var (
	statsQuery   queryFlags
	statsHighFit float64
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsQuery.register(statsCmd, false)
	statsCmd.Flags().Float64Var(&statsHighFit, "high-fit", 0, "High fit threshold (default from config)")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	_, r, err := loadRoster(cfg, logger, args[0])
	if err != nil {
		return err
	}

	visible, err := statsQuery.apply(cmd, cfg, r.Players)
	if err != nil {
		return err
	}

	highFit := cfg.Scoring.HighFitThreshold
	if cmd.Flags().Changed("high-fit") {
		highFit = statsHighFit
	}
	stats := filter.Summarize(visible, len(r.Players), highFit)

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, &stats)
}
