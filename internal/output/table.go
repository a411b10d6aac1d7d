package output

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/vijay-prabhu/portalfit/internal/columns"
	"github.com/vijay-prabhu/portalfit/internal/filter"
	"github.com/vijay-prabhu/portalfit/internal/roster"
	"github.com/vijay-prabhu/portalfit/internal/scoring"
)

// Styler decorates a graded value, typically with terminal colour
type Styler func(g filter.Grade, text string) string

var styler Styler = plain

func plain(_ filter.Grade, text string) string { return text }

// SetStyler changes how graded cells are rendered. Nil restores plain text.
func SetStyler(s Styler) {
	if s == nil {
		s = plain
	}
	styler = s
}

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []roster.Player:
		return playersTable(w, v)
	case *roster.Player:
		return playerDetail(w, v)
	case *filter.Stats:
		return statsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func playersTable(w io.Writer, players []roster.Player) error {
	if len(players) == 0 {
		fmt.Fprintln(w, "No players match the current filters.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Pos", "Ht", "Team", "Conf", "Archetype",
		"Fit", "PPG", "RPG", "APG", "ORtg", "DRtg", "eFG%", "3P%")

	for _, p := range players {
		row := []string{
			fmt.Sprintf("%d", p.ID),
			truncate(p.Name, 24),
			p.Position,
			p.Height,
			truncate(p.PreviousTeam, 20),
			p.Conference,
			truncate(p.Archetype, 16),
			graded(columns.FitScore, p.FitScore),
			number(p.PPG),
			number(p.RPG),
			number(p.APG),
			graded(columns.OffensiveRating, p.OffensiveRating),
			graded(columns.DefensiveRating, p.DefensiveRating),
			graded(columns.EFGPercent, p.EFGPercent),
			graded(columns.ThreePtPercent, p.ThreePtPercent),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to add row for %s: %w", p.Name, err)
		}
	}

	return table.Render()
}

func playerDetail(w io.Writer, p *roster.Player) error {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "Position:    %s\n", orDash(p.Position))
	fmt.Fprintf(w, "Height:      %s\n", p.Height)
	fmt.Fprintf(w, "Team:        %s (%s)\n", p.PreviousTeam, filter.ConferenceName(p.Conference))
	fmt.Fprintf(w, "Archetype:   %s\n", p.Archetype)
	fmt.Fprintf(w, "Committed:   %s\n", p.Committed)
	fmt.Fprintf(w, "Fit score:   %s\n", graded(columns.FitScore, p.FitScore))
	fmt.Fprintf(w, "PES:         %s\n", number(p.PES))
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Summary)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stats:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	stats := []struct {
		label string
		field string
		value float64
	}{
		{"PPG", columns.PPG, p.PPG},
		{"RPG", columns.RPG, p.RPG},
		{"APG", columns.APG, p.APG},
		{"Minutes", columns.Minutes, p.Minutes},
		{"Offensive rating", columns.OffensiveRating, p.OffensiveRating},
		{"Defensive rating", columns.DefensiveRating, p.DefensiveRating},
		{"Usage rate", columns.UsageRate, p.UsageRate},
		{"eFG%", columns.EFGPercent, p.EFGPercent},
		{"3P%", columns.ThreePtPercent, p.ThreePtPercent},
		{"FT%", columns.FTPercent, p.FTPercent},
		{"Rebounding %", columns.ReboundingPercent, p.ReboundingPercent},
		{"Block %", columns.BlockPercent, p.BlockPercent},
		{"Steal %", columns.StealPercent, p.StealPercent},
		{"TS%", columns.TrueShootingPercent, p.Advanced.TrueShootingPercent},
		{"BPM", columns.BoxPlusMinus, p.Advanced.BoxPlusMinus},
	}
	for _, s := range stats {
		fmt.Fprintf(tw, "  %s\t%s\n", s.label, graded(s.field, s.value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "PES breakdown:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range scoring.Breakdown(p.Input()) {
		fmt.Fprintf(tw, "  %s\t%.0f%%\t%s\n", c.Name, c.Weight*100, number(c.Contribution))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(p.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, msg := range p.Warnings {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}

	return nil
}

func statsTable(w io.Writer, s *filter.Stats) error {
	fmt.Fprintln(w, "Transfer Portal Summary")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Candidates:             %d of %d\n", s.Visible, s.Total)
	fmt.Fprintf(w, "Average fit score:      %.1f (%s match quality)\n", s.AverageFitScore, s.MatchQuality)
	fmt.Fprintf(w, "High-fit players:       %d (fit score >= %g)\n", s.HighFitCount, s.HighFitThreshold)
	fmt.Fprintf(w, "Most available:         %s (%d players)\n", s.TopPosition, s.TopPositionCount)
	fmt.Fprintf(w, "Top conference:         %s (%d players)\n", filter.ConferenceName(s.TopConference), s.TopConferenceCount)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Insights:")
	for _, insight := range filter.Insights(*s) {
		fmt.Fprintf(w, "  - %s\n", insight)
	}

	return nil
}

func graded(field string, v float64) string {
	return styler(filter.GradeOf(field, v), number(v))
}

func number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
