// Package export writes a player list back out as CSV in the import
// header layout.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vijay-prabhu/portalfit/internal/roster"
)

// ErrNoRows is returned when there is nothing to export.
var ErrNoRows = errors.New("no players to export")

// Header is the fixed export column order.
var Header = []string{
	"Name", "Position", "Height", "Previous Team", "Conference", "Fit Score",
	"Archetype", "PPG", "RPG", "APG", "Minutes", "Offensive Rating",
	"Defensive Rating", "Usage Rate", "eFG%", "3P%", "FT%", "Rebounding %",
	"Block %", "Steal %", "Summary",
}

// Encode renders players as CSV text, one row per player in the given
// order. Rows are joined with "\n" and there is no trailing newline.
//
// Text fields are written verbatim and the summary is only wrapped in
// quotes, so values containing commas or quotes do not survive a re-import.
func Encode(players []roster.Player) (string, error) {
	if len(players) == 0 {
		return "", ErrNoRows
	}

	lines := make([]string, 0, len(players)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, p := range players {
		lines = append(lines, strings.Join(record(p), ","))
	}
	return strings.Join(lines, "\n"), nil
}

func record(p roster.Player) []string {
	return []string{
		p.Name,
		p.Position,
		p.Height,
		p.PreviousTeam,
		p.Conference,
		decimal(p.FitScore),
		p.Archetype,
		decimal(p.PPG),
		decimal(p.RPG),
		decimal(p.APG),
		decimal(p.Minutes),
		decimal(p.OffensiveRating),
		decimal(p.DefensiveRating),
		decimal(p.UsageRate),
		decimal(p.EFGPercent),
		decimal(p.ThreePtPercent),
		decimal(p.FTPercent),
		decimal(p.ReboundingPercent),
		decimal(p.BlockPercent),
		decimal(p.StealPercent),
		`"` + p.Summary + `"`,
	}
}

func decimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// Write encodes players to w.
func Write(w io.Writer, players []roster.Player) error {
	text, err := Encode(players)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Filename returns the download name for an export made at t, dated in UTC.
func Filename(t time.Time) string {
	return fmt.Sprintf("transfer_portal_candidates_%s.csv", t.UTC().Format("2006-01-02"))
}
