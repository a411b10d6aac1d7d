package filter

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vijay-prabhu/portalfit/internal/columns"
	"github.com/vijay-prabhu/portalfit/internal/roster"
)

// SortField names a Player field by its canonical name.
type SortField string

// DefaultSortField orders candidates best fit first.
const DefaultSortField SortField = columns.FitScore

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortFields lists every sortable field.
var SortFields = []SortField{
	"id",
	columns.Name, columns.Position, columns.Height, columns.PreviousTeam,
	columns.Conference, columns.Archetype, columns.Summary, columns.Committed,
	columns.OffensiveRating, columns.DefensiveRating, columns.UsageRate,
	columns.EFGPercent, columns.ThreePtPercent, columns.FTPercent,
	columns.ReboundingPercent, columns.BlockPercent, columns.StealPercent,
	columns.PPG, columns.RPG, columns.APG, columns.Minutes, columns.FitScore, "pes",
	columns.TrueShootingPercent, columns.AssistPercent, columns.TurnoverPercent,
	columns.OffensiveReboundingPercent, columns.DefensiveReboundingPercent,
	columns.BoxPlusMinus, columns.OffensiveBoxPlusMinus, columns.DefensiveBoxPlusMinus,
	columns.ProductionRating,
}

// ParseSortField resolves a field name case-insensitively. Empty means the
// default.
func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return DefaultSortField, nil
	}
	for _, f := range SortFields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort field %q", ErrInvalidSpec, s)
}

// ParseDirection accepts asc or desc. Empty means descending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	}
	return "", fmt.Errorf("%w: unknown sort direction %q", ErrInvalidSpec, s)
}

// Sort returns a stably sorted copy of players. Numbers compare numerically
// with NaN lowest; strings, height included, use English collation.
func Sort(players []roster.Player, field SortField, dir Direction) []roster.Player {
	out := slices.Clone(players)
	if out == nil {
		out = []roster.Player{}
	}
	sign := 1
	if dir == Desc {
		sign = -1
	}

	if _, numeric := (roster.Player{}).Number(string(field)); numeric {
		slices.SortStableFunc(out, func(a, b roster.Player) int {
			x, _ := a.Number(string(field))
			y, _ := b.Number(string(field))
			return sign * cmp.Compare(x, y)
		})
		return out
	}

	if _, text := (roster.Player{}).Text(string(field)); text {
		coll := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b roster.Player) int {
			x, _ := a.Text(string(field))
			y, _ := b.Text(string(field))
			return sign * coll.CompareString(x, y)
		})
	}
	return out
}
