// Package filter narrows, orders and summarizes a roster. Every function is
// pure: inputs are never mutated and results are fresh slices.
package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vijay-prabhu/portalfit/internal/roster"
)

// ErrInvalidSpec is returned by Spec.Validate.
var ErrInvalidSpec = errors.New("invalid filter")

// Default bounds for the range filters.
const (
	DefaultMinHeight = 66 // 5'6"
	DefaultMaxHeight = 84 // 7'0"
	DefaultMinUsage  = 0.0
	DefaultMaxUsage  = 35.0
	DefaultHeight    = 72
)

// Spec is the full set of filter criteria. Categorical fields accept All.
type Spec struct {
	Position    string  `json:"position"`
	Conference  string  `json:"conference"`
	Archetype   string  `json:"archetype"`
	Committed   string  `json:"committed"`
	MinHeight   int     `json:"min_height"`
	MaxHeight   int     `json:"max_height"`
	MinUsage    float64 `json:"min_usage"`
	MaxUsage    float64 `json:"max_usage"`
	MinFitScore float64 `json:"min_fit_score"`
	Search      string  `json:"search"`
}

// DefaultSpec matches every record with a height in 5'6"-7'0" and usage in
// 0-35.
func DefaultSpec() Spec {
	return Spec{
		Position:   All,
		Conference: All,
		Archetype:  All,
		Committed:  All,
		MinHeight:  DefaultMinHeight,
		MaxHeight:  DefaultMaxHeight,
		MinUsage:   DefaultMinUsage,
		MaxUsage:   DefaultMaxUsage,
	}
}

// Validate checks categorical values against the vocabulary and that each
// range is ordered.
func (s Spec) Validate() error {
	var errs []error

	check := func(name, value string, allowed []string) {
		if !wildcard(value) && !contains(allowed, value) {
			errs = append(errs, fmt.Errorf("%w: unknown %s %q", ErrInvalidSpec, name, value))
		}
	}
	check("position", s.Position, Positions)
	check("conference", s.Conference, Conferences)
	check("archetype", s.Archetype, Archetypes)
	check("committed", s.Committed, CommitmentStatus)

	if s.MinHeight > s.MaxHeight {
		errs = append(errs, fmt.Errorf("%w: height range %s-%s is reversed",
			ErrInvalidSpec, FormatHeight(s.MinHeight), FormatHeight(s.MaxHeight)))
	}
	if s.MinUsage > s.MaxUsage {
		errs = append(errs, fmt.Errorf("%w: usage range %g-%g is reversed",
			ErrInvalidSpec, s.MinUsage, s.MaxUsage))
	}

	return errors.Join(errs...)
}

var heightPattern = regexp.MustCompile(`(\d+)'(\d+)"`)

// ParseHeight converts a feet'inches" string to inches. Anything it cannot
// read is 72 (6'0").
func ParseHeight(s string) int {
	m := heightPattern.FindStringSubmatch(s)
	if m == nil {
		return DefaultHeight
	}
	feet, err1 := strconv.Atoi(m[1])
	inches, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return DefaultHeight
	}
	return feet*12 + inches
}

// FormatHeight renders inches as feet'inches".
func FormatHeight(inches int) string {
	return fmt.Sprintf(`%d'%d"`, inches/12, inches%12)
}

// Match reports whether p satisfies every criterion in spec. A NaN fit
// score never passes the minimum.
func Match(p roster.Player, spec Spec) bool {
	if !wildcard(spec.Position) && p.Position != spec.Position {
		return false
	}
	if !wildcard(spec.Conference) && p.Conference != spec.Conference {
		return false
	}
	if !wildcard(spec.Archetype) && p.Archetype != spec.Archetype {
		return false
	}
	if !wildcard(spec.Committed) && !strings.EqualFold(p.Committed, spec.Committed) {
		return false
	}

	h := ParseHeight(p.Height)
	if h < spec.MinHeight || h > spec.MaxHeight {
		return false
	}
	if !(p.UsageRate >= spec.MinUsage && p.UsageRate <= spec.MaxUsage) {
		return false
	}
	if !(p.FitScore >= spec.MinFitScore) {
		return false
	}

	if term := strings.ToLower(spec.Search); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.PreviousTeam), term) {
			return false
		}
	}
	return true
}

// wildcard treats an unset categorical filter like All.
func wildcard(v string) bool {
	return v == "" || v == All
}

// Apply returns the players matching spec in their original order.
func Apply(players []roster.Player, spec Spec) []roster.Player {
	out := make([]roster.Player, 0, len(players))
	for _, p := range players {
		if Match(p, spec) {
			out = append(out, p)
		}
	}
	return out
}
