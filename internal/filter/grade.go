package filter

import (
	"math"

	"github.com/vijay-prabhu/portalfit/internal/columns"
)

// Grade is a coarse rating of one stat.
type Grade int

const (
	GradeNone Grade = iota
	GradeLow
	GradeMid
	GradeHigh
)

func (g Grade) String() string {
	switch g {
	case GradeLow:
		return "low"
	case GradeMid:
		return "mid"
	case GradeHigh:
		return "high"
	}
	return "none"
}

type threshold struct {
	high, low float64
	inverted  bool
}

var thresholds = map[string]threshold{
	columns.FitScore:          {high: 75, low: 65},
	columns.OffensiveRating:   {high: 115, low: 105},
	columns.DefensiveRating:   {high: 95, low: 105, inverted: true},
	columns.EFGPercent:        {high: 55, low: 45},
	columns.ThreePtPercent:    {high: 35, low: 30},
	columns.FTPercent:         {high: 80, low: 70},
	columns.BlockPercent:      {high: 4, low: 2},
	columns.StealPercent:      {high: 3, low: 2},
	columns.ReboundingPercent: {high: 15, low: 10},
}

// GradeOf rates value for field. Fields without thresholds, and NaN
// values, grade as GradeNone. Defensive rating is better when lower.
func GradeOf(field string, value float64) Grade {
	t, ok := thresholds[field]
	if !ok || math.IsNaN(value) {
		return GradeNone
	}
	if t.inverted {
		switch {
		case value <= t.high:
			return GradeHigh
		case value <= t.low:
			return GradeMid
		}
		return GradeLow
	}
	switch {
	case value >= t.high:
		return GradeHigh
	case value >= t.low:
		return GradeMid
	}
	return GradeLow
}
