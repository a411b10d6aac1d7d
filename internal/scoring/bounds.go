package scoring

// Bounds is a fixed min-max normalization window for one statistic. Values
// outside the window saturate at 0 or 1.
type Bounds struct {
	Lo float64
	Hi float64
}

// Midpoint returns the centre of the window; a stat at its midpoint
// normalizes to exactly 0.5.
func (b Bounds) Midpoint() float64 {
	return (b.Lo + b.Hi) / 2
}

// Normalization windows, roughly the 10th-90th percentile of D1 rotation
// players.
var (
	BoundsPPG              = Bounds{Lo: 5, Hi: 20}
	BoundsEFG              = Bounds{Lo: 40, Hi: 55}
	BoundsThreePt          = Bounds{Lo: 25, Hi: 40}
	BoundsFT               = Bounds{Lo: 60, Hi: 85}
	BoundsTrueShooting     = Bounds{Lo: 45, Hi: 60}
	BoundsAPG              = Bounds{Lo: 1, Hi: 5}
	BoundsAssistPct        = Bounds{Lo: 5, Hi: 30}
	BoundsTurnoverPct      = Bounds{Lo: 10, Hi: 25}
	BoundsStealPct         = Bounds{Lo: 0.5, Hi: 3}
	BoundsBlockPct         = Bounds{Lo: 0.5, Hi: 3}
	BoundsDefensiveRating  = Bounds{Lo: 90, Hi: 115}
	BoundsRPG              = Bounds{Lo: 2, Hi: 10}
	BoundsOffRebPct        = Bounds{Lo: 1, Hi: 12}
	BoundsDefRebPct        = Bounds{Lo: 8, Hi: 25}
	BoundsBPM              = Bounds{Lo: -5, Hi: 10}
	BoundsOBPM             = Bounds{Lo: -5, Hi: 8}
	BoundsDBPM             = Bounds{Lo: -3, Hi: 5}
	BoundsProductionRating = Bounds{Lo: 0, Hi: 6}
)

// Blend weights for the final fit score.
const (
	WeightPES              = 0.75
	WeightTeamSimilarity   = 0.125
	WeightPlayerSimilarity = 0.125
)

// DefaultMissScore is the neutral similarity used when a name or team has no
// entry in its table.
const DefaultMissScore = 50.0
