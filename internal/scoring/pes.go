// Package scoring computes the Performance/Efficiency Score (PES) and
// blends it with team and player similarity into the final fit score.
package scoring

import "github.com/vijay-prabhu/portalfit/internal/numeric"

// Input carries the raw statistics consumed by PES.
type Input struct {
	PPG             float64
	EFGPercent      float64
	ThreePtPercent  float64
	FTPercent       float64
	TrueShooting    float64
	APG             float64
	AssistPercent   float64
	TurnoverPercent float64
	StealPercent    float64
	BlockPercent    float64
	DefensiveRating float64
	RPG             float64
	OffRebPercent   float64
	DefRebPercent   float64
	BPM             float64
	OBPM            float64
	DBPM            float64
	Production      float64
}

// Component is one normalized statistic inside a category. Inverted
// components reward low raw values (turnovers, points allowed).
type Component struct {
	Stat   string
	Bounds Bounds
	Invert bool
	value  func(Input) float64
}

// Normalize scales the component's raw value into [0, 1].
func (c Component) Normalize(in Input) float64 {
	v := numeric.Scale(c.value(in), c.Bounds.Lo, c.Bounds.Hi)
	if c.Invert {
		return 1 - v
	}
	return v
}

// Category is a weighted group of components averaged without further
// weighting.
type Category struct {
	Name       string
	Weight     float64
	Components []Component
}

// Categories lists the PES categories. Weights sum to 1.
var Categories = []Category{
	{
		Name:   "scoring",
		Weight: 0.10,
		Components: []Component{
			{Stat: "ppg", Bounds: BoundsPPG, value: func(in Input) float64 { return in.PPG }},
		},
	},
	{
		Name:   "shooting",
		Weight: 0.25,
		Components: []Component{
			{Stat: "efgPercent", Bounds: BoundsEFG, value: func(in Input) float64 { return in.EFGPercent }},
			{Stat: "threePtPercent", Bounds: BoundsThreePt, value: func(in Input) float64 { return in.ThreePtPercent }},
			{Stat: "ftPercent", Bounds: BoundsFT, value: func(in Input) float64 { return in.FTPercent }},
			{Stat: "trueShootingPercent", Bounds: BoundsTrueShooting, value: func(in Input) float64 { return in.TrueShooting }},
		},
	},
	{
		Name:   "playmaking",
		Weight: 0.15,
		Components: []Component{
			{Stat: "apg", Bounds: BoundsAPG, value: func(in Input) float64 { return in.APG }},
			{Stat: "assistPercent", Bounds: BoundsAssistPct, value: func(in Input) float64 { return in.AssistPercent }},
			{Stat: "turnoverPercent", Bounds: BoundsTurnoverPct, Invert: true, value: func(in Input) float64 { return in.TurnoverPercent }},
		},
	},
	{
		Name:   "defense",
		Weight: 0.15,
		Components: []Component{
			{Stat: "stealPercent", Bounds: BoundsStealPct, value: func(in Input) float64 { return in.StealPercent }},
			{Stat: "blockPercent", Bounds: BoundsBlockPct, value: func(in Input) float64 { return in.BlockPercent }},
			{Stat: "defensiveRating", Bounds: BoundsDefensiveRating, Invert: true, value: func(in Input) float64 { return in.DefensiveRating }},
		},
	},
	{
		Name:   "rebounding",
		Weight: 0.10,
		Components: []Component{
			{Stat: "rpg", Bounds: BoundsRPG, value: func(in Input) float64 { return in.RPG }},
			{Stat: "offensiveReboundingPercent", Bounds: BoundsOffRebPct, value: func(in Input) float64 { return in.OffRebPercent }},
			{Stat: "defensiveReboundingPercent", Bounds: BoundsDefRebPct, value: func(in Input) float64 { return in.DefRebPercent }},
		},
	},
	{
		Name:   "impact",
		Weight: 0.25,
		Components: []Component{
			{Stat: "boxPlusMinus", Bounds: BoundsBPM, value: func(in Input) float64 { return in.BPM }},
			{Stat: "offensiveBoxPlusMinus", Bounds: BoundsOBPM, value: func(in Input) float64 { return in.OBPM }},
			{Stat: "defensiveBoxPlusMinus", Bounds: BoundsDBPM, value: func(in Input) float64 { return in.DBPM }},
			{Stat: "productionRating", Bounds: BoundsProductionRating, value: func(in Input) float64 { return in.Production }},
		},
	},
}

// CategoryScore is one category's contribution to PES.
type CategoryScore struct {
	Name         string  `json:"name"`
	Weight       float64 `json:"weight"`
	Average      float64 `json:"average"`
	Contribution float64 `json:"contribution"`
}

// Average returns the unweighted mean of the category's normalized components.
func (c Category) Average(in Input) float64 {
	values := make([]float64, len(c.Components))
	for i, comp := range c.Components {
		values[i] = comp.Normalize(in)
	}
	return numeric.Mean(values...)
}

// Breakdown returns the per-category view of PES. Contributions are on the
// 0-100 scale and sum to PES.
func Breakdown(in Input) []CategoryScore {
	scores := make([]CategoryScore, len(Categories))
	for i, c := range Categories {
		avg := c.Average(in)
		scores[i] = CategoryScore{
			Name:         c.Name,
			Weight:       c.Weight,
			Average:      avg,
			Contribution: 100 * c.Weight * avg,
		}
	}
	return scores
}

// PES returns the 0-100 Performance/Efficiency Score. A NaN input yields NaN.
func PES(in Input) float64 {
	total := 0.0
	for _, c := range Categories {
		total += c.Weight * c.Average(in)
	}
	return 100 * total
}

// Midpoint returns an Input with every stat at the centre of its bounds.
func Midpoint() Input {
	return Input{
		PPG:             BoundsPPG.Midpoint(),
		EFGPercent:      BoundsEFG.Midpoint(),
		ThreePtPercent:  BoundsThreePt.Midpoint(),
		FTPercent:       BoundsFT.Midpoint(),
		TrueShooting:    BoundsTrueShooting.Midpoint(),
		APG:             BoundsAPG.Midpoint(),
		AssistPercent:   BoundsAssistPct.Midpoint(),
		TurnoverPercent: BoundsTurnoverPct.Midpoint(),
		StealPercent:    BoundsStealPct.Midpoint(),
		BlockPercent:    BoundsBlockPct.Midpoint(),
		DefensiveRating: BoundsDefensiveRating.Midpoint(),
		RPG:             BoundsRPG.Midpoint(),
		OffRebPercent:   BoundsOffRebPct.Midpoint(),
		DefRebPercent:   BoundsDefRebPct.Midpoint(),
		BPM:             BoundsBPM.Midpoint(),
		OBPM:            BoundsOBPM.Midpoint(),
		DBPM:            BoundsDBPM.Midpoint(),
		Production:      BoundsProductionRating.Midpoint(),
	}
}
