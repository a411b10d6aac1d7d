// Package roster turns a transfer-portal CSV into scored player records.
package roster

import (
	"encoding/json"
	"math"

	"github.com/vijay-prabhu/portalfit/internal/columns"
	"github.com/vijay-prabhu/portalfit/internal/scoring"
)

// Player is one canonical candidate record. Numeric fields may hold NaN
// when the source carried an unparseable advanced metric.
type Player struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Height       string `json:"height"`
	PreviousTeam string `json:"previousTeam"`
	Conference   string `json:"conference"`
	Archetype    string `json:"archetype"`
	Summary      string `json:"summary"`
	Committed    string `json:"committed"`

	OffensiveRating   float64 `json:"offensiveRating"`
	DefensiveRating   float64 `json:"defensiveRating"`
	UsageRate         float64 `json:"usageRate"`
	EFGPercent        float64 `json:"efgPercent"`
	ThreePtPercent    float64 `json:"threePtPercent"`
	FTPercent         float64 `json:"ftPercent"`
	ReboundingPercent float64 `json:"reboundingPercent"`
	BlockPercent      float64 `json:"blockPercent"`
	StealPercent      float64 `json:"stealPercent"`
	PPG               float64 `json:"ppg"`
	RPG               float64 `json:"rpg"`
	APG               float64 `json:"apg"`
	Minutes           float64 `json:"minutes"`
	FitScore          float64 `json:"fitScore"`
	PES               float64 `json:"pes"`

	Advanced Advanced `json:"advanced"`
	Warnings []string `json:"warnings,omitempty"`
}

// Advanced holds the efficiency metrics that only current-generation files
// carry. Legacy rows get the neutral defaults.
type Advanced struct {
	TrueShootingPercent        float64 `json:"trueShootingPercent"`
	AssistPercent              float64 `json:"assistPercent"`
	TurnoverPercent            float64 `json:"turnoverPercent"`
	OffensiveReboundingPercent float64 `json:"offensiveReboundingPercent"`
	DefensiveReboundingPercent float64 `json:"defensiveReboundingPercent"`
	BoxPlusMinus               float64 `json:"boxPlusMinus"`
	OffensiveBoxPlusMinus      float64 `json:"offensiveBoxPlusMinus"`
	DefensiveBoxPlusMinus      float64 `json:"defensiveBoxPlusMinus"`
	ProductionRating           float64 `json:"productionRating"`
}

// Input returns the scoring inputs for p.
func (p Player) Input() scoring.Input {
	return scoring.Input{
		PPG:             p.PPG,
		EFGPercent:      p.EFGPercent,
		ThreePtPercent:  p.ThreePtPercent,
		FTPercent:       p.FTPercent,
		TrueShooting:    p.Advanced.TrueShootingPercent,
		APG:             p.APG,
		AssistPercent:   p.Advanced.AssistPercent,
		TurnoverPercent: p.Advanced.TurnoverPercent,
		StealPercent:    p.StealPercent,
		BlockPercent:    p.BlockPercent,
		DefensiveRating: p.DefensiveRating,
		RPG:             p.RPG,
		OffRebPercent:   p.Advanced.OffensiveReboundingPercent,
		DefRebPercent:   p.Advanced.DefensiveReboundingPercent,
		BPM:             p.Advanced.BoxPlusMinus,
		OBPM:            p.Advanced.OffensiveBoxPlusMinus,
		DBPM:            p.Advanced.DefensiveBoxPlusMinus,
		Production:      p.Advanced.ProductionRating,
	}
}

// Number returns a numeric field by its canonical name.
func (p Player) Number(field string) (float64, bool) {
	switch field {
	case "id":
		return float64(p.ID), true
	case columns.OffensiveRating:
		return p.OffensiveRating, true
	case columns.DefensiveRating:
		return p.DefensiveRating, true
	case columns.UsageRate:
		return p.UsageRate, true
	case columns.EFGPercent:
		return p.EFGPercent, true
	case columns.ThreePtPercent:
		return p.ThreePtPercent, true
	case columns.FTPercent:
		return p.FTPercent, true
	case columns.ReboundingPercent:
		return p.ReboundingPercent, true
	case columns.BlockPercent:
		return p.BlockPercent, true
	case columns.StealPercent:
		return p.StealPercent, true
	case columns.PPG:
		return p.PPG, true
	case columns.RPG:
		return p.RPG, true
	case columns.APG:
		return p.APG, true
	case columns.Minutes:
		return p.Minutes, true
	case columns.FitScore:
		return p.FitScore, true
	case "pes":
		return p.PES, true
	case columns.TrueShootingPercent:
		return p.Advanced.TrueShootingPercent, true
	case columns.AssistPercent:
		return p.Advanced.AssistPercent, true
	case columns.TurnoverPercent:
		return p.Advanced.TurnoverPercent, true
	case columns.OffensiveReboundingPercent:
		return p.Advanced.OffensiveReboundingPercent, true
	case columns.DefensiveReboundingPercent:
		return p.Advanced.DefensiveReboundingPercent, true
	case columns.BoxPlusMinus:
		return p.Advanced.BoxPlusMinus, true
	case columns.OffensiveBoxPlusMinus:
		return p.Advanced.OffensiveBoxPlusMinus, true
	case columns.DefensiveBoxPlusMinus:
		return p.Advanced.DefensiveBoxPlusMinus, true
	case columns.ProductionRating:
		return p.Advanced.ProductionRating, true
	}
	return 0, false
}

// Text returns a string field by its canonical name.
func (p Player) Text(field string) (string, bool) {
	switch field {
	case columns.Name:
		return p.Name, true
	case columns.Position:
		return p.Position, true
	case columns.Height:
		return p.Height, true
	case columns.PreviousTeam:
		return p.PreviousTeam, true
	case columns.Conference:
		return p.Conference, true
	case columns.Archetype:
		return p.Archetype, true
	case columns.Summary:
		return p.Summary, true
	case columns.Committed:
		return p.Committed, true
	}
	return "", false
}

// MarshalJSON encodes non-finite numbers as null; encoding/json rejects them.
func (p Player) MarshalJSON() ([]byte, error) {
	type alias Player
	return json.Marshal(struct {
		alias
		OffensiveRating   *float64 `json:"offensiveRating"`
		DefensiveRating   *float64 `json:"defensiveRating"`
		UsageRate         *float64 `json:"usageRate"`
		EFGPercent        *float64 `json:"efgPercent"`
		ThreePtPercent    *float64 `json:"threePtPercent"`
		FTPercent         *float64 `json:"ftPercent"`
		ReboundingPercent *float64 `json:"reboundingPercent"`
		BlockPercent      *float64 `json:"blockPercent"`
		StealPercent      *float64 `json:"stealPercent"`
		PPG               *float64 `json:"ppg"`
		RPG               *float64 `json:"rpg"`
		APG               *float64 `json:"apg"`
		Minutes           *float64 `json:"minutes"`
		FitScore          *float64 `json:"fitScore"`
		PES               *float64 `json:"pes"`
	}{
		alias:             alias(p),
		OffensiveRating:   finite(p.OffensiveRating),
		DefensiveRating:   finite(p.DefensiveRating),
		UsageRate:         finite(p.UsageRate),
		EFGPercent:        finite(p.EFGPercent),
		ThreePtPercent:    finite(p.ThreePtPercent),
		FTPercent:         finite(p.FTPercent),
		ReboundingPercent: finite(p.ReboundingPercent),
		BlockPercent:      finite(p.BlockPercent),
		StealPercent:      finite(p.StealPercent),
		PPG:               finite(p.PPG),
		RPG:               finite(p.RPG),
		APG:               finite(p.APG),
		Minutes:           finite(p.Minutes),
		FitScore:          finite(p.FitScore),
		PES:               finite(p.PES),
	})
}

// MarshalJSON encodes non-finite metrics as null.
func (a Advanced) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TrueShootingPercent        *float64 `json:"trueShootingPercent"`
		AssistPercent              *float64 `json:"assistPercent"`
		TurnoverPercent            *float64 `json:"turnoverPercent"`
		OffensiveReboundingPercent *float64 `json:"offensiveReboundingPercent"`
		DefensiveReboundingPercent *float64 `json:"defensiveReboundingPercent"`
		BoxPlusMinus               *float64 `json:"boxPlusMinus"`
		OffensiveBoxPlusMinus      *float64 `json:"offensiveBoxPlusMinus"`
		DefensiveBoxPlusMinus      *float64 `json:"defensiveBoxPlusMinus"`
		ProductionRating           *float64 `json:"productionRating"`
	}{
		TrueShootingPercent:        finite(a.TrueShootingPercent),
		AssistPercent:              finite(a.AssistPercent),
		TurnoverPercent:            finite(a.TurnoverPercent),
		OffensiveReboundingPercent: finite(a.OffensiveReboundingPercent),
		DefensiveReboundingPercent: finite(a.DefensiveReboundingPercent),
		BoxPlusMinus:               finite(a.BoxPlusMinus),
		OffensiveBoxPlusMinus:      finite(a.OffensiveBoxPlusMinus),
		DefensiveBoxPlusMinus:      finite(a.DefensiveBoxPlusMinus),
		ProductionRating:           finite(a.ProductionRating),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
