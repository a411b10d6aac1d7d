package scoring

import "github.com/vijay-prabhu/portalfit/internal/numeric"

// Result is the scored output for one player.
type Result struct {
	PES              float64
	TeamSimilarity   float64
	PlayerSimilarity float64
	FitScore         float64
	TeamMiss         bool
	PlayerMiss       bool
}

// Engine blends PES with the team and player similarity tables.
type Engine struct {
	teams     Similarity
	players   Similarity
	missScore float64
	clamp     bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithMissScore sets the similarity substituted when a lookup misses.
func WithMissScore(v float64) Option {
	return func(e *Engine) { e.missScore = v }
}

// WithClamp bounds finite fit scores to [0, 100].
func WithClamp(clamp bool) Option {
	return func(e *Engine) { e.clamp = clamp }
}

// NewEngine creates an engine over the given tables. Nil tables behave as
// empty ones.
func NewEngine(teams, players Similarity, opts ...Option) *Engine {
	e := &Engine{
		teams:     teams,
		players:   players,
		missScore: DefaultMissScore,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissScore returns the similarity used for lookup misses.
func (e *Engine) MissScore() float64 {
	return e.missScore
}

// Score computes the fit score for a player. Lookups are exact-match on name
// and team. NaN stats produce a NaN fit score rather than an error.
func (e *Engine) Score(name, team string, in Input) Result {
	r := Result{PES: PES(in)}

	var ok bool
	if r.TeamSimilarity, ok = e.teams.Lookup(team); !ok {
		r.TeamSimilarity = e.missScore
		r.TeamMiss = true
	}
	if r.PlayerSimilarity, ok = e.players.Lookup(name); !ok {
		r.PlayerSimilarity = e.missScore
		r.PlayerMiss = true
	}

	r.FitScore = WeightPES*r.PES +
		WeightTeamSimilarity*r.TeamSimilarity +
		WeightPlayerSimilarity*r.PlayerSimilarity
	if e.clamp {
		r.FitScore = numeric.Clamp(r.FitScore, 0, 100)
	}
	return r
}
