package roster

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/portalfit/internal/columns"
	"github.com/vijay-prabhu/portalfit/internal/position"
	"github.com/vijay-prabhu/portalfit/internal/scoring"
)

// DefaultExclude drops players whose previous team is the recruiting
// program itself.
const DefaultExclude = "illinois"

// Builder turns tokenized rows into a Roster.
type Builder struct {
	engine  *scoring.Engine
	exclude string
	logger  *zap.Logger
	now     func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithExclude sets the previous-team substring that removes a row. Matching
// is case-insensitive; an empty string disables exclusion.
func WithExclude(substr string) BuilderOption {
	return func(b *Builder) { b.exclude = strings.ToLower(substr) }
}

// WithLogger sets the logger used for load summaries and per-row warnings.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a builder. A nil engine scores against empty
// similarity tables.
func NewBuilder(engine *scoring.Engine, opts ...BuilderOption) *Builder {
	if engine == nil {
		engine = scoring.NewEngine(nil, nil)
	}
	b := &Builder{
		engine:  engine,
		exclude: DefaultExclude,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs every surviving row through column resolution, position
// inference and scoring. Row order is preserved and ids run 1..M over the
// rows that survive exclusion.
func (b *Builder) Build(headers []string, rows []columns.Row) (*Roster, error) {
	gen := columns.DetectGeneration(headers)
	teamField, _ := columns.FieldByName(columns.PreviousTeam)

	r := &Roster{
		ID:         uuid.New().String(),
		Generation: gen,
		LoadedAt:   b.now(),
		Players:    make([]Player, 0, len(rows)),
	}
	var teamMisses, playerMisses int

	for i, row := range rows {
		index := i + 1
		if row == nil {
			return nil, fmt.Errorf("row %d: %w", index, columns.ErrMalformedRow)
		}

		if team, _ := columns.Lookup(row, teamField.Aliases); b.excluded(team) {
			r.Excluded++
			b.logger.Debug("excluded row",
				zap.Int("row", index),
				zap.String("previous_team", team),
			)
			continue
		}

		c, err := columns.Resolve(row, index)
		if err != nil {
			return nil, err
		}

		p, res := b.player(c, gen)
		if res.TeamMiss {
			teamMisses++
		}
		if res.PlayerMiss {
			playerMisses++
		}
		p.ID = len(r.Players) + 1
		r.Players = append(r.Players, p)
	}

	if teamMisses > 0 || playerMisses > 0 {
		b.logger.Warn("similarity lookups missed",
			zap.Int("team_misses", teamMisses),
			zap.Int("player_misses", playerMisses),
			zap.Float64("substituted", b.engine.MissScore()),
		)
	}

	b.logger.Info("roster built",
		zap.String("roster_id", r.ID),
		zap.String("generation", string(gen)),
		zap.Int("players", len(r.Players)),
		zap.Int("excluded", r.Excluded),
	)
	return r, nil
}

func (b *Builder) excluded(team string) bool {
	return b.exclude != "" && strings.Contains(strings.ToLower(team), b.exclude)
}

func (b *Builder) player(c columns.Canonical, gen columns.Generation) (Player, scoring.Result) {
	p := Player{
		Name:         c.String(columns.Name),
		Position:     c.String(columns.Position),
		Height:       c.String(columns.Height),
		PreviousTeam: c.String(columns.PreviousTeam),
		Conference:   c.String(columns.Conference),
		Archetype:    c.String(columns.Archetype),
		Summary:      c.String(columns.Summary),
		Committed:    c.String(columns.Committed),

		OffensiveRating:   c.Number(columns.OffensiveRating),
		DefensiveRating:   c.Number(columns.DefensiveRating),
		UsageRate:         c.Number(columns.UsageRate),
		EFGPercent:        c.Number(columns.EFGPercent),
		ThreePtPercent:    c.Number(columns.ThreePtPercent),
		FTPercent:         c.Number(columns.FTPercent),
		ReboundingPercent: c.Number(columns.ReboundingPercent),
		BlockPercent:      c.Number(columns.BlockPercent),
		StealPercent:      c.Number(columns.StealPercent),
		PPG:               c.Number(columns.PPG),
		RPG:               c.Number(columns.RPG),
		APG:               c.Number(columns.APG),
		Minutes:           c.Number(columns.Minutes),

		Advanced: Advanced{
			TrueShootingPercent:        c.Number(columns.TrueShootingPercent),
			AssistPercent:              c.Number(columns.AssistPercent),
			TurnoverPercent:            c.Number(columns.TurnoverPercent),
			OffensiveReboundingPercent: c.Number(columns.OffensiveReboundingPercent),
			DefensiveReboundingPercent: c.Number(columns.DefensiveReboundingPercent),
			BoxPlusMinus:               c.Number(columns.BoxPlusMinus),
			OffensiveBoxPlusMinus:      c.Number(columns.OffensiveBoxPlusMinus),
			DefensiveBoxPlusMinus:      c.Number(columns.DefensiveBoxPlusMinus),
			ProductionRating:           c.Number(columns.ProductionRating),
		},
	}

	for _, field := range c.Invalid() {
		p.warn(fmt.Sprintf("%s is not a number", field))
	}

	if gen == columns.Legacy {
		p.FitScore = c.Number(columns.FitScore)
		p.PES = scoring.PES(p.Input())
		return p, scoring.Result{}
	}

	if pos, ok := position.Infer(p.Archetype); ok {
		p.Position = pos
	} else if !c.Present(columns.Position) {
		p.Position = ""
	}

	res := b.engine.Score(p.Name, p.PreviousTeam, p.Input())
	p.PES = res.PES
	p.FitScore = res.FitScore

	if res.TeamMiss {
		p.warn(fmt.Sprintf("no team similarity for %q, using %g", p.PreviousTeam, b.engine.MissScore()))
	}
	if res.PlayerMiss {
		p.warn(fmt.Sprintf("no player similarity for %q, using %g", p.Name, b.engine.MissScore()))
	}
	if math.IsNaN(p.FitScore) {
		p.warn("fit score is NaN")
		b.logger.Warn("fit score is not a number",
			zap.Int("row", c.Index()),
			zap.String("player", p.Name),
			zap.Strings("invalid_fields", c.Invalid()),
		)
	}
	if res.TeamMiss || res.PlayerMiss {
		b.logger.Debug("similarity lookup miss",
			zap.Int("row", c.Index()),
			zap.String("player", p.Name),
			zap.Bool("team_miss", res.TeamMiss),
			zap.Bool("player_miss", res.PlayerMiss),
		)
	}
	return p, res
}

func (p *Player) warn(msg string) {
	p.Warnings = append(p.Warnings, msg)
}
