package config

import (
	"github.com/vijay-prabhu/portalfit/internal/filter"
	"github.com/vijay-prabhu/portalfit/internal/roster"
	"github.com/vijay-prabhu/portalfit/internal/scoring"
)

// Config represents the application configuration
type Config struct {
	Scoring    ScoringConfig    `toml:"scoring"`
	Similarity SimilarityConfig `toml:"similarity"`
	Filters    FilterConfig     `toml:"filters"`
	Export     ExportConfig     `toml:"export"`
	Logging    LoggingConfig    `toml:"logging"`
	MCP        MCPConfig        `toml:"mcp"`
}

// ScoringConfig controls how rows are admitted and scored
type ScoringConfig struct {
	ExcludeTeam      string  `toml:"exclude_team"`
	LookupMissScore  float64 `toml:"lookup_miss_score"`
	ClampFitScore    bool    `toml:"clamp_fit_score"`
	HighFitThreshold float64 `toml:"high_fit_threshold"`
}

// SimilarityConfig points at the precomputed similarity tables. Empty
// paths mean every lookup misses.
type SimilarityConfig struct {
	TeamPath   string `toml:"team_path"`
	PlayerPath string `toml:"player_path"`
}

// FilterConfig holds the default range filters
type FilterConfig struct {
	MinHeight   int     `toml:"min_height"`
	MaxHeight   int     `toml:"max_height"`
	MinUsage    float64 `toml:"min_usage"`
	MaxUsage    float64 `toml:"max_usage"`
	MinFitScore float64 `toml:"min_fit_score"`
}

// ExportConfig contains CSV export settings
type ExportConfig struct {
	Dir string `toml:"dir"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			ExcludeTeam:      roster.DefaultExclude,
			LookupMissScore:  scoring.DefaultMissScore,
			ClampFitScore:    false,
			HighFitThreshold: filter.DefaultHighFit,
		},
		Filters: FilterConfig{
			MinHeight:   filter.DefaultMinHeight,
			MaxHeight:   filter.DefaultMaxHeight,
			MinUsage:    filter.DefaultMinUsage,
			MaxUsage:    filter.DefaultMaxUsage,
			MinFitScore: 0,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}

// FilterDefaults returns the filter spec the CLI and MCP server start from
func (c *Config) FilterDefaults() filter.Spec {
	spec := filter.DefaultSpec()
	spec.MinHeight = c.Filters.MinHeight
	spec.MaxHeight = c.Filters.MaxHeight
	spec.MinUsage = c.Filters.MinUsage
	spec.MaxUsage = c.Filters.MaxUsage
	spec.MinFitScore = c.Filters.MinFitScore
	return spec
}

// Engine builds the scoring engine from the similarity tables on disk
func (c *Config) Engine() (*scoring.Engine, error) {
	teams, err := scoring.LoadSimilarity(c.Similarity.TeamPath)
	if err != nil {
		return nil, err
	}
	players, err := scoring.LoadSimilarity(c.Similarity.PlayerPath)
	if err != nil {
		return nil, err
	}
	return scoring.NewEngine(teams, players,
		scoring.WithMissScore(c.Scoring.LookupMissScore),
		scoring.WithClamp(c.Scoring.ClampFitScore),
	), nil
}
