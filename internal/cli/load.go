package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/portalfit/internal/config"
	"github.com/vijay-prabhu/portalfit/internal/filter"
	"github.com/vijay-prabhu/portalfit/internal/logging"
	"github.com/vijay-prabhu/portalfit/internal/roster"
)

// setup loads configuration and builds the logger every command shares
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	logger, err := logging.New(level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger, nil
}

// newBuilder wires the scoring engine and exclusion rule from config
func newBuilder(cfg *config.Config, logger *zap.Logger) (*roster.Builder, error) {
	engine, err := cfg.Engine()
	if err != nil {
		return nil, fmt.Errorf("failed to load similarity tables: %w", err)
	}
	return roster.NewBuilder(engine,
		roster.WithExclude(cfg.Scoring.ExcludeTeam),
		roster.WithLogger(logger),
	), nil
}

// loadRoster reads and scores the CSV at path
func loadRoster(cfg *config.Config, logger *zap.Logger, path string) (*roster.Builder, *roster.Roster, error) {
	b, err := newBuilder(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	r, err := b.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return b, r, nil
}

// queryFlags holds the filter and sort flags shared by score, stats and
// export.
type queryFlags struct {
	position   string
	conference string
	archetype  string
	committed  string
	minHeight  int
	maxHeight  int
	minUsage   float64
	maxUsage   float64
	minFit     float64
	search     string
	sort       string
	order      string
}

func (q *queryFlags) register(cmd *cobra.Command, sortable bool) {
	f := cmd.Flags()
	f.StringVar(&q.position, "position", filter.All, "Filter by position (PG, G, G/F, F/C, PF, C)")
	f.StringVar(&q.conference, "conference", filter.All, "Filter by conference code (e.g. B1G, SEC)")
	f.StringVar(&q.archetype, "archetype", filter.All, "Filter by archetype")
	f.StringVar(&q.committed, "committed", filter.All, "Filter by commitment status (Yes, No)")
	f.IntVar(&q.minHeight, "min-height", filter.DefaultMinHeight, "Minimum height in inches")
	f.IntVar(&q.maxHeight, "max-height", filter.DefaultMaxHeight, "Maximum height in inches")
	f.Float64Var(&q.minUsage, "min-usage", filter.DefaultMinUsage, "Minimum usage rate")
	f.Float64Var(&q.maxUsage, "max-usage", filter.DefaultMaxUsage, "Maximum usage rate")
	f.Float64Var(&q.minFit, "min-fit", 0, "Minimum fit score")
	f.StringVarP(&q.search, "search", "s", "", "Case-insensitive name search")
	if sortable {
		f.StringVar(&q.sort, "sort", string(filter.DefaultSortField), "Sort field")
		f.StringVar(&q.order, "order", string(filter.Desc), "Sort order (asc, desc)")
	}
}

// spec starts from the configured defaults and overrides only the flags the
// user actually set.
func (q *queryFlags) spec(cmd *cobra.Command, cfg *config.Config) (filter.Spec, error) {
	spec := cfg.FilterDefaults()
	f := cmd.Flags()

	if f.Changed("position") {
		spec.Position = q.position
	}
	if f.Changed("conference") {
		spec.Conference = q.conference
	}
	if f.Changed("archetype") {
		spec.Archetype = q.archetype
	}
	if f.Changed("committed") {
		spec.Committed = q.committed
	}
	if f.Changed("min-height") {
		spec.MinHeight = q.minHeight
	}
	if f.Changed("max-height") {
		spec.MaxHeight = q.maxHeight
	}
	if f.Changed("min-usage") {
		spec.MinUsage = q.minUsage
	}
	if f.Changed("max-usage") {
		spec.MaxUsage = q.maxUsage
	}
	if f.Changed("min-fit") {
		spec.MinFitScore = q.minFit
	}
	spec.Search = q.search

	if err := spec.Validate(); err != nil {
		return filter.Spec{}, err
	}
	return spec, nil
}

// apply filters players and, for sortable commands, orders them
func (q *queryFlags) apply(cmd *cobra.Command, cfg *config.Config, players []roster.Player) ([]roster.Player, error) {
	spec, err := q.spec(cmd, cfg)
	if err != nil {
		return nil, err
	}
	visible := filter.Apply(players, spec)

	if cmd.Flags().Lookup("sort") == nil {
		return visible, nil
	}
	field, err := filter.ParseSortField(q.sort)
	if err != nil {
		return nil, err
	}
	dir, err := filter.ParseDirection(q.order)
	if err != nil {
		return nil, err
	}
	return filter.Sort(visible, field, dir), nil
}
