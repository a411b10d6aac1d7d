package mcp

import (
	"errors"
	"fmt"

	"github.com/vijay-prabhu/portalfit/internal/export"
	"github.com/vijay-prabhu/portalfit/internal/filter"
	"github.com/vijay-prabhu/portalfit/internal/roster"
)

const defaultLimit = 25

type listPlayersResult struct {
	RosterID string          `json:"roster_id"`
	Total    int             `json:"total"`
	Matched  int             `json:"matched"`
	Players  []roster.Player `json:"players"`
}

type statsResult struct {
	RosterID string `json:"roster_id"`
	filter.Stats
	Insights []string `json:"insights"`
}

type reloadResult struct {
	RosterID   string `json:"roster_id"`
	Source     string `json:"source"`
	Generation string `json:"generation"`
	Players    int    `json:"players"`
	Excluded   int    `json:"excluded"`
}

// spec overlays the request on the configured defaults
func (s *Server) spec(args QueryArgs) (filter.Spec, error) {
	spec := s.defaults
	if args.Position != "" {
		spec.Position = args.Position
	}
	if args.Conference != "" {
		spec.Conference = args.Conference
	}
	if args.Archetype != "" {
		spec.Archetype = args.Archetype
	}
	if args.Committed != "" {
		spec.Committed = args.Committed
	}
	if args.MinHeight != nil {
		spec.MinHeight = *args.MinHeight
	}
	if args.MaxHeight != nil {
		spec.MaxHeight = *args.MaxHeight
	}
	if args.MinUsage != nil {
		spec.MinUsage = *args.MinUsage
	}
	if args.MaxUsage != nil {
		spec.MaxUsage = *args.MaxUsage
	}
	if args.MinFitScore != nil {
		spec.MinFitScore = *args.MinFitScore
	}
	spec.Search = args.Search

	if err := spec.Validate(); err != nil {
		return filter.Spec{}, err
	}
	return spec, nil
}

// query filters then sorts the current roster
func (s *Server) query(r *roster.Roster, args QueryArgs) ([]roster.Player, error) {
	spec, err := s.spec(args)
	if err != nil {
		return nil, err
	}
	field, err := filter.ParseSortField(args.Sort)
	if err != nil {
		return nil, err
	}
	dir, err := filter.ParseDirection(args.Order)
	if err != nil {
		return nil, err
	}
	return filter.Sort(filter.Apply(r.Players, spec), field, dir), nil
}

func (s *Server) listPlayers(args QueryArgs) (*listPlayersResult, error) {
	r := s.current()
	players, err := s.query(r, args)
	if err != nil {
		return nil, err
	}

	limit := args.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	matched := len(players)
	if len(players) > limit {
		players = players[:limit]
	}

	return &listPlayersResult{
		RosterID: r.ID,
		Total:    len(r.Players),
		Matched:  matched,
		Players:  players,
	}, nil
}

func (s *Server) getPlayer(args GetPlayerArgs) (*roster.Player, error) {
	if args.Identifier == "" {
		return nil, errors.New("identifier is required")
	}
	p, ok := s.current().Find(args.Identifier)
	if !ok {
		return nil, fmt.Errorf("player not found: %s", args.Identifier)
	}
	return p, nil
}

func (s *Server) getStats(args QueryArgs) (*statsResult, error) {
	r := s.current()
	spec, err := s.spec(args)
	if err != nil {
		return nil, err
	}
	stats := filter.Summarize(filter.Apply(r.Players, spec), len(r.Players), s.highFit)
	return &statsResult{
		RosterID: r.ID,
		Stats:    stats,
		Insights: filter.Insights(stats),
	}, nil
}

func (s *Server) exportCSV(args QueryArgs) (string, error) {
	players, err := s.query(s.current(), args)
	if err != nil {
		return "", err
	}
	return export.Encode(players)
}

func (s *Server) reload(args ReloadArgs) (*reloadResult, error) {
	if args.Path == "" {
		return nil, errors.New("path is required")
	}
	r, err := s.Reload(args.Path)
	if err != nil {
		return nil, err
	}
	return &reloadResult{
		RosterID:   r.ID,
		Source:     r.Source,
		Generation: string(r.Generation),
		Players:    len(r.Players),
		Excluded:   r.Excluded,
	}, nil
}
