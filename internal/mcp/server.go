// Package mcp exposes the candidate query engine to agents as MCP tools
// over stdio.
package mcp

import (
	"context"
	"fmt"
	"sync"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/portalfit/internal/filter"
	"github.com/vijay-prabhu/portalfit/internal/roster"
)

// Options configures a Server
type Options struct {
	Version  string
	Defaults filter.Spec
	HighFit  float64
	Logger   *zap.Logger
}

// Server holds the current roster and answers tool calls against it. The
// roster is swapped wholesale on reload; queries never mutate it.
type Server struct {
	builder  *roster.Builder
	defaults filter.Spec
	highFit  float64
	version  string
	logger   *zap.Logger

	mu     sync.RWMutex
	roster *roster.Roster
}

// New creates a server over an already loaded roster
func New(b *roster.Builder, r *roster.Roster, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.HighFit == 0 {
		opts.HighFit = filter.DefaultHighFit
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Server{
		builder:  b,
		defaults: opts.Defaults,
		highFit:  opts.HighFit,
		version:  opts.Version,
		logger:   opts.Logger,
		roster:   r,
	}
}

// current returns the roster in effect for one request
func (s *Server) current() *roster.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster
}

// Reload replaces the roster with the contents of path. On failure the
// previous roster stays in place.
func (s *Server) Reload(path string) (*roster.Roster, error) {
	r, err := s.builder.LoadFile(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.roster = r
	s.mu.Unlock()

	s.logger.Info("roster reloaded",
		zap.String("roster_id", r.ID),
		zap.String("source", path),
		zap.Int("players", len(r.Players)),
	)
	return r, nil
}

// MCPServer builds the SDK server with every tool and resource registered
func (s *Server) MCPServer() *gomcp.Server {
	server := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "portalfit",
			Version: s.version,
		},
		nil,
	)
	s.registerTools(server)
	s.registerResources(server)
	return server
}

// Run serves MCP over stdin/stdout until ctx is cancelled or the client
// disconnects
func (s *Server) Run(ctx context.Context) error {
	r := s.current()
	s.logger.Info("mcp server starting",
		zap.String("transport", "stdio"),
		zap.String("roster_id", r.ID),
		zap.Int("players", len(r.Players)),
	)
	if err := s.MCPServer().Run(ctx, &gomcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
