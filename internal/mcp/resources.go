package mcp

import (
	"bytes"
	"context"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vijay-prabhu/portalfit/internal/filter"
	"github.com/vijay-prabhu/portalfit/internal/output"
)

// Resource URIs
const (
	SummaryURI = "portalfit://summary"
	TopURI     = "portalfit://top"
)

func (s *Server) registerResources(server *gomcp.Server) {
	server.AddResource(&gomcp.Resource{
		URI:         SummaryURI,
		Name:        "Candidate Summary",
		Description: "Summary stats and recruiting insights for the loaded candidates under the default filters",
		MIMEType:    "text/plain",
	}, func(ctx context.Context, req *gomcp.ReadResourceRequest) (*gomcp.ReadResourceResult, error) {
		text, err := s.summaryText()
		if err != nil {
			return nil, err
		}
		return textResource(SummaryURI, text), nil
	})

	server.AddResource(&gomcp.Resource{
		URI:         TopURI,
		Name:        "Top Candidates",
		Description: "The ten best-fit candidates under the default filters",
		MIMEType:    "text/plain",
	}, func(ctx context.Context, req *gomcp.ReadResourceRequest) (*gomcp.ReadResourceResult, error) {
		text, err := s.topText(10)
		if err != nil {
			return nil, err
		}
		return textResource(TopURI, text), nil
	})
}

func textResource(uri, text string) *gomcp.ReadResourceResult {
	return &gomcp.ReadResourceResult{
		Contents: []*gomcp.ResourceContents{
			{URI: uri, MIMEType: "text/plain", Text: text},
		},
	}
}

func (s *Server) summaryText() (string, error) {
	r := s.current()
	stats := filter.Summarize(filter.Apply(r.Players, s.defaults), len(r.Players), s.highFit)
	var buf bytes.Buffer
	if err := output.TableTo(&buf, &stats); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Server) topText(n int) (string, error) {
	players, err := s.query(s.current(), QueryArgs{})
	if err != nil {
		return "", err
	}
	if len(players) > n {
		players = players[:n]
	}
	var buf bytes.Buffer
	if err := output.TableTo(&buf, players); err != nil {
		return "", err
	}
	return buf.String(), nil
}
