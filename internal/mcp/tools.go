package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// QueryArgs are the filter and sort arguments shared by the query tools.
// Omitted ranges fall back to the configured defaults.
type QueryArgs struct {
	Position    string   `json:"position,omitempty" jsonschema:"Position tag: All, PG, G, G/F, F/C, PF or C"`
	Conference  string   `json:"conference,omitempty" jsonschema:"Conference abbreviation such as ACC or B12, or All"`
	Archetype   string   `json:"archetype,omitempty" jsonschema:"Archetype such as Stretch 4 or Wing G, or All"`
	Committed   string   `json:"committed,omitempty" jsonschema:"Commitment status: All, Yes or No"`
	MinHeight   *int     `json:"min_height,omitempty" jsonschema:"Minimum height in inches (default 66)"`
	MaxHeight   *int     `json:"max_height,omitempty" jsonschema:"Maximum height in inches (default 84)"`
	MinUsage    *float64 `json:"min_usage,omitempty" jsonschema:"Minimum usage rate (default 0)"`
	MaxUsage    *float64 `json:"max_usage,omitempty" jsonschema:"Maximum usage rate (default 35)"`
	MinFitScore *float64 `json:"min_fit_score,omitempty" jsonschema:"Minimum fit score"`
	Search      string   `json:"search,omitempty" jsonschema:"Case-insensitive substring of name or previous team"`
	Sort        string   `json:"sort,omitempty" jsonschema:"Field to sort by (default fitScore)"`
	Order       string   `json:"order,omitempty" jsonschema:"asc or desc (default desc)"`
	Limit       int      `json:"limit,omitempty" jsonschema:"Maximum number of players to return (default 25, 0 = default)"`
}

// GetPlayerArgs identifies one player
type GetPlayerArgs struct {
	Identifier string `json:"identifier" jsonschema:"Player id, exact name, or name prefix (required)"`
}

// ReloadArgs names a new CSV to load
type ReloadArgs struct {
	Path string `json:"path" jsonschema:"Path to a transfer portal .csv file (required)"`
}

func (s *Server) registerTools(server *gomcp.Server) {
	addTool(server, &gomcp.Tool{
		Name:        "list_players",
		Description: "List transfer portal candidates matching the filters, sorted (default: fit score, best first).",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args QueryArgs) (*gomcp.CallToolResult, any, error) {
		return toolJSON(s.listPlayers(args))
	})

	addTool(server, &gomcp.Tool{
		Name:        "get_player",
		Description: "Get one candidate's full record, including advanced metrics and warnings.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args GetPlayerArgs) (*gomcp.CallToolResult, any, error) {
		return toolJSON(s.getPlayer(args))
	})

	addTool(server, &gomcp.Tool{
		Name:        "get_stats",
		Description: "Summarize the candidates matching the filters: counts, average fit score, top position and conference, insights.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args QueryArgs) (*gomcp.CallToolResult, any, error) {
		return toolJSON(s.getStats(args))
	})

	addTool(server, &gomcp.Tool{
		Name:        "export_csv",
		Description: "Export the filtered, sorted candidates as CSV text in the import header layout.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args QueryArgs) (*gomcp.CallToolResult, any, error) {
		text, err := s.exportCSV(args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(text), nil, nil
	})

	addTool(server, &gomcp.Tool{
		Name:        "reload",
		Description: "Replace the loaded candidates with a new CSV file.",
	}, func(ctx context.Context, req *gomcp.CallToolRequest, args ReloadArgs) (*gomcp.CallToolResult, any, error) {
		return toolJSON(s.reload(args))
	})
}

func addTool[T any](server *gomcp.Server, tool *gomcp.Tool, handler func(context.Context, *gomcp.CallToolRequest, T) (*gomcp.CallToolResult, any, error)) {
	gomcp.AddTool(server, tool, handler)
}

func toolJSON(data any, err error) (*gomcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	res, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return toolError(fmt.Errorf("failed to encode result: %w", err)), nil, nil
	}
	return toolText(string(res)), nil, nil
}

func toolText(text string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{
			&gomcp.TextContent{Text: text},
		},
	}
}

func toolError(err error) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		IsError: true,
		Content: []gomcp.Content{
			&gomcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
