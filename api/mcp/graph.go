package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/graph"
)

var (
	graphToolName    = "get_session_graph"
	graphDescription = "Fetch the decision graph of a session: its nodes, leads_to edges, and choices. Address the session by internal id or by the external id used when recording events. Optional filters narrow the node list by status or to undecided questions only."
)

// SessionGraphInput represents the input arguments for the graph tool.
type SessionGraphInput struct {
	SessionID         int    `json:"session_id,omitempty" jsonschema:"internal session id"`
	SessionExternalID string `json:"session_external_id,omitempty" jsonschema:"external session id, used when session_id is not given"`
	Status            string `json:"status,omitempty" jsonschema:"keep only nodes with this status (open, in_progress, blocked, done)"`
	UnchosenOnly      bool   `json:"unchosen_only,omitempty" jsonschema:"keep only nodes whose choices are all unchosen"`
}

// handleSessionGraph assembles a session graph snapshot.
func (s *Server) handleSessionGraph(ctx context.Context, _ *mcp.CallToolRequest, input SessionGraphInput) (*mcp.CallToolResult, *decision.Graph, error) {
	sessionID := input.SessionID
	if sessionID == 0 {
		if input.SessionExternalID == "" {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{
					&mcp.TextContent{Text: "session_id or session_external_id is required"},
				},
			}, nil, nil
		}
		sess, err := s.config.Storer.SessionByExternalID(ctx, input.SessionExternalID)
		if err != nil {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{
					&mcp.TextContent{Text: fmt.Sprintf("Session lookup failed: %v", err)},
				},
			}, nil, nil
		}
		sessionID = sess.ID
	}

	var filter graph.Filter
	if input.Status != "" {
		status := decision.Status(input.Status)
		if !decision.ValidStatus(status) {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{
					&mcp.TextContent{Text: "status must be one of open, in_progress, blocked, done"},
				},
			}, nil, nil
		}
		filter.Status = &status
	}
	filter.UnchosenOnly = input.UnchosenOnly

	g, err := graph.Snapshot(ctx, s.config.Storer, sessionID, filter)
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to load graph: %v", err)},
			},
		}, nil, nil
	}

	jsonBytes, err := json.Marshal(g)
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to serialize graph: %v", err)},
			},
		}, nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, g, nil
}
