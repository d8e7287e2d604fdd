package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/pkg/decision"
)

var (
	recordToolName    = "record_decision_event"
	recordDescription = "Record a decision event into the current session. Supported event types: question_presented (a decision point with optional choices), choice_selected (pick a branch), note_added (append rationale), node_status_changed (update progress). Sessions are created on first use."
)

// RecordEventInput represents the input arguments for the record tool.
type RecordEventInput struct {
	Source            string         `json:"source,omitempty" jsonschema:"origin of the event (defaults to system)"`
	EventType         string         `json:"event_type" jsonschema:"one of question_presented, choice_selected, note_added, node_status_changed"`
	SessionExternalID string         `json:"session_external_id" jsonschema:"caller-chosen session identifier, at most 200 characters"`
	AgentName         string         `json:"agent_name,omitempty" jsonschema:"name of the recording agent, used as fallback owner"`
	Payload           map[string]any `json:"payload" jsonschema:"event payload, shape depends on event_type"`
}

// RecordEventOutput represents the result of a recorded event.
type RecordEventOutput struct {
	EventLogID     int  `json:"event_log_id"`
	SessionID      int  `json:"session_id"`
	AffectedNodeID *int `json:"affected_node_id,omitempty"`
}

// handleRecordEvent decodes and applies one decision event.
func (s *Server) handleRecordEvent(ctx context.Context, _ *mcp.CallToolRequest, input RecordEventInput) (*mcp.CallToolResult, RecordEventOutput, error) {
	logger := s.config.Logger

	ev, err := decision.DecodeEvent(&decision.IngestRequest{
		Source:            input.Source,
		EventType:         input.EventType,
		SessionExternalID: input.SessionExternalID,
		AgentName:         input.AgentName,
		Payload:           input.Payload,
	})
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Invalid event: %v", err)},
			},
		}, RecordEventOutput{}, nil
	}

	result, err := s.config.Reducer.Ingest(ctx, ev)
	if err != nil {
		logger.Error("MCP event ingestion failed",
			zap.String("event_type", input.EventType),
			zap.Error(err),
		)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to record event: %v", err)},
			},
		}, RecordEventOutput{}, nil
	}

	output := RecordEventOutput{
		EventLogID:     result.EventLogID,
		SessionID:      result.SessionID,
		AffectedNodeID: result.AffectedNodeID,
	}

	jsonBytes, err := json.Marshal(output)
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to serialize result: %v", err)},
			},
		}, RecordEventOutput{}, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, output, nil
}
