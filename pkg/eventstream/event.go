// Package eventstream defines transport-neutral notifications emitted after
// the reducer commits an ingested event, for downstream consumers that tail
// the decision graph.
package eventstream

import "time"

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeEventIngested is emitted after an event is applied to the
	// graph and its audit record committed.
	EventTypeEventIngested = "atrium.event.ingested"
)

// EventIngested is the payload published after a successful ingestion.
type EventIngested struct {
	SchemaVersion int         `json:"schema_version"`
	EventType     string      `json:"event_type"`
	EventID       string      `json:"event_id"`
	EmittedAt     time.Time   `json:"emitted_at"`
	Source        EventSource `json:"source"`

	// What the reducer did.
	SessionID         int    `json:"session_id"`
	SessionExternalID string `json:"session_external_id"`
	EventLogID        int    `json:"event_log_id"`
	AffectedNodeID    *int   `json:"affected_node_id,omitempty"`
	DecisionEventType string `json:"decision_event_type"`
}

// EventSource identifies where the ingested event originated.
type EventSource struct {
	Source    string `json:"source"`
	AgentName string `json:"agent_name,omitempty"`
}
