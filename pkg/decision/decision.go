// Package decision defines the domain model for Atrium decision sessions:
// sessions, graph nodes, choices, leads_to edges, and the audit log of
// ingested events.
package decision

import "time"

// Kind identifies what a node represents in the decision graph.
type Kind string

const (
	KindQuestion Kind = "question"
	KindDecision Kind = "decision"
	KindTask     Kind = "task"
)

// ValidKind reports whether k is a member of the closed node-kind set.
func ValidKind(k Kind) bool {
	switch k {
	case KindQuestion, KindDecision, KindTask:
		return true
	}
	return false
}

// Status is the lifecycle state of a node.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusDone       Status = "done"
)

// ValidStatus reports whether s is a member of the closed status set.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusBlocked, StatusDone:
		return true
	}
	return false
}

// EdgeType identifies the relation an edge expresses. leads_to is currently
// the only relation.
type EdgeType string

const EdgeLeadsTo EdgeType = "leads_to"

// Session is a decision session. Sessions are created implicitly by the first
// event bearing an unseen external id, or explicitly via the sessions API.
// Sessions are never deleted.
type Session struct {
	ID         int        `json:"id"`
	ExternalID *string    `json:"external_id"`
	Name       string     `json:"name"`
	StartedAt  *time.Time `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Node is a question, decision, or task vertex. A node belongs to exactly one
// session for its whole life and is never deleted.
type Node struct {
	ID            int        `json:"id"`
	SessionID     int        `json:"session_id"`
	Kind          Kind       `json:"type"`
	Title         string     `json:"title"`
	Status        Status     `json:"status"`
	Rationale     *string    `json:"rationale"`
	Owner         *string    `json:"owner"`
	Priority      *int       `json:"priority"`
	ContextPrompt *string    `json:"context_prompt"`
	ExternalRef   *string    `json:"external_ref"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Choice is a labeled option attached to a node. Labels are unique per node;
// at most one choice per node is chosen at any time.
type Choice struct {
	ID       int        `json:"id"`
	NodeID   int        `json:"node_id"`
	Label    string     `json:"label"`
	Text     string     `json:"text"`
	IsChosen bool       `json:"is_chosen"`
	ChosenAt *time.Time `json:"chosen_at"`
}

// Edge is a directed leads_to relation between two nodes of the same session.
// Edges are created once and never updated or deleted.
type Edge struct {
	ID         int       `json:"id"`
	FromNodeID int       `json:"from_node_id"`
	ToNodeID   int       `json:"to_node_id"`
	Type       EdgeType  `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventRecord is an append-only audit entry for one ingested event. It is a
// trail, not a source for replay: the graph tables are the read model.
type EventRecord struct {
	ID          int       `json:"id"`
	SessionID   int       `json:"session_id"`
	Source      string    `json:"source"`
	EventType   EventType `json:"event_type"`
	PayloadJSON string    `json:"payload_json"`
	ReceivedAt  time.Time `json:"received_at"`
}

// Graph is a consistent snapshot of one session's decision graph.
type Graph struct {
	Session *Session  `json:"session"`
	Nodes   []*Node   `json:"nodes"`
	Edges   []*Edge   `json:"edges"`
	Choices []*Choice `json:"choices"`
}

// IngestResult reports what one ingested event did. AffectedNodeID is nil
// only for event types that mutate no node; every current type sets it.
type IngestResult struct {
	EventLogID     int  `json:"event_log_id"`
	SessionID      int  `json:"session_id"`
	AffectedNodeID *int `json:"affected_node_id,omitempty"`
}
