// Package storage defines the persistence interface for the Atrium decision
// graph. Implementations live in the sqlite, postgres, and inmemory
// subpackages; the ent subpackage holds the shared ORM layer.
package storage

import (
	"context"

	"github.com/atriumhq/atrium/pkg/decision"
)

// Driver is the primary interface for persisting and querying decision
// sessions. Reads outside a transaction see committed state; all mutation
// goes through Atomic.
type Driver interface {
	Reader

	// Atomic runs fn inside a single transaction. Every mutation fn makes is
	// visible together after commit, or not at all if fn returns an error.
	// Reads through the Mutator observe the transaction's own writes.
	Atomic(ctx context.Context, fn func(tx Mutator) error) error

	// Close closes the store and releases any resources.
	Close() error
}

// Reader is the query surface shared by the driver and its transactions.
type Reader interface {
	// SessionByID returns the session or NotFoundError.
	SessionByID(ctx context.Context, id int) (*decision.Session, error)

	// SessionByExternalID returns the session carrying the external id, or
	// NotFoundError.
	SessionByExternalID(ctx context.Context, externalID string) (*decision.Session, error)

	// Sessions returns all sessions, newest first.
	Sessions(ctx context.Context) ([]*decision.Session, error)

	// NodeByID returns a node by internal id regardless of session, or
	// NotFoundError. Used by the replay surface, which addresses nodes
	// globally.
	NodeByID(ctx context.Context, id int) (*decision.Node, error)

	// NodeInSession returns a node by internal id constrained to the given
	// session, or NotFoundError. The session constraint prevents
	// cross-session reference leakage.
	NodeInSession(ctx context.Context, sessionID, id int) (*decision.Node, error)

	// NodeByExternalRef returns the session's node carrying the external
	// reference tag, or NotFoundError.
	NodeByExternalRef(ctx context.Context, sessionID int, ref string) (*decision.Node, error)

	// LatestQuestionNode returns the most recently created question node of
	// the session, or NotFoundError when the session has none yet.
	LatestQuestionNode(ctx context.Context, sessionID int) (*decision.Node, error)

	// NodesBySession returns the session's nodes in creation order.
	NodesBySession(ctx context.Context, sessionID int) ([]*decision.Node, error)

	// EdgesBySession returns edges whose source node belongs to the session,
	// in creation order.
	EdgesBySession(ctx context.Context, sessionID int) ([]*decision.Edge, error)

	// ChoicesBySession returns all choices attached to the session's nodes,
	// in creation order.
	ChoicesBySession(ctx context.Context, sessionID int) ([]*decision.Choice, error)

	// ChoicesByNode returns the node's choices in creation order.
	ChoicesByNode(ctx context.Context, nodeID int) ([]*decision.Choice, error)

	// ChoiceByLabel returns the node's choice with the given label, or
	// NotFoundError.
	ChoiceByLabel(ctx context.Context, nodeID int, label string) (*decision.Choice, error)
}

// Mutator is the write surface available inside Atomic.
type Mutator interface {
	Reader

	// CreateSession inserts a session and returns it with its id assigned.
	// A duplicate external id yields ConflictError.
	CreateSession(ctx context.Context, s *decision.Session) (*decision.Session, error)

	// SaveSession updates a session's mutable fields (name, started_at,
	// ended_at).
	SaveSession(ctx context.Context, s *decision.Session) error

	// CreateNode inserts a node and returns it with its id assigned. A
	// duplicate external ref yields ConflictError.
	CreateNode(ctx context.Context, n *decision.Node) (*decision.Node, error)

	// SaveNode updates a node's mutable fields (status, rationale, owner,
	// priority) and bumps its updated_at. Session, kind, and external ref
	// never change.
	SaveNode(ctx context.Context, n *decision.Node) error

	// UpsertChoice inserts the choice, or replaces text, is_chosen, and
	// chosen_at of the existing (node, label) row. Returns the stored choice.
	UpsertChoice(ctx context.Context, c *decision.Choice) (*decision.Choice, error)

	// ClearChosen clears is_chosen and chosen_at on every choice of the node.
	ClearChosen(ctx context.Context, nodeID int) error

	// CreateEdge inserts a leads_to edge and returns it with its id assigned.
	CreateEdge(ctx context.Context, e *decision.Edge) (*decision.Edge, error)

	// AppendEvent appends an audit record and returns it with its id
	// assigned.
	AppendEvent(ctx context.Context, rec *decision.EventRecord) (*decision.EventRecord, error)
}
