// Package entdriver implements storage.Driver on top of an ent client. It is
// database-agnostic; the sqlite and postgres packages wire in the dialect.
package entdriver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/storage"
	"github.com/atriumhq/atrium/pkg/storage/ent"
	"github.com/atriumhq/atrium/pkg/storage/ent/choice"
	"github.com/atriumhq/atrium/pkg/storage/ent/graphedge"
	"github.com/atriumhq/atrium/pkg/storage/ent/node"
	"github.com/atriumhq/atrium/pkg/storage/ent/session"
)

// EntDriver provides storage operations using an ent client.
type EntDriver struct {
	ops
	Client *ent.Client
}

// New creates an EntDriver over an already-opened ent client.
func New(client *ent.Client) *EntDriver {
	return &EntDriver{
		ops:    ops{client: client},
		Client: client,
	}
}

// Atomic runs fn inside one ent transaction. The mutator's reads observe the
// transaction's own writes; a returned error rolls everything back.
func (d *EntDriver) Atomic(ctx context.Context, fn func(tx storage.Mutator) error) error {
	tx, err := d.Client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(&ops{client: tx.Client()}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Close closes the underlying ent client.
func (d *EntDriver) Close() error {
	return d.Client.Close()
}

// ops implements the Reader and Mutator surfaces against one ent client,
// which is either the root client or a transaction client.
type ops struct {
	client *ent.Client
}

func (o *ops) SessionByID(ctx context.Context, id int) (*decision.Session, error) {
	s, err := o.client.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Entity: "session", Key: strconv.Itoa(id)}
		}
		return nil, fmt.Errorf("querying session: %w", err)
	}
	return toSession(s), nil
}

func (o *ops) SessionByExternalID(ctx context.Context, externalID string) (*decision.Session, error) {
	s, err := o.client.Session.Query().
		Where(session.ExternalID(externalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Entity: "session", Key: externalID}
		}
		return nil, fmt.Errorf("querying session by external id: %w", err)
	}
	return toSession(s), nil
}

func (o *ops) Sessions(ctx context.Context) ([]*decision.Session, error) {
	rows, err := o.client.Session.Query().
		Order(ent.Desc(session.FieldCreatedAt), ent.Desc(session.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	sessions := make([]*decision.Session, len(rows))
	for i, s := range rows {
		sessions[i] = toSession(s)
	}
	return sessions, nil
}

func (o *ops) NodeByID(ctx context.Context, id int) (*decision.Node, error) {
	n, err := o.client.Node.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Entity: "node", Key: strconv.Itoa(id)}
		}
		return nil, fmt.Errorf("querying node: %w", err)
	}
	return toNode(n), nil
}

func (o *ops) NodeInSession(ctx context.Context, sessionID, id int) (*decision.Node, error) {
	n, err := o.client.Node.Query().
		Where(node.ID(id), node.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Entity: "node", Key: strconv.Itoa(id)}
		}
		return nil, fmt.Errorf("querying node in session: %w", err)
	}
	return toNode(n), nil
}

func (o *ops) NodeByExternalRef(ctx context.Context, sessionID int, ref string) (*decision.Node, error) {
	n, err := o.client.Node.Query().
		Where(node.SessionID(sessionID), node.ExternalRef(ref)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Entity: "node", Key: ref}
		}
		return nil, fmt.Errorf("querying node by external ref: %w", err)
	}
	return toNode(n), nil
}

func (o *ops) LatestQuestionNode(ctx context.Context, sessionID int) (*decision.Node, error) {
	n, err := o.client.Node.Query().
		Where(node.SessionID(sessionID), node.Type(string(decision.KindQuestion))).
		Order(ent.Desc(node.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Entity: "node", Key: "latest question"}
		}
		return nil, fmt.Errorf("querying latest question node: %w", err)
	}
	return toNode(n), nil
}

func (o *ops) NodesBySession(ctx context.Context, sessionID int) ([]*decision.Node, error) {
	rows, err := o.client.Node.Query().
		Where(node.SessionID(sessionID)).
		Order(ent.Asc(node.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing session nodes: %w", err)
	}
	nodes := make([]*decision.Node, len(rows))
	for i, n := range rows {
		nodes[i] = toNode(n)
	}
	return nodes, nil
}

func (o *ops) EdgesBySession(ctx context.Context, sessionID int) ([]*decision.Edge, error) {
	// Edges are session-scoped through their source node, which also guards
	// against stale cross-session rows.
	rows, err := o.client.GraphEdge.Query().
		Where(graphedge.HasFromWith(node.SessionID(sessionID))).
		Order(ent.Asc(graphedge.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing session edges: %w", err)
	}
	edges := make([]*decision.Edge, len(rows))
	for i, e := range rows {
		edges[i] = toEdge(e)
	}
	return edges, nil
}

func (o *ops) ChoicesBySession(ctx context.Context, sessionID int) ([]*decision.Choice, error) {
	rows, err := o.client.Choice.Query().
		Where(choice.HasNodeWith(node.SessionID(sessionID))).
		Order(ent.Asc(choice.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing session choices: %w", err)
	}
	choices := make([]*decision.Choice, len(rows))
	for i, c := range rows {
		choices[i] = toChoice(c)
	}
	return choices, nil
}

func (o *ops) ChoicesByNode(ctx context.Context, nodeID int) ([]*decision.Choice, error) {
	rows, err := o.client.Choice.Query().
		Where(choice.NodeID(nodeID)).
		Order(ent.Asc(choice.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing node choices: %w", err)
	}
	choices := make([]*decision.Choice, len(rows))
	for i, c := range rows {
		choices[i] = toChoice(c)
	}
	return choices, nil
}

func (o *ops) ChoiceByLabel(ctx context.Context, nodeID int, label string) (*decision.Choice, error) {
	c, err := o.client.Choice.Query().
		Where(choice.NodeID(nodeID), choice.LabelEQ(label)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{Entity: "choice", Key: label}
		}
		return nil, fmt.Errorf("querying choice by label: %w", err)
	}
	return toChoice(c), nil
}

func (o *ops) CreateSession(ctx context.Context, s *decision.Session) (*decision.Session, error) {
	create := o.client.Session.Create().
		SetName(s.Name).
		SetNillableExternalID(s.ExternalID).
		SetNillableStartedAt(s.StartedAt).
		SetNillableEndedAt(s.EndedAt)

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			key := ""
			if s.ExternalID != nil {
				key = *s.ExternalID
			}
			return nil, storage.ConflictError{Entity: "session", Key: key}
		}
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return toSession(row), nil
}

func (o *ops) SaveSession(ctx context.Context, s *decision.Session) error {
	upd := o.client.Session.UpdateOneID(s.ID).
		SetName(s.Name)
	if s.StartedAt != nil {
		upd.SetStartedAt(*s.StartedAt)
	} else {
		upd.ClearStartedAt()
	}
	if s.EndedAt != nil {
		upd.SetEndedAt(*s.EndedAt)
	} else {
		upd.ClearEndedAt()
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return storage.NotFoundError{Entity: "session", Key: strconv.Itoa(s.ID)}
		}
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (o *ops) CreateNode(ctx context.Context, n *decision.Node) (*decision.Node, error) {
	create := o.client.Node.Create().
		SetSessionID(n.SessionID).
		SetType(string(n.Kind)).
		SetTitle(n.Title).
		SetStatus(string(n.Status)).
		SetNillableRationale(n.Rationale).
		SetNillableOwner(n.Owner).
		SetNillablePriority(n.Priority).
		SetNillableContextPrompt(n.ContextPrompt).
		SetNillableExternalRef(n.ExternalRef)

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			key := ""
			if n.ExternalRef != nil {
				key = *n.ExternalRef
			}
			return nil, storage.ConflictError{Entity: "node", Key: key}
		}
		return nil, fmt.Errorf("creating node: %w", err)
	}
	return toNode(row), nil
}

func (o *ops) SaveNode(ctx context.Context, n *decision.Node) error {
	upd := o.client.Node.UpdateOneID(n.ID).
		SetStatus(string(n.Status))
	if n.Rationale != nil {
		upd.SetRationale(*n.Rationale)
	} else {
		upd.ClearRationale()
	}
	if n.Owner != nil {
		upd.SetOwner(*n.Owner)
	} else {
		upd.ClearOwner()
	}
	if n.Priority != nil {
		upd.SetPriority(*n.Priority)
	} else {
		upd.ClearPriority()
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return storage.NotFoundError{Entity: "node", Key: strconv.Itoa(n.ID)}
		}
		return fmt.Errorf("saving node: %w", err)
	}
	return nil
}

func (o *ops) UpsertChoice(ctx context.Context, c *decision.Choice) (*decision.Choice, error) {
	existing, err := o.client.Choice.Query().
		Where(choice.NodeID(c.NodeID), choice.LabelEQ(c.Label)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying choice for upsert: %w", err)
	}

	if existing != nil {
		upd := existing.Update().
			SetText(c.Text).
			SetIsChosen(c.IsChosen)
		if c.ChosenAt != nil {
			upd.SetChosenAt(*c.ChosenAt)
		} else {
			upd.ClearChosenAt()
		}
		row, err := upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("updating choice: %w", err)
		}
		return toChoice(row), nil
	}

	row, err := o.client.Choice.Create().
		SetNodeID(c.NodeID).
		SetLabel(c.Label).
		SetText(c.Text).
		SetIsChosen(c.IsChosen).
		SetNillableChosenAt(c.ChosenAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating choice: %w", err)
	}
	return toChoice(row), nil
}

func (o *ops) ClearChosen(ctx context.Context, nodeID int) error {
	_, err := o.client.Choice.Update().
		Where(choice.NodeID(nodeID)).
		SetIsChosen(false).
		ClearChosenAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("clearing chosen choices: %w", err)
	}
	return nil
}

func (o *ops) CreateEdge(ctx context.Context, e *decision.Edge) (*decision.Edge, error) {
	row, err := o.client.GraphEdge.Create().
		SetFromNodeID(e.FromNodeID).
		SetToNodeID(e.ToNodeID).
		SetType(string(e.Type)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating edge: %w", err)
	}
	return toEdge(row), nil
}

func (o *ops) AppendEvent(ctx context.Context, rec *decision.EventRecord) (*decision.EventRecord, error) {
	row, err := o.client.EventLog.Create().
		SetSessionID(rec.SessionID).
		SetSource(rec.Source).
		SetEventType(string(rec.EventType)).
		SetPayloadJSON(rec.PayloadJSON).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("appending event log: %w", err)
	}
	return toEventRecord(row), nil
}

func toSession(s *ent.Session) *decision.Session {
	return &decision.Session{
		ID:         s.ID,
		ExternalID: s.ExternalID,
		Name:       s.Name,
		StartedAt:  s.StartedAt,
		EndedAt:    s.EndedAt,
		CreatedAt:  s.CreatedAt,
	}
}

func toNode(n *ent.Node) *decision.Node {
	return &decision.Node{
		ID:            n.ID,
		SessionID:     n.SessionID,
		Kind:          decision.Kind(n.Type),
		Title:         n.Title,
		Status:        decision.Status(n.Status),
		Rationale:     n.Rationale,
		Owner:         n.Owner,
		Priority:      n.Priority,
		ContextPrompt: n.ContextPrompt,
		ExternalRef:   n.ExternalRef,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func toChoice(c *ent.Choice) *decision.Choice {
	return &decision.Choice{
		ID:       c.ID,
		NodeID:   c.NodeID,
		Label:    c.Label,
		Text:     c.Text,
		IsChosen: c.IsChosen,
		ChosenAt: c.ChosenAt,
	}
}

func toEdge(e *ent.GraphEdge) *decision.Edge {
	return &decision.Edge{
		ID:         e.ID,
		FromNodeID: e.FromNodeID,
		ToNodeID:   e.ToNodeID,
		Type:       decision.EdgeType(e.Type),
		CreatedAt:  e.CreatedAt,
	}
}

func toEventRecord(l *ent.EventLog) *decision.EventRecord {
	return &decision.EventRecord{
		ID:          l.ID,
		SessionID:   l.SessionID,
		Source:      l.Source,
		EventType:   decision.EventType(l.EventType),
		PayloadJSON: l.PayloadJSON,
		ReceivedAt:  l.ReceivedAt,
	}
}
