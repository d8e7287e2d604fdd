// Package reducer maps ingested decision events onto mutations of the graph
// store. Each ingestion is one atomic transaction: resolve or create the
// owning session, apply the typed payload, append the audit record.
package reducer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/pkg/decision"
	"github.com/atriumhq/atrium/pkg/eventstream"
	"github.com/atriumhq/atrium/pkg/storage"
)

// Reducer applies decision events to the store. It holds no state of its own
// beyond its collaborators; every call is independent.
type Reducer struct {
	driver    storage.Driver
	publisher eventstream.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// New creates a Reducer. The publisher may be nil when no downstream stream
// is configured.
func New(driver storage.Driver, publisher eventstream.Publisher, logger *zap.Logger) *Reducer {
	return &Reducer{
		driver:    driver,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Ingest applies one decoded event inside a single transaction and returns
// what it did. The audit record is written in the same transaction, so a
// failing handler leaves neither graph mutations nor a dangling log entry.
func (r *Reducer) Ingest(ctx context.Context, ev *decision.Event) (*decision.IngestResult, error) {
	if ev == nil || ev.Payload == nil {
		return nil, decision.ValidationError{Reason: "missing event"}
	}

	var result decision.IngestResult
	err := r.driver.Atomic(ctx, func(tx storage.Mutator) error {
		sess, err := r.ensureSession(ctx, tx, ev.SessionExternalID)
		if err != nil {
			return err
		}

		var affected *decision.Node
		switch p := ev.Payload.(type) {
		case *decision.QuestionPresented:
			affected, err = r.applyQuestionPresented(ctx, tx, sess, ev, p)
		case *decision.ChoiceSelected:
			affected, err = r.applyChoiceSelected(ctx, tx, sess, p)
		case *decision.NoteAdded:
			affected, err = r.applyNoteAdded(ctx, tx, sess, p)
		case *decision.NodeStatusChanged:
			affected, err = r.applyNodeStatusChanged(ctx, tx, sess, p)
		default:
			return decision.UnsupportedEventTypeError{Type: string(ev.Type)}
		}
		if err != nil {
			return err
		}

		payloadJSON, err := json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("serializing payload for audit log: %w", err)
		}
		rec, err := tx.AppendEvent(ctx, &decision.EventRecord{
			SessionID:   sess.ID,
			Source:      ev.Source,
			EventType:   ev.Type,
			PayloadJSON: string(payloadJSON),
		})
		if err != nil {
			return err
		}

		result = decision.IngestResult{
			EventLogID: rec.ID,
			SessionID:  sess.ID,
		}
		if affected != nil {
			id := affected.ID
			result.AffectedNodeID = &id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.publishIngested(ctx, ev, &result)
	return &result, nil
}

// ensureSession resolves the session by external id, creating it on first
// sight. A uniqueness conflict from a concurrent creation is treated as
// "session already exists" and resolved by re-reading.
func (r *Reducer) ensureSession(ctx context.Context, tx storage.Mutator, externalID string) (*decision.Session, error) {
	sess, err := tx.SessionByExternalID(ctx, externalID)
	if err == nil {
		return sess, nil
	}
	var nf storage.NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}

	started := r.now()
	created, err := tx.CreateSession(ctx, &decision.Session{
		ExternalID: &externalID,
		Name:       externalID,
		StartedAt:  &started,
	})
	if err == nil {
		return created, nil
	}
	var conflict storage.ConflictError
	if errors.As(err, &conflict) {
		return tx.SessionByExternalID(ctx, externalID)
	}
	return nil, err
}

func (r *Reducer) applyQuestionPresented(ctx context.Context, tx storage.Mutator, sess *decision.Session, ev *decision.Event, p *decision.QuestionPresented) (*decision.Node, error) {
	n := &decision.Node{
		SessionID: sess.ID,
		Kind:      decision.KindQuestion,
		Title:     p.Title,
		Status:    decision.StatusOpen,
		Priority:  p.Priority,
	}
	if p.Rationale != "" {
		n.Rationale = &p.Rationale
	}
	if owner := ownerFor(p.Owner, ev.AgentName); owner != "" {
		n.Owner = &owner
	}
	if p.ContextPrompt != "" {
		n.ContextPrompt = &p.ContextPrompt
	}
	if p.NodeRef != "" {
		n.ExternalRef = &p.NodeRef
	}

	node, err := tx.CreateNode(ctx, n)
	if err != nil {
		return nil, err
	}

	for _, ci := range p.Choices {
		if _, err := tx.UpsertChoice(ctx, &decision.Choice{
			NodeID: node.ID,
			Label:  ci.Label,
			Text:   ci.Text,
		}); err != nil {
			return nil, err
		}
	}

	if !p.Parent.IsAbsent() {
		parent, err := resolveNode(ctx, tx, sess.ID, p.Parent)
		switch {
		case err == nil:
			if _, err := tx.CreateEdge(ctx, &decision.Edge{
				FromNodeID: parent.ID,
				ToNodeID:   node.ID,
				Type:       decision.EdgeLeadsTo,
			}); err != nil {
				return nil, err
			}
		case isNotFound(err):
			// Unresolved parent refs produce the node without an edge.
			r.logger.Debug("parent reference did not resolve, skipping edge",
				zap.Int("session_id", sess.ID),
				zap.String("parent_ref", p.Parent.String()),
			)
		default:
			return nil, err
		}
	}

	return node, nil
}

func (r *Reducer) applyChoiceSelected(ctx context.Context, tx storage.Mutator, sess *decision.Session, p *decision.ChoiceSelected) (*decision.Node, error) {
	node, err := resolveTarget(ctx, tx, sess.ID, p.Target)
	if err != nil {
		return nil, err
	}

	// When no text is supplied, keep the existing choice text; a brand-new
	// label falls back to the label itself.
	text := p.Text
	if text == "" {
		existing, err := tx.ChoiceByLabel(ctx, node.ID, p.Label)
		switch {
		case err == nil:
			text = existing.Text
		case isNotFound(err):
			text = p.Label
		default:
			return nil, err
		}
	}

	if err := tx.ClearChosen(ctx, node.ID); err != nil {
		return nil, err
	}

	chosenAt := r.now()
	if _, err := tx.UpsertChoice(ctx, &decision.Choice{
		NodeID:   node.ID,
		Label:    p.Label,
		Text:     text,
		IsChosen: true,
		ChosenAt: &chosenAt,
	}); err != nil {
		return nil, err
	}

	return node, nil
}

func (r *Reducer) applyNoteAdded(ctx context.Context, tx storage.Mutator, sess *decision.Session, p *decision.NoteAdded) (*decision.Node, error) {
	node, err := resolveTarget(ctx, tx, sess.ID, p.Target)
	if err != nil {
		return nil, err
	}

	merged := p.Note
	if node.Rationale != nil && *node.Rationale != "" {
		merged = *node.Rationale + "\n" + p.Note
	}
	node.Rationale = &merged

	if err := tx.SaveNode(ctx, node); err != nil {
		return nil, err
	}
	return node, nil
}

func (r *Reducer) applyNodeStatusChanged(ctx context.Context, tx storage.Mutator, sess *decision.Session, p *decision.NodeStatusChanged) (*decision.Node, error) {
	node, err := resolveTarget(ctx, tx, sess.ID, p.Target)
	if err != nil {
		return nil, err
	}

	node.Status = p.Status
	if err := tx.SaveNode(ctx, node); err != nil {
		return nil, err
	}
	return node, nil
}

// publishIngested notifies the eventstream after commit. Publishing is
// best-effort: the graph mutation already committed, so a stream failure is
// logged, not surfaced.
func (r *Reducer) publishIngested(ctx context.Context, ev *decision.Event, result *decision.IngestResult) {
	if r.publisher == nil {
		return
	}

	event := &eventstream.EventIngested{
		SchemaVersion: eventstream.SchemaVersionV1,
		EventType:     eventstream.EventTypeEventIngested,
		EventID:       uuid.NewString(),
		EmittedAt:     r.now(),
		Source: eventstream.EventSource{
			Source:    ev.Source,
			AgentName: ev.AgentName,
		},
		SessionID:         result.SessionID,
		SessionExternalID: ev.SessionExternalID,
		EventLogID:        result.EventLogID,
		AffectedNodeID:    result.AffectedNodeID,
		DecisionEventType: string(ev.Type),
	}

	if err := r.publisher.PublishIngested(ctx, event); err != nil {
		r.logger.Warn("failed to publish ingested event",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	}
}

func ownerFor(owner, agentName string) string {
	if owner != "" {
		return owner
	}
	if agentName != "" {
		return "agent:" + agentName
	}
	return ""
}

func isNotFound(err error) bool {
	var nf storage.NotFoundError
	return errors.As(err, &nf)
}
