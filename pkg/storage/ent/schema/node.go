package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Node holds the schema definition for the Node entity: a question, decision,
// or task vertex in a session's decision graph.
type Node struct {
	ent.Schema
}

// Fields of the Node.
func (Node) Fields() []ent.Field {
	return []ent.Field{
		// session_id pins the node to its session for life.
		field.Int("session_id").
			Immutable(),

		// type is the node kind: question, decision, or task. The closed set
		// is enforced at the domain layer.
		field.String("type").
			NotEmpty().
			Immutable(),

		field.String("title").
			NotEmpty(),

		// status is one of open, in_progress, blocked, done.
		field.String("status").
			Default("open"),

		// rationale accumulates note_added text, newline-separated.
		field.String("rationale").
			Optional().
			Nillable(),

		// owner is a human name or "agent:<name>".
		field.String("owner").
			Optional().
			Nillable(),

		field.Int("priority").
			Optional().
			Nillable(),

		field.String("context_prompt").
			Optional().
			Nillable(),

		// external_ref is the caller-supplied reference tag, unique when
		// present.
		field.String("external_ref").
			Optional().
			Nillable().
			Unique(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Node.
func (Node) Indexes() []ent.Index {
	return []ent.Index{
		// Status lookups back the graph status filter.
		index.Fields("session_id", "status"),

		// Latest-question fallback scans by session and type.
		index.Fields("session_id", "type"),
	}
}

// Edges of the Node.
func (Node) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("nodes").
			Field("session_id").
			Unique().
			Required().
			Immutable(),

		edge.To("choices", Choice.Type),

		edge.To("outgoing", GraphEdge.Type),
		edge.To("incoming", GraphEdge.Type),
	}
}
