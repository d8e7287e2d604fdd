package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Session holds the schema definition for the Session entity: one decision
// session owning a graph of nodes and an audit trail of events.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		// external_id is the caller-supplied idempotency tag. Unique when
		// present; sessions created directly may not carry one.
		field.String("external_id").
			Optional().
			Nillable().
			Unique(),

		field.String("name").
			NotEmpty(),

		field.Time("started_at").
			Optional().
			Nillable(),

		field.Time("ended_at").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("nodes", Node.Type),
		edge.To("events", EventLog.Type),
	}
}
