package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventLog holds the schema definition for the EventLog entity: the
// append-only audit trail of ingested events. Rows are never updated.
type EventLog struct {
	ent.Schema
}

// Fields of the EventLog.
func (EventLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_id").
			Immutable(),

		field.String("source").
			NotEmpty().
			Immutable(),

		field.String("event_type").
			NotEmpty().
			Immutable(),

		// payload_json is the full normalized payload, serialized.
		field.Text("payload_json").
			NotEmpty().
			Immutable(),

		field.Time("received_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the EventLog.
func (EventLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("event_type"),
	}
}

// Edges of the EventLog.
func (EventLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}
