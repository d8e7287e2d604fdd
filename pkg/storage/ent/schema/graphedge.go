package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GraphEdge holds the schema definition for the GraphEdge entity: a directed
// leads_to relation between two nodes of the same session. Rows are created
// once and never updated or deleted.
type GraphEdge struct {
	ent.Schema
}

// Fields of the GraphEdge.
func (GraphEdge) Fields() []ent.Field {
	return []ent.Field{
		field.Int("from_node_id").
			Immutable(),

		field.Int("to_node_id").
			Immutable(),

		field.String("type").
			Default("leads_to").
			Immutable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the GraphEdge.
func (GraphEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("from_node_id"),
		index.Fields("to_node_id"),
	}
}

// Edges of the GraphEdge.
func (GraphEdge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("from", Node.Type).
			Ref("outgoing").
			Field("from_node_id").
			Unique().
			Required().
			Immutable(),

		edge.From("to", Node.Type).
			Ref("incoming").
			Field("to_node_id").
			Unique().
			Required().
			Immutable(),
	}
}
