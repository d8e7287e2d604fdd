package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Choice holds the schema definition for the Choice entity: a labeled option
// attached to a node, at most one of which is chosen.
type Choice struct {
	ent.Schema
}

// Fields of the Choice.
func (Choice) Fields() []ent.Field {
	return []ent.Field{
		field.Int("node_id").
			Immutable(),

		field.String("label").
			NotEmpty(),

		field.String("text").
			NotEmpty(),

		field.Bool("is_chosen").
			Default(false),

		field.Time("chosen_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Choice.
func (Choice) Indexes() []ent.Index {
	return []ent.Index{
		// Labels are unique per node; duplicate labels replace the prior
		// entry at the reducer layer.
		index.Fields("node_id", "label").
			Unique(),
	}
}

// Edges of the Choice.
func (Choice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("node", Node.Type).
			Ref("choices").
			Field("node_id").
			Unique().
			Required().
			Immutable(),
	}
}
