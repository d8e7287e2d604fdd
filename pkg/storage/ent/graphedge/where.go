// Code generated by ent, DO NOT EDIT.

package graphedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/atriumhq/atrium/pkg/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldID, id))
}

// FromNodeID applies equality check predicate on the "from_node_id" field. It's identical to FromNodeIDEQ.
func FromNodeID(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldFromNodeID, v))
}

// ToNodeID applies equality check predicate on the "to_node_id" field. It's identical to ToNodeIDEQ.
func ToNodeID(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldToNodeID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// FromNodeIDEQ applies the EQ predicate on the "from_node_id" field.
func FromNodeIDEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldFromNodeID, v))
}

// FromNodeIDNEQ applies the NEQ predicate on the "from_node_id" field.
func FromNodeIDNEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldFromNodeID, v))
}

// FromNodeIDIn applies the In predicate on the "from_node_id" field.
func FromNodeIDIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldFromNodeID, vs...))
}

// FromNodeIDNotIn applies the NotIn predicate on the "from_node_id" field.
func FromNodeIDNotIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldFromNodeID, vs...))
}

// ToNodeIDEQ applies the EQ predicate on the "to_node_id" field.
func ToNodeIDEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldToNodeID, v))
}

// ToNodeIDNEQ applies the NEQ predicate on the "to_node_id" field.
func ToNodeIDNEQ(v int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldToNodeID, v))
}

// ToNodeIDIn applies the In predicate on the "to_node_id" field.
func ToNodeIDIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldToNodeID, vs...))
}

// ToNodeIDNotIn applies the NotIn predicate on the "to_node_id" field.
func ToNodeIDNotIn(vs ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldToNodeID, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFrom applies the HasEdge predicate on the "from" edge.
func HasFrom() predicate.GraphEdge {
	return predicate.GraphEdge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FromTable, FromColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFromWith applies the HasEdge predicate on the "from" edge with a given conditions (other predicates).
func HasFromWith(preds ...predicate.Node) predicate.GraphEdge {
	return predicate.GraphEdge(func(s *sql.Selector) {
		step := newFromStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTo applies the HasEdge predicate on the "to" edge.
func HasTo() predicate.GraphEdge {
	return predicate.GraphEdge(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ToTable, ToColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToWith applies the HasEdge predicate on the "to" edge with a given conditions (other predicates).
func HasToWith(preds ...predicate.Node) predicate.GraphEdge {
	return predicate.GraphEdge(func(s *sql.Selector) {
		step := newToStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.NotPredicates(p))
}
