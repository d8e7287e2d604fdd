// Code generated by ent, DO NOT EDIT.

package choice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/atriumhq/atrium/pkg/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Choice {
	return predicate.Choice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Choice {
	return predicate.Choice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Choice {
	return predicate.Choice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Choice {
	return predicate.Choice(sql.FieldLTE(FieldID, id))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldNodeID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldText, v))
}

// IsChosen applies equality check predicate on the "is_chosen" field. It's identical to IsChosenEQ.
func IsChosen(v bool) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldIsChosen, v))
}

// ChosenAt applies equality check predicate on the "chosen_at" field. It's identical to ChosenAtEQ.
func ChosenAt(v time.Time) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldChosenAt, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v int) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v int) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...int) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...int) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldNodeID, vs...))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.Choice {
	return predicate.Choice(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.Choice {
	return predicate.Choice(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.Choice {
	return predicate.Choice(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.Choice {
	return predicate.Choice(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.Choice {
	return predicate.Choice(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.Choice {
	return predicate.Choice(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.Choice {
	return predicate.Choice(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.Choice {
	return predicate.Choice(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.Choice {
	return predicate.Choice(sql.FieldContainsFold(FieldLabel, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Choice {
	return predicate.Choice(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Choice {
	return predicate.Choice(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Choice {
	return predicate.Choice(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Choice {
	return predicate.Choice(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Choice {
	return predicate.Choice(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Choice {
	return predicate.Choice(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Choice {
	return predicate.Choice(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Choice {
	return predicate.Choice(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Choice {
	return predicate.Choice(sql.FieldContainsFold(FieldText, v))
}

// IsChosenEQ applies the EQ predicate on the "is_chosen" field.
func IsChosenEQ(v bool) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldIsChosen, v))
}

// IsChosenNEQ applies the NEQ predicate on the "is_chosen" field.
func IsChosenNEQ(v bool) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldIsChosen, v))
}

// ChosenAtEQ applies the EQ predicate on the "chosen_at" field.
func ChosenAtEQ(v time.Time) predicate.Choice {
	return predicate.Choice(sql.FieldEQ(FieldChosenAt, v))
}

// ChosenAtNEQ applies the NEQ predicate on the "chosen_at" field.
func ChosenAtNEQ(v time.Time) predicate.Choice {
	return predicate.Choice(sql.FieldNEQ(FieldChosenAt, v))
}

// ChosenAtIn applies the In predicate on the "chosen_at" field.
func ChosenAtIn(vs ...time.Time) predicate.Choice {
	return predicate.Choice(sql.FieldIn(FieldChosenAt, vs...))
}

// ChosenAtNotIn applies the NotIn predicate on the "chosen_at" field.
func ChosenAtNotIn(vs ...time.Time) predicate.Choice {
	return predicate.Choice(sql.FieldNotIn(FieldChosenAt, vs...))
}

// ChosenAtGT applies the GT predicate on the "chosen_at" field.
func ChosenAtGT(v time.Time) predicate.Choice {
	return predicate.Choice(sql.FieldGT(FieldChosenAt, v))
}

// ChosenAtGTE applies the GTE predicate on the "chosen_at" field.
func ChosenAtGTE(v time.Time) predicate.Choice {
	return predicate.Choice(sql.FieldGTE(FieldChosenAt, v))
}

// ChosenAtLT applies the LT predicate on the "chosen_at" field.
func ChosenAtLT(v time.Time) predicate.Choice {
	return predicate.Choice(sql.FieldLT(FieldChosenAt, v))
}

// ChosenAtLTE applies the LTE predicate on the "chosen_at" field.
func ChosenAtLTE(v time.Time) predicate.Choice {
	return predicate.Choice(sql.FieldLTE(FieldChosenAt, v))
}

// ChosenAtIsNil applies the IsNil predicate on the "chosen_at" field.
func ChosenAtIsNil() predicate.Choice {
	return predicate.Choice(sql.FieldIsNull(FieldChosenAt))
}

// ChosenAtNotNil applies the NotNil predicate on the "chosen_at" field.
func ChosenAtNotNil() predicate.Choice {
	return predicate.Choice(sql.FieldNotNull(FieldChosenAt))
}

// HasNode applies the HasEdge predicate on the "node" edge.
func HasNode() predicate.Choice {
	return predicate.Choice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NodeTable, NodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodeWith applies the HasEdge predicate on the "node" edge with a given conditions (other predicates).
func HasNodeWith(preds ...predicate.Node) predicate.Choice {
	return predicate.Choice(func(s *sql.Selector) {
		step := newNodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Choice) predicate.Choice {
	return predicate.Choice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Choice) predicate.Choice {
	return predicate.Choice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Choice) predicate.Choice {
	return predicate.Choice(sql.NotPredicates(p))
}
