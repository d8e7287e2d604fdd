// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atriumhq/atrium/pkg/storage/ent/choice"
	"github.com/atriumhq/atrium/pkg/storage/ent/graphedge"
	"github.com/atriumhq/atrium/pkg/storage/ent/node"
	"github.com/atriumhq/atrium/pkg/storage/ent/predicate"
)

// NodeUpdate is the builder for updating Node entities.
type NodeUpdate struct {
	config
	hooks    []Hook
	mutation *NodeMutation
}

// Where appends a list predicates to the NodeUpdate builder.
func (_u *NodeUpdate) Where(ps ...predicate.Node) *NodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *NodeUpdate) SetTitle(v string) *NodeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableTitle(v *string) *NodeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NodeUpdate) SetStatus(v string) *NodeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableStatus(v *string) *NodeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *NodeUpdate) SetRationale(v string) *NodeUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableRationale(v *string) *NodeUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *NodeUpdate) ClearRationale() *NodeUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *NodeUpdate) SetOwner(v string) *NodeUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableOwner(v *string) *NodeUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *NodeUpdate) ClearOwner() *NodeUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NodeUpdate) SetPriority(v int) *NodeUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NodeUpdate) SetNillablePriority(v *int) *NodeUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *NodeUpdate) AddPriority(v int) *NodeUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// ClearPriority clears the value of the "priority" field.
func (_u *NodeUpdate) ClearPriority() *NodeUpdate {
	_u.mutation.ClearPriority()
	return _u
}

// SetContextPrompt sets the "context_prompt" field.
func (_u *NodeUpdate) SetContextPrompt(v string) *NodeUpdate {
	_u.mutation.SetContextPrompt(v)
	return _u
}

// SetNillableContextPrompt sets the "context_prompt" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableContextPrompt(v *string) *NodeUpdate {
	if v != nil {
		_u.SetContextPrompt(*v)
	}
	return _u
}

// ClearContextPrompt clears the value of the "context_prompt" field.
func (_u *NodeUpdate) ClearContextPrompt() *NodeUpdate {
	_u.mutation.ClearContextPrompt()
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *NodeUpdate) SetExternalRef(v string) *NodeUpdate {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *NodeUpdate) SetNillableExternalRef(v *string) *NodeUpdate {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *NodeUpdate) ClearExternalRef() *NodeUpdate {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NodeUpdate) SetUpdatedAt(v time.Time) *NodeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChoiceIDs adds the "choices" edge to the Choice entity by IDs.
func (_u *NodeUpdate) AddChoiceIDs(ids ...int) *NodeUpdate {
	_u.mutation.AddChoiceIDs(ids...)
	return _u
}

// AddChoices adds the "choices" edges to the Choice entity.
func (_u *NodeUpdate) AddChoices(v ...*Choice) *NodeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChoiceIDs(ids...)
}

// AddOutgoingIDs adds the "outgoing" edge to the GraphEdge entity by IDs.
func (_u *NodeUpdate) AddOutgoingIDs(ids ...int) *NodeUpdate {
	_u.mutation.AddOutgoingIDs(ids...)
	return _u
}

// AddOutgoing adds the "outgoing" edges to the GraphEdge entity.
func (_u *NodeUpdate) AddOutgoing(v ...*GraphEdge) *NodeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingIDs(ids...)
}

// AddIncomingIDs adds the "incoming" edge to the GraphEdge entity by IDs.
func (_u *NodeUpdate) AddIncomingIDs(ids ...int) *NodeUpdate {
	_u.mutation.AddIncomingIDs(ids...)
	return _u
}

// AddIncoming adds the "incoming" edges to the GraphEdge entity.
func (_u *NodeUpdate) AddIncoming(v ...*GraphEdge) *NodeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncomingIDs(ids...)
}

// Mutation returns the NodeMutation object of the builder.
func (_u *NodeUpdate) Mutation() *NodeMutation {
	return _u.mutation
}

// ClearChoices clears all "choices" edges to the Choice entity.
func (_u *NodeUpdate) ClearChoices() *NodeUpdate {
	_u.mutation.ClearChoices()
	return _u
}

// RemoveChoiceIDs removes the "choices" edge to Choice entities by IDs.
func (_u *NodeUpdate) RemoveChoiceIDs(ids ...int) *NodeUpdate {
	_u.mutation.RemoveChoiceIDs(ids...)
	return _u
}

// RemoveChoices removes "choices" edges to Choice entities.
func (_u *NodeUpdate) RemoveChoices(v ...*Choice) *NodeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChoiceIDs(ids...)
}

// ClearOutgoing clears all "outgoing" edges to the GraphEdge entity.
func (_u *NodeUpdate) ClearOutgoing() *NodeUpdate {
	_u.mutation.ClearOutgoing()
	return _u
}

// RemoveOutgoingIDs removes the "outgoing" edge to GraphEdge entities by IDs.
func (_u *NodeUpdate) RemoveOutgoingIDs(ids ...int) *NodeUpdate {
	_u.mutation.RemoveOutgoingIDs(ids...)
	return _u
}

// RemoveOutgoing removes "outgoing" edges to GraphEdge entities.
func (_u *NodeUpdate) RemoveOutgoing(v ...*GraphEdge) *NodeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingIDs(ids...)
}

// ClearIncoming clears all "incoming" edges to the GraphEdge entity.
func (_u *NodeUpdate) ClearIncoming() *NodeUpdate {
	_u.mutation.ClearIncoming()
	return _u
}

// RemoveIncomingIDs removes the "incoming" edge to GraphEdge entities by IDs.
func (_u *NodeUpdate) RemoveIncomingIDs(ids ...int) *NodeUpdate {
	_u.mutation.RemoveIncomingIDs(ids...)
	return _u
}

// RemoveIncoming removes "incoming" edges to GraphEdge entities.
func (_u *NodeUpdate) RemoveIncoming(v ...*GraphEdge) *NodeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncomingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NodeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := node.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := node.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Node.title": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Node.session"`)
	}
	return nil
}

func (_u *NodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(node.Table, node.Columns, sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(node.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(node.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(node.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(node.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(node.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(node.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(node.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(node.FieldPriority, field.TypeInt, value)
	}
	if _u.mutation.PriorityCleared() {
		_spec.ClearField(node.FieldPriority, field.TypeInt)
	}
	if value, ok := _u.mutation.ContextPrompt(); ok {
		_spec.SetField(node.FieldContextPrompt, field.TypeString, value)
	}
	if _u.mutation.ContextPromptCleared() {
		_spec.ClearField(node.FieldContextPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(node.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(node.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(node.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.ChoicesTable,
			Columns: []string{node.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChoicesIDs(); len(nodes) > 0 && !_u.mutation.ChoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.ChoicesTable,
			Columns: []string{node.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.ChoicesTable,
			Columns: []string{node.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutgoingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.OutgoingTable,
			Columns: []string{node.OutgoingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingIDs(); len(nodes) > 0 && !_u.mutation.OutgoingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.OutgoingTable,
			Columns: []string{node.OutgoingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.OutgoingTable,
			Columns: []string{node.OutgoingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IncomingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.IncomingTable,
			Columns: []string{node.IncomingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncomingIDs(); len(nodes) > 0 && !_u.mutation.IncomingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.IncomingTable,
			Columns: []string{node.IncomingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncomingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.IncomingTable,
			Columns: []string{node.IncomingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{node.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeUpdateOne is the builder for updating a single Node entity.
type NodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeMutation
}

// SetTitle sets the "title" field.
func (_u *NodeUpdateOne) SetTitle(v string) *NodeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableTitle(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *NodeUpdateOne) SetStatus(v string) *NodeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableStatus(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *NodeUpdateOne) SetRationale(v string) *NodeUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableRationale(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *NodeUpdateOne) ClearRationale() *NodeUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *NodeUpdateOne) SetOwner(v string) *NodeUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableOwner(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *NodeUpdateOne) ClearOwner() *NodeUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NodeUpdateOne) SetPriority(v int) *NodeUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillablePriority(v *int) *NodeUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *NodeUpdateOne) AddPriority(v int) *NodeUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// ClearPriority clears the value of the "priority" field.
func (_u *NodeUpdateOne) ClearPriority() *NodeUpdateOne {
	_u.mutation.ClearPriority()
	return _u
}

// SetContextPrompt sets the "context_prompt" field.
func (_u *NodeUpdateOne) SetContextPrompt(v string) *NodeUpdateOne {
	_u.mutation.SetContextPrompt(v)
	return _u
}

// SetNillableContextPrompt sets the "context_prompt" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableContextPrompt(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetContextPrompt(*v)
	}
	return _u
}

// ClearContextPrompt clears the value of the "context_prompt" field.
func (_u *NodeUpdateOne) ClearContextPrompt() *NodeUpdateOne {
	_u.mutation.ClearContextPrompt()
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *NodeUpdateOne) SetExternalRef(v string) *NodeUpdateOne {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *NodeUpdateOne) SetNillableExternalRef(v *string) *NodeUpdateOne {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *NodeUpdateOne) ClearExternalRef() *NodeUpdateOne {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NodeUpdateOne) SetUpdatedAt(v time.Time) *NodeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChoiceIDs adds the "choices" edge to the Choice entity by IDs.
func (_u *NodeUpdateOne) AddChoiceIDs(ids ...int) *NodeUpdateOne {
	_u.mutation.AddChoiceIDs(ids...)
	return _u
}

// AddChoices adds the "choices" edges to the Choice entity.
func (_u *NodeUpdateOne) AddChoices(v ...*Choice) *NodeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChoiceIDs(ids...)
}

// AddOutgoingIDs adds the "outgoing" edge to the GraphEdge entity by IDs.
func (_u *NodeUpdateOne) AddOutgoingIDs(ids ...int) *NodeUpdateOne {
	_u.mutation.AddOutgoingIDs(ids...)
	return _u
}

// AddOutgoing adds the "outgoing" edges to the GraphEdge entity.
func (_u *NodeUpdateOne) AddOutgoing(v ...*GraphEdge) *NodeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingIDs(ids...)
}

// AddIncomingIDs adds the "incoming" edge to the GraphEdge entity by IDs.
func (_u *NodeUpdateOne) AddIncomingIDs(ids ...int) *NodeUpdateOne {
	_u.mutation.AddIncomingIDs(ids...)
	return _u
}

// AddIncoming adds the "incoming" edges to the GraphEdge entity.
func (_u *NodeUpdateOne) AddIncoming(v ...*GraphEdge) *NodeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIncomingIDs(ids...)
}

// Mutation returns the NodeMutation object of the builder.
func (_u *NodeUpdateOne) Mutation() *NodeMutation {
	return _u.mutation
}

// ClearChoices clears all "choices" edges to the Choice entity.
func (_u *NodeUpdateOne) ClearChoices() *NodeUpdateOne {
	_u.mutation.ClearChoices()
	return _u
}

// RemoveChoiceIDs removes the "choices" edge to Choice entities by IDs.
func (_u *NodeUpdateOne) RemoveChoiceIDs(ids ...int) *NodeUpdateOne {
	_u.mutation.RemoveChoiceIDs(ids...)
	return _u
}

// RemoveChoices removes "choices" edges to Choice entities.
func (_u *NodeUpdateOne) RemoveChoices(v ...*Choice) *NodeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChoiceIDs(ids...)
}

// ClearOutgoing clears all "outgoing" edges to the GraphEdge entity.
func (_u *NodeUpdateOne) ClearOutgoing() *NodeUpdateOne {
	_u.mutation.ClearOutgoing()
	return _u
}

// RemoveOutgoingIDs removes the "outgoing" edge to GraphEdge entities by IDs.
func (_u *NodeUpdateOne) RemoveOutgoingIDs(ids ...int) *NodeUpdateOne {
	_u.mutation.RemoveOutgoingIDs(ids...)
	return _u
}

// RemoveOutgoing removes "outgoing" edges to GraphEdge entities.
func (_u *NodeUpdateOne) RemoveOutgoing(v ...*GraphEdge) *NodeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingIDs(ids...)
}

// ClearIncoming clears all "incoming" edges to the GraphEdge entity.
func (_u *NodeUpdateOne) ClearIncoming() *NodeUpdateOne {
	_u.mutation.ClearIncoming()
	return _u
}

// RemoveIncomingIDs removes the "incoming" edge to GraphEdge entities by IDs.
func (_u *NodeUpdateOne) RemoveIncomingIDs(ids ...int) *NodeUpdateOne {
	_u.mutation.RemoveIncomingIDs(ids...)
	return _u
}

// RemoveIncoming removes "incoming" edges to GraphEdge entities.
func (_u *NodeUpdateOne) RemoveIncoming(v ...*GraphEdge) *NodeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIncomingIDs(ids...)
}

// Where appends a list predicates to the NodeUpdate builder.
func (_u *NodeUpdateOne) Where(ps ...predicate.Node) *NodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeUpdateOne) Select(field string, fields ...string) *NodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Node entity.
func (_u *NodeUpdateOne) Save(ctx context.Context) (*Node, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeUpdateOne) SaveX(ctx context.Context) *Node {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NodeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := node.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := node.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Node.title": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Node.session"`)
	}
	return nil
}

func (_u *NodeUpdateOne) sqlSave(ctx context.Context) (_node *Node, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(node.Table, node.Columns, sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Node.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, node.FieldID)
		for _, f := range fields {
			if !node.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != node.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(node.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(node.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(node.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(node.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(node.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(node.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(node.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(node.FieldPriority, field.TypeInt, value)
	}
	if _u.mutation.PriorityCleared() {
		_spec.ClearField(node.FieldPriority, field.TypeInt)
	}
	if value, ok := _u.mutation.ContextPrompt(); ok {
		_spec.SetField(node.FieldContextPrompt, field.TypeString, value)
	}
	if _u.mutation.ContextPromptCleared() {
		_spec.ClearField(node.FieldContextPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(node.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(node.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(node.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.ChoicesTable,
			Columns: []string{node.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChoicesIDs(); len(nodes) > 0 && !_u.mutation.ChoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.ChoicesTable,
			Columns: []string{node.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.ChoicesTable,
			Columns: []string{node.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutgoingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.OutgoingTable,
			Columns: []string{node.OutgoingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingIDs(); len(nodes) > 0 && !_u.mutation.OutgoingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.OutgoingTable,
			Columns: []string{node.OutgoingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.OutgoingTable,
			Columns: []string{node.OutgoingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IncomingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.IncomingTable,
			Columns: []string{node.IncomingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIncomingIDs(); len(nodes) > 0 && !_u.mutation.IncomingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.IncomingTable,
			Columns: []string{node.IncomingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IncomingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.IncomingTable,
			Columns: []string{node.IncomingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Node{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{node.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
