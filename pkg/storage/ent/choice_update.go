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
	"github.com/atriumhq/atrium/pkg/storage/ent/predicate"
)

// ChoiceUpdate is the builder for updating Choice entities.
type ChoiceUpdate struct {
	config
	hooks    []Hook
	mutation *ChoiceMutation
}

// Where appends a list predicates to the ChoiceUpdate builder.
func (_u *ChoiceUpdate) Where(ps ...predicate.Choice) *ChoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabel sets the "label" field.
func (_u *ChoiceUpdate) SetLabel(v string) *ChoiceUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ChoiceUpdate) SetNillableLabel(v *string) *ChoiceUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChoiceUpdate) SetText(v string) *ChoiceUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChoiceUpdate) SetNillableText(v *string) *ChoiceUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetIsChosen sets the "is_chosen" field.
func (_u *ChoiceUpdate) SetIsChosen(v bool) *ChoiceUpdate {
	_u.mutation.SetIsChosen(v)
	return _u
}

// SetNillableIsChosen sets the "is_chosen" field if the given value is not nil.
func (_u *ChoiceUpdate) SetNillableIsChosen(v *bool) *ChoiceUpdate {
	if v != nil {
		_u.SetIsChosen(*v)
	}
	return _u
}

// SetChosenAt sets the "chosen_at" field.
func (_u *ChoiceUpdate) SetChosenAt(v time.Time) *ChoiceUpdate {
	_u.mutation.SetChosenAt(v)
	return _u
}

// SetNillableChosenAt sets the "chosen_at" field if the given value is not nil.
func (_u *ChoiceUpdate) SetNillableChosenAt(v *time.Time) *ChoiceUpdate {
	if v != nil {
		_u.SetChosenAt(*v)
	}
	return _u
}

// ClearChosenAt clears the value of the "chosen_at" field.
func (_u *ChoiceUpdate) ClearChosenAt() *ChoiceUpdate {
	_u.mutation.ClearChosenAt()
	return _u
}

// Mutation returns the ChoiceMutation object of the builder.
func (_u *ChoiceUpdate) Mutation() *ChoiceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChoiceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChoiceUpdate) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := choice.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Choice.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := choice.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Choice.text": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Choice.node"`)
	}
	return nil
}

func (_u *ChoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(choice.Table, choice.Columns, sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(choice.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(choice.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsChosen(); ok {
		_spec.SetField(choice.FieldIsChosen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChosenAt(); ok {
		_spec.SetField(choice.FieldChosenAt, field.TypeTime, value)
	}
	if _u.mutation.ChosenAtCleared() {
		_spec.ClearField(choice.FieldChosenAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{choice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChoiceUpdateOne is the builder for updating a single Choice entity.
type ChoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChoiceMutation
}

// SetLabel sets the "label" field.
func (_u *ChoiceUpdateOne) SetLabel(v string) *ChoiceUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ChoiceUpdateOne) SetNillableLabel(v *string) *ChoiceUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ChoiceUpdateOne) SetText(v string) *ChoiceUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ChoiceUpdateOne) SetNillableText(v *string) *ChoiceUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetIsChosen sets the "is_chosen" field.
func (_u *ChoiceUpdateOne) SetIsChosen(v bool) *ChoiceUpdateOne {
	_u.mutation.SetIsChosen(v)
	return _u
}

// SetNillableIsChosen sets the "is_chosen" field if the given value is not nil.
func (_u *ChoiceUpdateOne) SetNillableIsChosen(v *bool) *ChoiceUpdateOne {
	if v != nil {
		_u.SetIsChosen(*v)
	}
	return _u
}

// SetChosenAt sets the "chosen_at" field.
func (_u *ChoiceUpdateOne) SetChosenAt(v time.Time) *ChoiceUpdateOne {
	_u.mutation.SetChosenAt(v)
	return _u
}

// SetNillableChosenAt sets the "chosen_at" field if the given value is not nil.
func (_u *ChoiceUpdateOne) SetNillableChosenAt(v *time.Time) *ChoiceUpdateOne {
	if v != nil {
		_u.SetChosenAt(*v)
	}
	return _u
}

// ClearChosenAt clears the value of the "chosen_at" field.
func (_u *ChoiceUpdateOne) ClearChosenAt() *ChoiceUpdateOne {
	_u.mutation.ClearChosenAt()
	return _u
}

// Mutation returns the ChoiceMutation object of the builder.
func (_u *ChoiceUpdateOne) Mutation() *ChoiceMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChoiceUpdate builder.
func (_u *ChoiceUpdateOne) Where(ps ...predicate.Choice) *ChoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChoiceUpdateOne) Select(field string, fields ...string) *ChoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Choice entity.
func (_u *ChoiceUpdateOne) Save(ctx context.Context) (*Choice, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChoiceUpdateOne) SaveX(ctx context.Context) *Choice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChoiceUpdateOne) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := choice.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Choice.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := choice.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Choice.text": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Choice.node"`)
	}
	return nil
}

func (_u *ChoiceUpdateOne) sqlSave(ctx context.Context) (_node *Choice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(choice.Table, choice.Columns, sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Choice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, choice.FieldID)
		for _, f := range fields {
			if !choice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != choice.FieldID {
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
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(choice.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(choice.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsChosen(); ok {
		_spec.SetField(choice.FieldIsChosen, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChosenAt(); ok {
		_spec.SetField(choice.FieldChosenAt, field.TypeTime, value)
	}
	if _u.mutation.ChosenAtCleared() {
		_spec.ClearField(choice.FieldChosenAt, field.TypeTime)
	}
	_node = &Choice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{choice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
