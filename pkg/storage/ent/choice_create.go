// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atriumhq/atrium/pkg/storage/ent/choice"
	"github.com/atriumhq/atrium/pkg/storage/ent/node"
)

// ChoiceCreate is the builder for creating a Choice entity.
type ChoiceCreate struct {
	config
	mutation *ChoiceMutation
	hooks    []Hook
}

// SetNodeID sets the "node_id" field.
func (_c *ChoiceCreate) SetNodeID(v int) *ChoiceCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *ChoiceCreate) SetLabel(v string) *ChoiceCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ChoiceCreate) SetText(v string) *ChoiceCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetIsChosen sets the "is_chosen" field.
func (_c *ChoiceCreate) SetIsChosen(v bool) *ChoiceCreate {
	_c.mutation.SetIsChosen(v)
	return _c
}

// SetNillableIsChosen sets the "is_chosen" field if the given value is not nil.
func (_c *ChoiceCreate) SetNillableIsChosen(v *bool) *ChoiceCreate {
	if v != nil {
		_c.SetIsChosen(*v)
	}
	return _c
}

// SetChosenAt sets the "chosen_at" field.
func (_c *ChoiceCreate) SetChosenAt(v time.Time) *ChoiceCreate {
	_c.mutation.SetChosenAt(v)
	return _c
}

// SetNillableChosenAt sets the "chosen_at" field if the given value is not nil.
func (_c *ChoiceCreate) SetNillableChosenAt(v *time.Time) *ChoiceCreate {
	if v != nil {
		_c.SetChosenAt(*v)
	}
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *ChoiceCreate) SetNode(v *Node) *ChoiceCreate {
	return _c.SetNodeID(v.ID)
}

// Mutation returns the ChoiceMutation object of the builder.
func (_c *ChoiceCreate) Mutation() *ChoiceMutation {
	return _c.mutation
}

// Save creates the Choice in the database.
func (_c *ChoiceCreate) Save(ctx context.Context) (*Choice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChoiceCreate) SaveX(ctx context.Context) *Choice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChoiceCreate) defaults() {
	if _, ok := _c.mutation.IsChosen(); !ok {
		v := choice.DefaultIsChosen
		_c.mutation.SetIsChosen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChoiceCreate) check() error {
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "Choice.node_id"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "Choice.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := choice.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "Choice.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Choice.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := choice.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Choice.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsChosen(); !ok {
		return &ValidationError{Name: "is_chosen", err: errors.New(`ent: missing required field "Choice.is_chosen"`)}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`ent: missing required edge "Choice.node"`)}
	}
	return nil
}

func (_c *ChoiceCreate) sqlSave(ctx context.Context) (*Choice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChoiceCreate) createSpec() (*Choice, *sqlgraph.CreateSpec) {
	var (
		_node = &Choice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(choice.Table, sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(choice.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(choice.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.IsChosen(); ok {
		_spec.SetField(choice.FieldIsChosen, field.TypeBool, value)
		_node.IsChosen = value
	}
	if value, ok := _c.mutation.ChosenAt(); ok {
		_spec.SetField(choice.FieldChosenAt, field.TypeTime, value)
		_node.ChosenAt = &value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   choice.NodeTable,
			Columns: []string{choice.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.NodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChoiceCreateBulk is the builder for creating many Choice entities in bulk.
type ChoiceCreateBulk struct {
	config
	err      error
	builders []*ChoiceCreate
}

// Save creates the Choice entities in the database.
func (_c *ChoiceCreateBulk) Save(ctx context.Context) ([]*Choice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Choice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChoiceCreateBulk) SaveX(ctx context.Context) []*Choice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
