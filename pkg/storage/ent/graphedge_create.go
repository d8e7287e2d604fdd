// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atriumhq/atrium/pkg/storage/ent/graphedge"
	"github.com/atriumhq/atrium/pkg/storage/ent/node"
)

// GraphEdgeCreate is the builder for creating a GraphEdge entity.
type GraphEdgeCreate struct {
	config
	mutation *GraphEdgeMutation
	hooks    []Hook
}

// SetFromNodeID sets the "from_node_id" field.
func (_c *GraphEdgeCreate) SetFromNodeID(v int) *GraphEdgeCreate {
	_c.mutation.SetFromNodeID(v)
	return _c
}

// SetToNodeID sets the "to_node_id" field.
func (_c *GraphEdgeCreate) SetToNodeID(v int) *GraphEdgeCreate {
	_c.mutation.SetToNodeID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *GraphEdgeCreate) SetType(v string) *GraphEdgeCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableType(v *string) *GraphEdgeCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GraphEdgeCreate) SetCreatedAt(v time.Time) *GraphEdgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableCreatedAt(v *time.Time) *GraphEdgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFromID sets the "from" edge to the Node entity by ID.
func (_c *GraphEdgeCreate) SetFromID(id int) *GraphEdgeCreate {
	_c.mutation.SetFromID(id)
	return _c
}

// SetFrom sets the "from" edge to the Node entity.
func (_c *GraphEdgeCreate) SetFrom(v *Node) *GraphEdgeCreate {
	return _c.SetFromID(v.ID)
}

// SetToID sets the "to" edge to the Node entity by ID.
func (_c *GraphEdgeCreate) SetToID(id int) *GraphEdgeCreate {
	_c.mutation.SetToID(id)
	return _c
}

// SetTo sets the "to" edge to the Node entity.
func (_c *GraphEdgeCreate) SetTo(v *Node) *GraphEdgeCreate {
	return _c.SetToID(v.ID)
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_c *GraphEdgeCreate) Mutation() *GraphEdgeMutation {
	return _c.mutation
}

// Save creates the GraphEdge in the database.
func (_c *GraphEdgeCreate) Save(ctx context.Context) (*GraphEdge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphEdgeCreate) SaveX(ctx context.Context) *GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphEdgeCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := graphedge.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := graphedge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphEdgeCreate) check() error {
	if _, ok := _c.mutation.FromNodeID(); !ok {
		return &ValidationError{Name: "from_node_id", err: errors.New(`ent: missing required field "GraphEdge.from_node_id"`)}
	}
	if _, ok := _c.mutation.ToNodeID(); !ok {
		return &ValidationError{Name: "to_node_id", err: errors.New(`ent: missing required field "GraphEdge.to_node_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "GraphEdge.type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GraphEdge.created_at"`)}
	}
	if len(_c.mutation.FromIDs()) == 0 {
		return &ValidationError{Name: "from", err: errors.New(`ent: missing required edge "GraphEdge.from"`)}
	}
	if len(_c.mutation.ToIDs()) == 0 {
		return &ValidationError{Name: "to", err: errors.New(`ent: missing required edge "GraphEdge.to"`)}
	}
	return nil
}

func (_c *GraphEdgeCreate) sqlSave(ctx context.Context) (*GraphEdge, error) {
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

func (_c *GraphEdgeCreate) createSpec() (*GraphEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphedge.Table, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(graphedge.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graphedge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FromIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   graphedge.FromTable,
			Columns: []string{graphedge.FromColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FromNodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   graphedge.ToTable,
			Columns: []string{graphedge.ToColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ToNodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GraphEdgeCreateBulk is the builder for creating many GraphEdge entities in bulk.
type GraphEdgeCreateBulk struct {
	config
	err      error
	builders []*GraphEdgeCreate
}

// Save creates the GraphEdge entities in the database.
func (_c *GraphEdgeCreateBulk) Save(ctx context.Context) ([]*GraphEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphEdgeMutation)
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
func (_c *GraphEdgeCreateBulk) SaveX(ctx context.Context) []*GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
