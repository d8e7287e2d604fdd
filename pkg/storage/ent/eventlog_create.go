// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/atriumhq/atrium/pkg/storage/ent/eventlog"
	"github.com/atriumhq/atrium/pkg/storage/ent/session"
)

// EventLogCreate is the builder for creating a EventLog entity.
type EventLogCreate struct {
	config
	mutation *EventLogMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *EventLogCreate) SetSessionID(v int) *EventLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *EventLogCreate) SetSource(v string) *EventLogCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventLogCreate) SetEventType(v string) *EventLogCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayloadJSON sets the "payload_json" field.
func (_c *EventLogCreate) SetPayloadJSON(v string) *EventLogCreate {
	_c.mutation.SetPayloadJSON(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *EventLogCreate) SetReceivedAt(v time.Time) *EventLogCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *EventLogCreate) SetNillableReceivedAt(v *time.Time) *EventLogCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *EventLogCreate) SetSession(v *Session) *EventLogCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the EventLogMutation object of the builder.
func (_c *EventLogCreate) Mutation() *EventLogMutation {
	return _c.mutation
}

// Save creates the EventLog in the database.
func (_c *EventLogCreate) Save(ctx context.Context) (*EventLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventLogCreate) SaveX(ctx context.Context) *EventLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventLogCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := eventlog.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventLogCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "EventLog.session_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "EventLog.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := eventlog.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "EventLog.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "EventLog.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := eventlog.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "EventLog.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PayloadJSON(); !ok {
		return &ValidationError{Name: "payload_json", err: errors.New(`ent: missing required field "EventLog.payload_json"`)}
	}
	if v, ok := _c.mutation.PayloadJSON(); ok {
		if err := eventlog.PayloadJSONValidator(v); err != nil {
			return &ValidationError{Name: "payload_json", err: fmt.Errorf(`ent: validator failed for field "EventLog.payload_json": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "EventLog.received_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "EventLog.session"`)}
	}
	return nil
}

func (_c *EventLogCreate) sqlSave(ctx context.Context) (*EventLog, error) {
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

func (_c *EventLogCreate) createSpec() (*EventLog, *sqlgraph.CreateSpec) {
	var (
		_node = &EventLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventlog.Table, sqlgraph.NewFieldSpec(eventlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(eventlog.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(eventlog.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.PayloadJSON(); ok {
		_spec.SetField(eventlog.FieldPayloadJSON, field.TypeString, value)
		_node.PayloadJSON = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(eventlog.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventlog.SessionTable,
			Columns: []string{eventlog.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EventLogCreateBulk is the builder for creating many EventLog entities in bulk.
type EventLogCreateBulk struct {
	config
	err      error
	builders []*EventLogCreate
}

// Save creates the EventLog entities in the database.
func (_c *EventLogCreateBulk) Save(ctx context.Context) ([]*EventLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventLogMutation)
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
func (_c *EventLogCreateBulk) SaveX(ctx context.Context) []*EventLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
