// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/atriumhq/atrium/pkg/storage/ent/graphedge"
	"github.com/atriumhq/atrium/pkg/storage/ent/node"
)

// GraphEdge is the model entity for the GraphEdge schema.
type GraphEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FromNodeID holds the value of the "from_node_id" field.
	FromNodeID int `json:"from_node_id,omitempty"`
	// ToNodeID holds the value of the "to_node_id" field.
	ToNodeID int `json:"to_node_id,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GraphEdgeQuery when eager-loading is set.
	Edges        GraphEdgeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GraphEdgeEdges holds the relations/edges for other nodes in the graph.
type GraphEdgeEdges struct {
	// From holds the value of the from edge.
	From *Node `json:"from,omitempty"`
	// To holds the value of the to edge.
	To *Node `json:"to,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FromOrErr returns the From value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GraphEdgeEdges) FromOrErr() (*Node, error) {
	if e.From != nil {
		return e.From, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "from"}
}

// ToOrErr returns the To value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GraphEdgeEdges) ToOrErr() (*Node, error) {
	if e.To != nil {
		return e.To, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: node.Label}
	}
	return nil, &NotLoadedError{edge: "to"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldID, graphedge.FieldFromNodeID, graphedge.FieldToNodeID:
			values[i] = new(sql.NullInt64)
		case graphedge.FieldType:
			values[i] = new(sql.NullString)
		case graphedge.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphEdge fields.
func (_m *GraphEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case graphedge.FieldFromNodeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_node_id", values[i])
			} else if value.Valid {
				_m.FromNodeID = int(value.Int64)
			}
		case graphedge.FieldToNodeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_node_id", values[i])
			} else if value.Valid {
				_m.ToNodeID = int(value.Int64)
			}
		case graphedge.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case graphedge.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GraphEdge.
// This includes values selected through modifiers, order, etc.
func (_m *GraphEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFrom queries the "from" edge of the GraphEdge entity.
func (_m *GraphEdge) QueryFrom() *NodeQuery {
	return NewGraphEdgeClient(_m.config).QueryFrom(_m)
}

// QueryTo queries the "to" edge of the GraphEdge entity.
func (_m *GraphEdge) QueryTo() *NodeQuery {
	return NewGraphEdgeClient(_m.config).QueryTo(_m)
}

// Update returns a builder for updating this GraphEdge.
// Note that you need to call GraphEdge.Unwrap() before calling this method if this GraphEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphEdge) Update() *GraphEdgeUpdateOne {
	return NewGraphEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphEdge) Unwrap() *GraphEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphEdge) String() string {
	var builder strings.Builder
	builder.WriteString("GraphEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("from_node_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromNodeID))
	builder.WriteString(", ")
	builder.WriteString("to_node_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToNodeID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GraphEdges is a parsable slice of GraphEdge.
type GraphEdges []*GraphEdge
