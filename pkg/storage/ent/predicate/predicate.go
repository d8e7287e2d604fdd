// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Choice is the predicate function for choice builders.
type Choice func(*sql.Selector)

// EventLog is the predicate function for eventlog builders.
type EventLog func(*sql.Selector)

// GraphEdge is the predicate function for graphedge builders.
type GraphEdge func(*sql.Selector)

// Node is the predicate function for node builders.
type Node func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
