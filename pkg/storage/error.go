package storage

import "fmt"

// NotFoundError is returned when a session, node, or choice doesn't exist in
// the store.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e NotFoundError) Error() string {
	if e.Key == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// ConflictError is returned when an insert violates a uniqueness constraint,
// such as a duplicate session external id or node external ref.
type ConflictError struct {
	Entity string
	Key    string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Entity, e.Key)
}
