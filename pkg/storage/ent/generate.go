// Package ent holds the generated ent client for the Atrium schema. The
// generated code is not committed; run go generate ./... before building.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
