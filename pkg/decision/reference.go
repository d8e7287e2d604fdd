package decision

import "strconv"

type refKind int

const (
	refAbsent refKind = iota
	refNumeric
	refExternal
)

// Reference addresses a node within a session: by internal numeric id, by
// caller-supplied external tag, or not at all. The form is decided once, at
// the transport boundary, so the resolver never re-sniffs strings.
type Reference struct {
	kind refKind
	id   int
	tag  string
}

// NoRef is the absent reference. Callers that accept it fall back to the
// latest question node in the session.
func NoRef() Reference {
	return Reference{kind: refAbsent}
}

// NumericRef references a node by internal id, scoped to a session.
func NumericRef(id int) Reference {
	return Reference{kind: refNumeric, id: id}
}

// ExternalRef references a node by its external reference tag.
func ExternalRef(tag string) Reference {
	return Reference{kind: refExternal, tag: tag}
}

// ParseReference classifies a raw textual reference. Empty input is absent;
// a base-10 integer string is a numeric id; anything else is an external tag.
func ParseReference(raw string) Reference {
	if raw == "" {
		return NoRef()
	}
	if id, err := strconv.Atoi(raw); err == nil && id >= 0 {
		return NumericRef(id)
	}
	return ExternalRef(raw)
}

// IsAbsent reports whether no reference was supplied.
func (r Reference) IsAbsent() bool { return r.kind == refAbsent }

// Numeric returns the internal id and whether the reference is numeric.
func (r Reference) Numeric() (int, bool) { return r.id, r.kind == refNumeric }

// External returns the external tag and whether the reference is external.
func (r Reference) External() (string, bool) { return r.tag, r.kind == refExternal }

// String renders the reference for logs and error messages.
func (r Reference) String() string {
	switch r.kind {
	case refNumeric:
		return strconv.Itoa(r.id)
	case refExternal:
		return r.tag
	}
	return "<absent>"
}
