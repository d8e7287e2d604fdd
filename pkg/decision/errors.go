package decision

import "fmt"

// ValidationError reports a missing or malformed payload field. It is
// client-fixable and maps to a 400 at the transport.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnsupportedEventTypeError reports an event type outside the closed set.
type UnsupportedEventTypeError struct {
	Type string
}

func (e UnsupportedEventTypeError) Error() string {
	return "unsupported event type: " + e.Type
}
