package engine

import "fmt"

// ValidationError reports malformed engine input (bad panel size, negative
// quantity, missing identifying fields). Callers decide whether to skip the
// offending record or abort.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
