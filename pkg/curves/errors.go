package curves

import (
	"errors"
	"fmt"
)

// ErrDegenerateSampleCount is returned when fewer than two samples are
// requested from the curve evaluator.
var ErrDegenerateSampleCount = errors.New("curves: degenerate sample count, need at least 2 points")

// ValidationError reports a malformed parameter at the API boundary. It is
// surfaced synchronously to the immediate caller and never retried or
// suppressed inside this package.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("curves: invalid %s: %s", e.Field, e.Reason)
}

func validationErrorf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
