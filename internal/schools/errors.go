package schools

import "errors"

// ErrNotFound reports a lookup for a school that does not exist.
var ErrNotFound = errors.New("school not found")

// ValidationError reports a client-caused input problem. The reason is safe
// to echo back to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
