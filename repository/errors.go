package repository

import (
	"errors"
	"fmt"
)

// ValidationError reports a business-rule violation: bad input shape,
// out-of-range rating, insufficient stock, and so on. It is distinct from a
// not-found outcome, which lookups signal with a nil result and no error, so
// callers can map the two to different response codes.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
