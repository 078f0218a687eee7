package availability

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no availability document matched.
var ErrNotFound = errors.New("availability not found")

// ValidationError reports a rejected availability payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
