package types

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected operation: a required field was
// missing or a value was outside its allowed set. The operation performs
// no partial mutation.
type ValidationError struct {
	Field  string // the offending field, e.g. "title"
	Reason string // human-readable explanation
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation that referenced an unknown record.
type NotFoundError struct {
	Resource string // e.g. "task", "user", "notification"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
