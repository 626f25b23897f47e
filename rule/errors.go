package rule

import (
	"errors"
	"fmt"
)

// Error reports a validator failure: the condition that was not met and the
// raw value that failed it. It aborts the pipeline that produced it, so a
// wrapper constructor receiving an Error must not build an instance.
type Error struct {
	// Value is the offending raw value, as seen by the failing validator
	// (normalizers earlier in the pipeline have already been applied).
	Value any

	// Message describes the failing condition in human-readable form.
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid value %v: %s", e.Value, e.Message)
}

// IsValidationError reports whether err (or anything it wraps) is a rule
// validation failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var ruleErr *Error
	return errors.As(err, &ruleErr)
}

// AsValidationError extracts the rule validation failure from err, or nil if
// err does not carry one.
func AsValidationError(err error) *Error {
	if err == nil {
		return nil
	}

	var ruleErr *Error
	if errors.As(err, &ruleErr) {
		return ruleErr
	}

	return nil
}
