package service

import (
	"errors"
	"fmt"
)

// ValidationError reports a document that fails its resource schema: a
// missing required field or a field of the wrong shape.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationErrorf(format string, a ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, a...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
