package council

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every InvalidInputError via errors.Is
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a question or sequence length the council refuses
type InvalidInputError struct {
	Field  string // "question" or "n"
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) true for any InvalidInputError
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, format string, args ...interface{}) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
