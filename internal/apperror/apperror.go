// Package apperror defines the error kinds raised by the address book and maps them to user messages.
package apperror

import (
	"errors"
	"fmt"
)

// Error kinds a command can fail with.
var (
	ErrValidation      = errors.New("validation failed")
	ErrMissingArgument = errors.New("missing argument")
	ErrLookup          = errors.New("lookup failed")
)

const (
	msgValidation      = "Give me name and phone please."
	msgLookup          = "Something went wrong... Please try again"
	msgMissingArgument = "Enter the argument for the command"
)

var userMessages = []struct {
	kind error
	msg  string
}{
	{ErrValidation, msgValidation},
	{ErrLookup, msgLookup},
	{ErrMissingArgument, msgMissingArgument},
}

// ValidationError reports a field value that failed its constructor rules.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the message shown for the invalid value.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidation creates a ValidationError for field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// MissingArgument wraps ErrMissingArgument with the name of the absent argument.
func MissingArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}

// Message converts an error returned by a command into the text shown to the user.
func Message(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.kind) {
			return m.msg
		}
	}
	return msgLookup
}
