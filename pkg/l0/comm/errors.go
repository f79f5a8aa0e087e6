package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLine indicates the line has no content after trimming.
	ErrEmptyLine = errors.New("empty line")
	// ErrMalformed indicates a known command carries an invalid argument.
	ErrMalformed = errors.New("malformed command")
	// ErrNotResponse indicates the line doesn't start with the sentinel.
	ErrNotResponse = errors.New("not a response")
	// ErrNoValue indicates a sentinel line without a parsable value.
	ErrNoValue = errors.New("no value")
)

// FieldError reports which argument of a command failed to parse.
type FieldError struct {
	Field string
	Text  string
	Err   error
}

// Error implements error.
func (e *FieldError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s %q", ErrMalformed, e.Field, e.Text)
	}
	return fmt.Sprintf("%v: %s %q: %v", ErrMalformed, e.Field, e.Text, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformed) true for all field errors.
func (e *FieldError) Is(target error) bool {
	return target == ErrMalformed
}

func malformed(field, text string, err error) error {
	return &FieldError{Field: field, Text: text, Err: err}
}
