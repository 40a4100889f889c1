package bitcoin

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedJSON marks a line that is not a single well-formed JSON value.
	ErrMalformedJSON = errors.New("malformed json")
	// ErrMissingField marks a record that lacks a required field.
	ErrMissingField = errors.New("missing required field")
)

// ParseError reports a malformed input line. Parsing never skips a bad line.
// Source names the input and is empty when the reader has no name.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s: line %d: %v", e.Source, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func missingField(name string) error {
	return fmt.Errorf("%w %q", ErrMissingField, name)
}
