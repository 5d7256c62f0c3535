package notation

import (
	"errors"
	"fmt"
)

// Error kinds. Every parse failure wraps exactly one of these.
var (
	ErrMissingMethod        = errors.New("missing method")
	ErrMissingURI           = errors.New("missing uri")
	ErrUnexpectedExtraToken = errors.New("unexpected extra request line item")
	ErrEmptyToken           = errors.New("empty token")
)

// SyntaxError describes where and why the grammar stopped.
type SyntaxError struct {
	Kind     error  // one of the Err* kinds above
	Token    string // offending token, if any
	Method   string // method parsed so far
	URI      string // uri parsed so far
	Line     int    // 1-indexed line of the offending position
	Position int    // byte offset of the offending position
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("line %d: %s %q", e.Line, e.Kind, e.Token)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
}

// Unwrap returns the error kind.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}
