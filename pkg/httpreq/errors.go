package httpreq

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-httpreq/internal/notation"
)

// Parse error kinds. A *ParseError unwraps to exactly one of them.
var (
	ErrMissingMethod        = notation.ErrMissingMethod        // input holds no token at all
	ErrMissingURI           = notation.ErrMissingURI           // only a method was given
	ErrUnexpectedExtraToken = notation.ErrUnexpectedExtraToken // a fourth token on the request line
	ErrEmptyToken           = notation.ErrEmptyToken           // a header line that starts with a space
)

// Emission error kinds.
var (
	ErrInvalidVersion    = errors.New("invalid version")
	ErrBodyNotAllowed    = errors.New("body not allowed")
	ErrMissingHeaderName = errors.New("missing header name") // a header parsed from a bare ":"
)

// ParseError is returned when the notation cannot be parsed.
type ParseError struct {
	Kind     error  // one of the Err* parse kinds
	Token    string // offending token, if any
	Method   string // method parsed before the failure, if any
	URI      string // uri parsed before the failure, if any
	Line     int    // 1-indexed line number where the error occurred
	Position int    // byte offset in input
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("httpreq: parse error at line %d: %s %q", e.Line, e.Kind, e.Token)
	}
	return fmt.Sprintf("httpreq: parse error at line %d: %s", e.Line, e.Kind)
}

// Unwrap returns the error kind, so errors.Is(err, ErrMissingURI) works.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

// VersionError is returned by the emitters for a version outside the
// recognized set. The parser itself treats the version as an opaque token.
type VersionError struct {
	Version string
	Method  string
	URI     string
}

// Error implements the error interface.
func (e *VersionError) Error() string {
	return fmt.Sprintf("httpreq: %s %q in %q %q (valid: %s)", ErrInvalidVersion, e.Version, e.Method, e.URI, validVersions)
}

// Unwrap returns ErrInvalidVersion.
func (e *VersionError) Unwrap() error {
	return ErrInvalidVersion
}

// wrapParseError converts grammar errors into *ParseError.
func wrapParseError(err error) error {
	var se *notation.SyntaxError
	if !errors.As(err, &se) {
		return err
	}
	return &ParseError{
		Kind:     se.Kind,
		Token:    se.Token,
		Method:   se.Method,
		URI:      se.URI,
		Line:     se.Line,
		Position: se.Position,
	}
}
