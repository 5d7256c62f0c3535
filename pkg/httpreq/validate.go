package httpreq

import (
	"bytes"
	"io"

	"github.com/indigo-web/utils/uf"
	"github.com/shapestone/shape-httpreq/internal/notation"
)

// Validate checks that input is well-formed request notation.
// Returns nil if valid, or a *ParseError wrapping one of the Err* kinds.
func Validate(input string) error {
	return wrapParseError(notation.Validate(uf.S2B(input)))
}

// ValidateReader reads all data from r and validates it as request notation.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return wrapParseError(notation.Validate(data))
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
