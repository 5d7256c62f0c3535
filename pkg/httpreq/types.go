// Package httpreq parses a compact, line-oriented request notation into
// structured requests and emits them again.
//
// The notation looks like this:
//
//	POST /todo HTTP/1.1
//	Host: localhost:8000
//	Content-Type: application/json
//
//	{ "note": "Buy milk" }
//
// The first line holds the method, the uri and an optional version. Each
// following line is a header; its value may span several space-separated
// tokens, which are joined with single spaces. A blank line ends the headers
// and everything after it is the body, byte for byte. Only SP and LF separate
// tokens: CRLF input should go through Normalize first.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call creates its own parser with no shared mutable state.
//
// # APIs
//
//   - Unmarshal/UnmarshalRequest/UnmarshalString - parse notation into a Request
//   - Marshal/NewEncoder - write a Request back as notation
//   - Parse/ParseReader/Render - AST round trip via shape-core
//   - Lex - the classified token stream, for tools
//   - Request.HTTPRequest/EmitGo - emission onto net/http
package httpreq

import (
	"strconv"
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

// Request is a parsed request.
type Request struct {
	Method  string  // "GET", "POST", etc.
	URI     string  // request target, verbatim
	Version string  // "HTTP/1.1", or "" when the request line has none
	Headers Headers // ordered, repeatable headers
	Body    []byte  // raw body (nil if none)
}

// Header is a single name-value pair.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered, repeatable list of headers. Names keep the case
// they were written in; the grammar never folds or merges them.
type Headers []Header

// Get returns the first value for the given name (case-insensitive).
// Returns empty string if not found.
func (h Headers) Get(name string) string {
	for _, hdr := range h {
		if strcomp.EqualFold(hdr.Name, name) {
			return hdr.Value
		}
	}
	return ""
}

// Values returns all values for the given name (case-insensitive), in order.
func (h Headers) Values(name string) []string {
	var vals []string
	for _, hdr := range h {
		if strcomp.EqualFold(hdr.Name, name) {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// Add appends a header without replacing existing ones.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Header{Name: name, Value: value})
}

// Clone returns a copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// ContentLength returns the Content-Length value, or -1 if absent or invalid.
func (h Headers) ContentLength() int64 {
	v := h.Get("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// IsChunked returns true if Transfer-Encoding contains "chunked".
func (h Headers) IsChunked() bool {
	v := h.Get("Transfer-Encoding")
	return strings.Contains(strings.ToLower(v), "chunked")
}

// Marshaler is the interface implemented by types that can marshal
// themselves into request notation.
type Marshaler interface {
	MarshalNotation() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal
// a request notation description of themselves.
type Unmarshaler interface {
	UnmarshalNotation([]byte) error
}
