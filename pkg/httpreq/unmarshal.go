package httpreq

import (
	"fmt"

	"github.com/indigo-web/utils/uf"
	"github.com/shapestone/shape-httpreq/internal/notation"
)

// Unmarshal parses request notation and stores the result in v.
//
// v must be a *Request or implement Unmarshaler. On error v is left untouched.
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("httpreq: Unmarshal(nil)")
	}

	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalNotation(data)
	}

	target, ok := v.(*Request)
	if !ok {
		return fmt.Errorf("httpreq: Unmarshal unsupported type %T (expected *Request)", v)
	}

	req, err := UnmarshalRequest(data)
	if err != nil {
		return err
	}
	*target = *req
	return nil
}

// UnmarshalRequest parses request notation.
// Errors are *ParseError values wrapping one of the Err* kinds.
func UnmarshalRequest(data []byte) (*Request, error) {
	req, err := notation.UnmarshalRequest(data)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return fromInternal(req), nil
}

// UnmarshalString parses request notation held in a string without copying it.
func UnmarshalString(input string) (*Request, error) {
	return UnmarshalRequest(uf.S2B(input))
}

// Normalize rewrites CRLF and bare CR as LF and trims spaces and tabs around
// every line, including body lines. The parser never does this on its own.
func Normalize(input string) string {
	return notation.Normalize(input)
}

func fromInternal(req *notation.Request) *Request {
	return &Request{
		Method:  req.Method,
		URI:     req.URI,
		Version: req.Version,
		Headers: convertHeaders(req.Headers),
		Body:    req.Body,
	}
}

func toInternal(req *Request) *notation.Request {
	out := &notation.Request{
		Method:  req.Method,
		URI:     req.URI,
		Version: req.Version,
		Body:    req.Body,
	}
	if len(req.Headers) > 0 {
		out.Headers = make([]notation.Header, len(req.Headers))
		for i, h := range req.Headers {
			out.Headers[i] = notation.Header{Name: h.Name, Value: h.Value}
		}
	}
	return out
}

func convertHeaders(internal []notation.Header) Headers {
	if len(internal) == 0 {
		return nil
	}
	headers := make(Headers, len(internal))
	for i, h := range internal {
		headers[i] = Header{Name: h.Name, Value: h.Value}
	}
	return headers
}
