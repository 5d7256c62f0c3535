package httpreq

import (
	"fmt"
	"strings"
)

// appendRequest serializes a Request to notation:
// "METHOD URI[ VERSION]", one "\nName: value" per header, then "\n\n" and
// the body if there is one.
func appendRequest(buf []byte, req *Request) ([]byte, error) {
	if err := checkToken("method", req.Method, false); err != nil {
		return buf, err
	}
	if err := checkToken("uri", req.URI, false); err != nil {
		return buf, err
	}
	if err := checkToken("version", req.Version, true); err != nil {
		return buf, err
	}

	buf = append(buf, req.Method...)
	buf = append(buf, ' ')
	buf = append(buf, req.URI...)
	if req.Version != "" {
		buf = append(buf, ' ')
		buf = append(buf, req.Version...)
	}

	for _, h := range req.Headers {
		// An empty name is written as a bare ":" and parses back the same.
		if err := checkToken("header name", h.Name, true); err != nil {
			return buf, err
		}
		if strings.IndexByte(h.Value, '\n') >= 0 {
			return buf, fmt.Errorf("httpreq: Marshal: header %q value contains a line feed", h.Name)
		}
		buf = appendHeader(buf, h)
	}

	if len(req.Body) > 0 {
		buf = append(buf, '\n', '\n')
		buf = append(buf, req.Body...)
	}

	return buf, nil
}

// appendHeader appends "\nName: value", or "\nName:" for an empty value.
func appendHeader(buf []byte, h Header) []byte {
	buf = append(buf, '\n')
	buf = append(buf, h.Name...)
	buf = append(buf, ':')
	if h.Value != "" {
		buf = append(buf, ' ')
		buf = append(buf, h.Value...)
	}
	return buf
}

// checkToken reports an error unless s is a single notation token.
func checkToken(what, s string, optional bool) error {
	if s == "" {
		if optional {
			return nil
		}
		return fmt.Errorf("httpreq: Marshal: %s is empty", what)
	}
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\n' {
			return fmt.Errorf("httpreq: Marshal: %s %q contains a separator", what, s)
		}
	}
	return nil
}
