package httpreq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/indigo-web/utils/strcomp"
	"github.com/shapestone/shape-httpreq/internal/notation"
)

// HTTPRequest builds a *net/http.Request from r.
//
// The version, when present, must be one of HTTP/0.9, HTTP/1.0, HTTP/1.1,
// HTTP/2.0 or HTTP/3.0; anything else yields a *VersionError. Headers are
// added in order and must have a name, else ErrMissingHeaderName. A Host
// header sets req.Host instead of req.Header, the way net/http represents
// it. The body is sent verbatim.
func (r *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	v, err := r.version()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URI, body)
	if err != nil {
		return nil, fmt.Errorf("httpreq: %w", err)
	}

	if v != Unknown {
		req.Proto = v.String()
		req.ProtoMajor, req.ProtoMinor = v.Numbers()
	}

	for i, h := range r.Headers {
		if h.Name == "" {
			return nil, fmt.Errorf("httpreq: header %d: %w", i, ErrMissingHeaderName)
		}
		if strcomp.EqualFold(h.Name, "Host") {
			req.Host = h.Value
			continue
		}
		req.Header.Add(h.Name, h.Value)
	}

	return req, nil
}

// DecodedBody returns the body with chunked transfer coding removed when the
// headers declare it, and the body as is otherwise.
func (r *Request) DecodedBody() ([]byte, error) {
	if !r.Headers.IsChunked() {
		return r.Body, nil
	}
	return notation.Dechunk(r.Body)
}
