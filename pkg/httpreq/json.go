package httpreq

import (
	"unicode/utf8"

	json "github.com/json-iterator/go"
)

var jsonAPI = json.ConfigCompatibleWithStandardLibrary

type jsonHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type jsonRequest struct {
	Method  string       `json:"method"`
	URI     string       `json:"uri"`
	Version string       `json:"version,omitempty"`
	Headers []jsonHeader `json:"headers"`
	Body    *string      `json:"body,omitempty"`
	Body64  []byte       `json:"body_base64,omitempty"`
}

// MarshalJSON encodes the request as
// {"method", "uri", "version", "headers": [{"name", "value"}], "body"}.
// Headers keep their order; version and body are omitted when absent.
// A body that is not valid UTF-8 is written base64-encoded as "body_base64"
// instead of "body".
func (r Request) MarshalJSON() ([]byte, error) {
	doc := jsonRequest{
		Method:  r.Method,
		URI:     r.URI,
		Version: r.Version,
		Headers: make([]jsonHeader, len(r.Headers)),
	}
	for i, h := range r.Headers {
		doc.Headers[i] = jsonHeader(h)
	}
	switch {
	case r.Body == nil:
	case utf8.Valid(r.Body):
		body := string(r.Body)
		doc.Body = &body
	default:
		doc.Body64 = r.Body
	}
	return jsonAPI.Marshal(doc)
}

// UnmarshalJSON decodes the document produced by MarshalJSON.
func (r *Request) UnmarshalJSON(data []byte) error {
	var doc jsonRequest
	if err := jsonAPI.Unmarshal(data, &doc); err != nil {
		return err
	}

	*r = Request{
		Method:  doc.Method,
		URI:     doc.URI,
		Version: doc.Version,
	}
	if len(doc.Headers) > 0 {
		r.Headers = make(Headers, len(doc.Headers))
		for i, h := range doc.Headers {
			r.Headers[i] = Header(h)
		}
	}
	switch {
	case doc.Body64 != nil:
		r.Body = doc.Body64
	case doc.Body != nil:
		r.Body = []byte(*doc.Body)
	}
	return nil
}
