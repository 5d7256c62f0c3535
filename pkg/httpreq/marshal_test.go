package httpreq

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want string
	}{
		{
			name: "request line only",
			req:  &Request{Method: "GET", URI: "/hello"},
			want: "GET /hello",
		},
		{
			name: "with version",
			req:  &Request{Method: "GET", URI: "/hello", Version: "HTTP/1.1"},
			want: "GET /hello HTTP/1.1",
		},
		{
			name: "headers",
			req: &Request{
				Method: "GET",
				URI:    "/hello",
				Headers: Headers{
					{Name: "Empty-Value", Value: ""},
					{Name: "Accept", Value: "application/json; application/xml"},
				},
			},
			want: "GET /hello\nEmpty-Value:\nAccept: application/json; application/xml",
		},
		{
			name: "empty header name",
			req:  &Request{Method: "GET", URI: "/", Headers: Headers{{Value: "x"}, {}}},
			want: "GET /\n: x\n:",
		},
		{
			name: "body without headers",
			req:  &Request{Method: "POST", URI: "/todo", Body: []byte("{}")},
			want: "POST /todo\n\n{}",
		},
		{
			name: "headers and body",
			req: &Request{
				Method:  "POST",
				URI:     "/todo",
				Version: "HTTP/1.0",
				Headers: Headers{{Name: "Host", Value: "localhost:8000"}},
				Body:    []byte("{ \"note\": \"Buy milk\" }"),
			},
			want: "POST /todo HTTP/1.0\nHost: localhost:8000\n\n{ \"note\": \"Buy milk\" }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.req)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestMarshal_Errors(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
	}{
		{name: "nil", v: nil},
		{name: "unsupported type", v: "GET /"},
		{name: "empty method", v: &Request{URI: "/"}},
		{name: "empty uri", v: &Request{Method: "GET"}},
		{name: "space in uri", v: &Request{Method: "GET", URI: "/a b"}},
		{name: "space in version", v: &Request{Method: "GET", URI: "/", Version: "HTTP 1"}},
		{name: "space in header name", v: &Request{Method: "GET", URI: "/", Headers: Headers{{Name: "A B", Value: "x"}}}},
		{name: "newline in header value", v: &Request{Method: "GET", URI: "/", Headers: Headers{{Name: "A", Value: "x\ny"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Marshal(tt.v); err == nil {
				t.Error("expected error")
			}
		})
	}
}

type fixedNotation struct{}

func (fixedNotation) MarshalNotation() ([]byte, error) {
	return []byte("GET /fixed"), nil
}

func TestMarshal_Marshaler(t *testing.T) {
	got, err := Marshal(fixedNotation{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != "GET /fixed" {
		t.Errorf("Marshal() = %q, want GET /fixed", got)
	}
}

func TestMarshalString(t *testing.T) {
	s, err := MarshalString(&Request{Method: "HEAD", URI: "*"})
	if err != nil {
		t.Fatalf("MarshalString() error = %v", err)
	}
	if s != "HEAD *" {
		t.Errorf("MarshalString() = %q, want %q", s, "HEAD *")
	}
}

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	if err := enc.Encode(&Request{Method: "GET", URI: "/a", Headers: Headers{{Name: "X", Value: "1"}}}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.String() != "GET /a\nX: 1" {
		t.Errorf("Encode() wrote %q", buf.String())
	}

	if err := enc.Encode(&Request{}); err == nil {
		t.Error("expected error for empty request")
	}
	if !strings.HasPrefix(buf.String(), "GET /a") || buf.Len() != len("GET /a\nX: 1") {
		t.Errorf("failed Encode must not write, buffer = %q", buf.String())
	}
}
