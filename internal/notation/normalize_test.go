package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "crlf", input: "GET /\r\nHost: a\r\n", want: "GET /\nHost: a\n"},
		{name: "bare cr", input: "GET /\rHost: a", want: "GET /\nHost: a"},
		{name: "indented block", input: "  POST /todo\n\tHost: a  \n\n   {}", want: "POST /todo\nHost: a\n\n{}"},
		{name: "already clean", input: "GET /hello HTTP/1.1", want: "GET /hello HTTP/1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_ThenParse(t *testing.T) {
	input := `
		POST /todo HTTP/1.1
		Host: localhost:8000

		{ "note": "Buy milk" }`

	req, err := UnmarshalRequest([]byte(Normalize(input)[1:]))
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "HTTP/1.1", req.Version)
	assert.Equal(t, []Header{{Name: "Host", Value: "localhost:8000"}}, req.Headers)
	assert.Equal(t, `{ "note": "Buy milk" }`, string(req.Body))
}
