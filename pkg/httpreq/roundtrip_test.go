package httpreq

import (
	"fmt"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip_Notation tests that Marshal(Unmarshal(data)) == data.
func TestRoundTrip_Notation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "simple GET", data: "GET /hello"},
		{name: "with version", data: "GET /hello HTTP/1.1"},
		{name: "headers", data: "GET /search?q=test HTTP/1.1\nHost: example.com\nAccept: text/html\nX-Empty:"},
		{name: "body", data: "POST /todo\nHost: localhost:8000\n\n{ \"note\": \"Buy milk\" }\n"},
		{name: "body only", data: "PUT /blob\n\n\n\nleading blank lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := UnmarshalRequest([]byte(tt.data))
			require.NoError(t, err)

			out, err := Marshal(req)
			require.NoError(t, err)
			assert.Equal(t, tt.data, string(out))
		})
	}
}

// TestRoundTrip_HeaderOrder checks that duplicate and interleaved header
// names survive emission and re-parse in declaration order.
func TestRoundTrip_HeaderOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		req := &Request{Method: "GET", URI: "/" + uniuri.NewLen(8)}
		dup := uniuri.NewLen(12)
		for j := 0; j < 10; j++ {
			name := uniuri.NewLen(16)
			if j%3 == 0 {
				name = dup
			}
			req.Headers.Add(name, fmt.Sprintf("%s %d", uniuri.New(), j))
		}

		data, err := Marshal(req)
		require.NoError(t, err)

		got, err := UnmarshalRequest(data)
		require.NoError(t, err)
		assert.Equal(t, req.Headers, got.Headers)
		assert.Len(t, got.Headers.Values(dup), 4)
		assert.Nil(t, got.Body)
	}
}

func TestRoundTrip_ValueSpacing(t *testing.T) {
	req := &Request{Method: "GET", URI: "/", Headers: Headers{
		{Name: "A", Value: "x   y"},
		{Name: "B", Value: " x "},
		{Name: "C", Value: "   "},
	}}

	data, err := Marshal(req)
	require.NoError(t, err)

	got, err := UnmarshalRequest(data)
	require.NoError(t, err)
	assert.Equal(t, Headers{
		{Name: "A", Value: "x y"},
		{Name: "B", Value: "x"},
		{Name: "C", Value: ""},
	}, got.Headers)
}

func TestRoundTrip_EmptyHeaderName(t *testing.T) {
	req, err := UnmarshalString("GET /\n: v\nB: w")
	require.NoError(t, err)

	data, err := Marshal(req)
	require.NoError(t, err)

	got, err := UnmarshalRequest(data)
	require.NoError(t, err)
	assert.Equal(t, req.Headers, got.Headers)
}
