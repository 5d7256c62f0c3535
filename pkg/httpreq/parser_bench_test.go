package httpreq

import (
	"context"
	"testing"
)

var simpleRequest = []byte("GET /api/users HTTP/1.1\nHost: example.com\nAccept: application/json\nUser-Agent: shape-httpreq/1.0")

var requestWithBody = []byte("POST /api/users HTTP/1.1\nHost: example.com\nContent-Type: application/json\n\n{\"name\":\"John Doe\",\"email\":\"john@example.com\",\"age\":30}")

func BenchmarkUnmarshal_SimpleRequest(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := UnmarshalRequest(simpleRequest)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshal_RequestWithBody(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := UnmarshalRequest(requestWithBody)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal_RequestWithBody(b *testing.B) {
	req, err := UnmarshalRequest(requestWithBody)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHTTPRequest(b *testing.B) {
	req, err := UnmarshalRequest(requestWithBody)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := req.HTTPRequest(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
