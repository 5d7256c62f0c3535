package notation

import (
	"fmt"
	"io"

	"github.com/indigo-web/chunkedbody"
)

// Dechunk decodes a chunked transfer-encoded body held entirely in memory.
//
// Format: hex-size CRLF data CRLF ... 0 CRLF [trailers] CRLF
// Bytes after the terminating chunk are ignored.
func Dechunk(data []byte) ([]byte, error) {
	parser := chunkedbody.NewParser(chunkedbody.DefaultSettings())

	var result []byte
	for len(data) > 0 {
		chunk, extra, err := parser.Parse(data, false)
		switch err {
		case nil:
		case io.EOF:
			return append(result, chunk...), nil
		default:
			return nil, fmt.Errorf("httpreq: chunked encoding: %w", err)
		}

		result = append(result, chunk...)
		data = extra
	}

	return nil, fmt.Errorf("httpreq: chunked encoding: %w", io.ErrUnexpectedEOF)
}
