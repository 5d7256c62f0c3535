package httpreq

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpreq/internal/parser"
)

// Parse parses request notation into an AST.
//
// Returns an ast.ObjectNode shaped like:
//
//	{ "type": "request", "method": "GET", "uri": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"name": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// "version" and "body" are present only when the request has them.
func Parse(input string) (ast.SchemaNode, error) {
	node, err := parser.NewParser([]byte(input)).Parse()
	if err != nil {
		return nil, wrapParseError(err)
	}
	return node, nil
}

// ParseReader reads all data from r and parses it into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	node, err := parser.NewParser(data).Parse()
	if err != nil {
		return nil, wrapParseError(err)
	}
	return node, nil
}
