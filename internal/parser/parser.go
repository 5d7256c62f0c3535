// Package parser builds shape-core AST nodes from request notation.
//
// A request maps to an ObjectNode with the following structure:
//
//	{ "type": "request", "method": "POST", "uri": "/todo",
//	  "version": "HTTP/1.1",
//	  "headers": [{"name": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// "version" and "body" are omitted when the request has none.
package parser

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpreq/internal/notation"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from request notation.
type Parser struct {
	data []byte
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the request and returns an AST ObjectNode.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	req, err := notation.NewParser(p.data).ParseRequest()
	if err != nil {
		return nil, err
	}
	return RequestToNode(req), nil
}

// RequestToNode converts a parsed request to an AST ObjectNode.
func RequestToNode(req *notation.Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method, zeroPos),
		"uri":     ast.NewLiteralNode(req.URI, zeroPos),
		"headers": headersToNode(req.Headers),
	}

	if req.Version != "" {
		props["version"] = ast.NewLiteralNode(req.Version, zeroPos)
	}
	if req.Body != nil {
		props["body"] = ast.NewLiteralNode(string(req.Body), zeroPos)
	}

	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers []notation.Header) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"name":  ast.NewLiteralNode(h.Name, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToRequest converts an AST ObjectNode back to a request.
func NodeToRequest(node ast.SchemaNode) (*notation.Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if t := stringProp(props, "type"); t != "" && t != "request" {
		return nil, fmt.Errorf("unknown node type %q", t)
	}

	req := &notation.Request{
		Method:  stringProp(props, "method"),
		URI:     stringProp(props, "uri"),
		Version: stringProp(props, "version"),
	}

	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		req.Headers = hdrs
	}
	if body := stringProp(props, "body"); body != "" {
		req.Body = []byte(body)
	}

	return req, nil
}

func nodeToHeaders(node ast.SchemaNode) ([]notation.Header, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	if len(elements) == 0 {
		return nil, nil
	}

	headers := make([]notation.Header, 0, len(elements))
	for i, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			return nil, fmt.Errorf("header %d: expected ObjectNode, got %T", i, elem)
		}
		props := obj.Properties()
		headers = append(headers, notation.Header{
			Name:  stringProp(props, "name"),
			Value: stringProp(props, "value"),
		})
	}

	return headers, nil
}

// stringProp returns the string value of a literal property, or "".
func stringProp(props map[string]ast.SchemaNode, key string) string {
	v, ok := props[key]
	if !ok {
		return ""
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}
