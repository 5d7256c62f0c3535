package httpreq

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (from Parse) back to request notation.
func Render(node ast.SchemaNode) ([]byte, error) {
	req, err := NodeToRequest(node)
	if err != nil {
		return nil, fmt.Errorf("httpreq: Render: %w", err)
	}
	return Marshal(req)
}
