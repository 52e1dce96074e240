// Package render turns a resource View into a byte representation. The html
// renderer produces a preview page (index table plus edit form) through pongo2
// templates; the json renderer emits the view for tooling.
package render

import (
	"context"
)

// Renderer converts a View into bytes.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View) ([]byte, error)
}
