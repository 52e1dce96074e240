// Package template wraps a pongo2 template set behind the small contract the
// renderers depend on.
package template

import (
	"io"
)

// TemplateRenderer is the seam renderers rely on to execute templates.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data map[string]any, out ...io.Writer) (string, error)
	GlobalContext(data map[string]any) error
}
