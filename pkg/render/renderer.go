package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Renderer converts a form schema plus its live state into a byte
// representation, HTML for the default vanilla renderer.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form schema.FormSchema, options RenderOptions) ([]byte, error)
}
