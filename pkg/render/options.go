package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/formdata"
)

// RenderOptions carries per-render state so renderers never reach back into
// the builder: the current values and validation errors keyed by field id,
// plus optional presentation configuration.
type RenderOptions struct {
	// Title heads the rendered preview page. Empty means no heading.
	Title string

	// Values pre-populates rendered controls, keyed by leaf field id. This is
	// the builder's flat value map, passed through untouched.
	Values formdata.ValueMap

	// Errors surfaces validation feedback keyed by field id, rendered inline
	// next to the offending control.
	Errors map[string]string

	// Theme optionally supplies resolved go-theme renderer configuration;
	// renderers pick up stylesheet URLs and CSS variables from it.
	Theme *theme.RendererConfig
}
