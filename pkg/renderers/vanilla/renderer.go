package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	gotemplate "github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the standalone HTML preview of a form schema: one
// control per leaf field, fieldsets per group, current values filled in and
// validation errors inline.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render flattens the tree into template-friendly rows and executes the
// embedded form template.
func (r *Renderer) Render(_ context.Context, form schema.FormSchema, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"title":      sanitizeText(options.Title),
		"rows":       buildRows(form.Fields, 0, options),
		"theme":      themeContext(options.Theme),
		"hasErrors":  len(options.Errors) > 0,
		"errorCount": len(options.Errors),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// row is one rendered line of the preview: either a control for a leaf field
// or a group heading. The tree is flattened depth-first with Depth recording
// the nesting level, so the template stays a single loop.
type row struct {
	Kind        string `json:"kind"` // "text", "number" or "group"
	ID          string `json:"id"`
	Label       string `json:"label"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
	Error       string `json:"error"`
	Min         string `json:"min"`
	Max         string `json:"max"`
	Depth       int    `json:"depth"`
}

func buildRows(fields []*schema.Field, depth int, options render.RenderOptions) []row {
	rows := make([]row, 0, len(fields))
	for _, field := range fields {
		r := row{
			Kind:        string(field.Type),
			ID:          field.ID,
			Label:       sanitizeText(field.Label),
			Required:    field.Required,
			Placeholder: sanitizeText(field.Placeholder),
			Depth:       depth,
		}
		if field.IsGroup() {
			rows = append(rows, r)
			rows = append(rows, buildRows(field.Children, depth+1, options)...)
			continue
		}

		r.Value = displayValue(options.Values[field.ID])
		r.Error = options.Errors[field.ID]
		if field.Min != nil {
			r.Min = formatNumber(*field.Min)
		}
		if field.Max != nil {
			r.Max = formatNumber(*field.Max)
		}
		rows = append(rows, r)
	}
	return rows
}

// displayValue renders a stored value back into input text. The NotANumber
// sentinel has no digits to show, so the control comes back empty and the
// inline error explains why.
func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatNumber(v)
	default:
		if v == formdata.NotANumber {
			return ""
		}
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
