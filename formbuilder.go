package formbuilder

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// Builder is the stateful editing session; aliased at the root package so
// most callers only import one path.
type Builder = builder.Builder

// Field is one node of the schema tree.
type Field = schema.Field

// FormSchema is the ordered top-level field sequence.
type FormSchema = schema.FormSchema

// Patch describes a partial field update.
type Patch = schema.Patch

// ValueMap holds captured input keyed by field id.
type ValueMap = formdata.ValueMap

// RenderOptions carries per-render values, errors and theming.
type RenderOptions = render.RenderOptions

// Renderer turns a schema plus options into output bytes.
type Renderer = render.Renderer

// Field type discriminants.
const (
	FieldTypeText   = schema.FieldTypeText
	FieldTypeNumber = schema.FieldTypeNumber
	FieldTypeGroup  = schema.FieldTypeGroup
)

// Move directions.
const (
	DirectionUp   = tree.DirectionUp
	DirectionDown = tree.DirectionDown
)

// New constructs a Builder, mirroring builder.New.
func New(options ...builder.Option) (*Builder, error) {
	return builder.New(options...)
}

// WithSchema seeds a Builder with an existing schema.
func WithSchema(s FormSchema) builder.Option {
	return builder.WithSchema(s)
}

// WithIDGenerator overrides the id mint, typically for deterministic tests.
func WithIDGenerator(generate func() string) builder.Option {
	return builder.WithIDGenerator(generate)
}

// GenerateHTML renders a schema to a standalone HTML preview using the
// default renderer. It is the simplest entry point for callers that just
// want markup.
func GenerateHTML(ctx context.Context, form FormSchema, options RenderOptions) ([]byte, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form, options)
}

// FromOpenAPI loads an OpenAPI 3 document from disk and seeds a schema from
// the request body of the named operation.
func FromOpenAPI(ctx context.Context, path, operationID string, options ...openapi.Option) (FormSchema, error) {
	doc, err := openapi.LoadFile(ctx, path)
	if err != nil {
		return FormSchema{}, err
	}
	return openapi.Convert(doc, operationID, options...)
}

// EmbeddedTemplates exposes the default renderer's template bundle so hosts
// can serve or override individual files.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
