package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Option customises the conversion.
type Option func(*config)

type config struct {
	labeler   func(string) string
	mediaType string
}

// WithLabeler overrides how property names become field labels when the
// schema carries no title.
func WithLabeler(labeler func(string) string) Option {
	return func(cfg *config) {
		if labeler != nil {
			cfg.labeler = labeler
		}
	}
}

// WithMediaType restricts conversion to a single request media type instead
// of the default preference order (JSON, form-urlencoded, multipart, any).
func WithMediaType(mediaType string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(mediaType)
		if trimmed != "" {
			cfg.mediaType = trimmed
		}
	}
}

// LoadFile parses an OpenAPI document from disk.
func LoadFile(ctx context.Context, path string) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// LoadData parses an OpenAPI document from a byte payload.
func LoadData(ctx context.Context, data []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// Convert seeds a form schema from the request body of the named operation.
// Object properties become groups, strings become text fields, integers and
// numbers become number fields with min/max carried over. Shapes the builder
// cannot edit (booleans, arrays, unions) degrade to text fields so no
// property silently disappears. Ids are the dotted property paths, which are
// unique within one request body by construction.
func Convert(doc *openapi3.T, operationID string, options ...Option) (schema.FormSchema, error) {
	cfg := &config{labeler: DefaultLabeler}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if doc == nil {
		return schema.FormSchema{}, errors.New("openapi: document is required")
	}
	op := findOperation(doc, operationID)
	if op == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	body := requestSchema(op, cfg.mediaType)
	if body == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi: operation %q has no request body schema", operationID)
	}
	if !typeIs(body, "object") && len(schemaProperties(body)) == 0 {
		return schema.FormSchema{}, fmt.Errorf("openapi: operation %q request body is not an object", operationID)
	}

	fields := fieldsFromObject(body, "", cfg)
	parsed := schema.FormSchema{Fields: fields}
	if err := schema.Validate(parsed); err != nil {
		return schema.FormSchema{}, err
	}
	return parsed, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete,
			item.Patch, item.Head, item.Options, item.Trace,
		} {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(op *openapi3.Operation, mediaType string) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	if len(content) == 0 {
		return nil
	}

	preference := []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}
	if mediaType != "" {
		preference = []string{mediaType}
	}
	for _, candidate := range preference {
		if mt, ok := content[candidate]; ok {
			return schemaValue(mt.Schema)
		}
	}
	if mediaType != "" {
		return nil
	}
	for _, mt := range content {
		return schemaValue(mt.Schema)
	}
	return nil
}

func fieldsFromObject(src *openapi3.Schema, prefix string, cfg *config) []*schema.Field {
	properties := schemaProperties(src)

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	requiredSet := make(map[string]struct{}, len(src.Required))
	for _, name := range src.Required {
		requiredSet[name] = struct{}{}
	}

	fields := make([]*schema.Field, 0, len(names))
	for _, name := range names {
		property := properties[name]
		if property == nil {
			continue
		}
		_, required := requiredSet[name]
		fields = append(fields, fieldFromSchema(property, joinPath(prefix, name), name, required, cfg))
	}
	return fields
}

func fieldFromSchema(src *openapi3.Schema, id, name string, required bool, cfg *config) *schema.Field {
	label := strings.TrimSpace(src.Title)
	if label == "" {
		label = cfg.labeler(name)
	}

	switch {
	case typeIs(src, "object") || len(schemaProperties(src)) > 0:
		group := schema.MustNew(schema.FieldTypeGroup, id)
		group.Label = label
		group.Required = required
		group.Children = fieldsFromObject(src, id, cfg)
		return group
	case typeIs(src, "integer") || typeIs(src, "number"):
		number := schema.MustNew(schema.FieldTypeNumber, id)
		number.Label = label
		number.Required = required
		number.Placeholder = examplePlaceholder(src)
		if src.Min != nil {
			value := *src.Min
			number.Min = &value
		}
		if src.Max != nil {
			value := *src.Max
			number.Max = &value
		}
		return number
	default:
		// Strings, plus every shape the builder has no variant for.
		text := schema.MustNew(schema.FieldTypeText, id)
		text.Label = label
		text.Required = required
		text.Placeholder = examplePlaceholder(src)
		return text
	}
}

func schemaValue(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil {
		return nil
	}
	return ref.Value
}

func schemaProperties(src *openapi3.Schema) map[string]*openapi3.Schema {
	if src == nil || len(src.Properties) == 0 {
		return nil
	}
	out := make(map[string]*openapi3.Schema, len(src.Properties))
	for name, ref := range src.Properties {
		if value := schemaValue(ref); value != nil {
			out[name] = value
		}
	}
	return out
}

func typeIs(src *openapi3.Schema, want string) bool {
	if src == nil || src.Type == nil {
		return false
	}
	return src.Type.Is(want)
}

func examplePlaceholder(src *openapi3.Schema) string {
	switch example := src.Example.(type) {
	case string:
		return example
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%v", example))
	default:
		return ""
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
