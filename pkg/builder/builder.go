package builder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// Option customises the builder configuration.
type Option func(*Builder)

// WithIDGenerator overrides how ids for new fields are minted. The generator
// must be collision-resistant; the default uses random UUIDs.
func WithIDGenerator(generate func() string) Option {
	return func(b *Builder) {
		if generate != nil {
			b.newID = generate
		}
	}
}

// WithSchema seeds the builder with an initial schema. The schema is
// validated by New; the value map starts fresh from its leaves.
func WithSchema(s schema.FormSchema) Option {
	return func(b *Builder) {
		b.initial = &s
	}
}

// Builder owns the live editing state of one form: the schema tree, the flat
// value map and the latest validation errors. It is the single writer; every
// edit runs to completion on the calling goroutine and swaps the tree
// reference atomically from the caller's point of view. Embedders that
// dispatch edits concurrently must serialize them outside.
type Builder struct {
	schema  schema.FormSchema
	values  formdata.ValueMap
	errors  map[string]string
	newID   func() string
	initial *schema.FormSchema
}

// New constructs a Builder, starting from an empty schema unless WithSchema
// supplied one.
func New(options ...Option) (*Builder, error) {
	b := &Builder{
		schema: schema.FormSchema{Fields: []*schema.Field{}},
		newID:  uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if b.initial != nil {
		if err := b.ReplaceSchema(*b.initial); err != nil {
			return nil, fmt.Errorf("builder: initial schema: %w", err)
		}
		b.initial = nil
	} else {
		b.values = formdata.Initialize(b.schema.Fields)
	}
	return b, nil
}

// AddField creates a field of the given type with zero-value defaults and
// appends it under parentID (root when empty), returning the new field's id.
// A stale or non-group parentID is a benign no-op reported as an empty id.
// An unknown field type is an error: the type set is closed.
func (b *Builder) AddField(fieldType schema.FieldType, parentID string) (string, error) {
	id := string(fieldType) + "-" + b.newID()
	node, err := schema.New(fieldType, id)
	if err != nil {
		return "", fmt.Errorf("builder: %w", err)
	}

	next := tree.Add(b.schema.Fields, parentID, node)
	if tree.FindByID(next, id) == nil {
		return "", nil
	}
	b.schema.Fields = next
	b.sync()
	return id, nil
}

// UpdateField merges the patch into the field identified by id. Unknown ids
// are a benign no-op.
func (b *Builder) UpdateField(id string, patch schema.Patch) {
	b.schema.Fields = tree.Update(b.schema.Fields, id, patch)
	b.sync()
}

// DeleteField removes the field identified by id, subtree included. The next
// merge drops the values of every removed leaf.
func (b *Builder) DeleteField(id string) {
	b.schema.Fields = tree.Delete(b.schema.Fields, id)
	b.sync()
}

// MoveField swaps the field with its adjacent sibling in the given direction.
// Boundary moves and unknown ids are benign no-ops.
func (b *Builder) MoveField(id string, direction tree.Direction) {
	b.schema.Fields = tree.Move(b.schema.Fields, id, direction)
	b.sync()
}

// SetValue records raw input for the leaf field identified by id, coercing
// number input to a float or the NotANumber sentinel. Unknown or group ids
// are ignored, keeping the map free of entries no field owns.
func (b *Builder) SetValue(id string, raw string) {
	field := tree.FindByID(b.schema.Fields, id)
	if field == nil || !field.IsLeaf() {
		return
	}
	b.values[id] = formdata.Coerce(field, raw)
}

// Validate checks the current values against the current schema, stores the
// result and returns it. Validation failures are data, not errors; editing
// continues regardless.
func (b *Builder) Validate() map[string]string {
	b.errors = formdata.Validate(b.values, b.schema.Fields)
	return cloneErrors(b.errors)
}

// Schema returns the current tree. Callers must treat the nodes as
// read-only; edits go through the builder.
func (b *Builder) Schema() schema.FormSchema {
	return b.schema
}

// Values returns a copy of the current value map.
func (b *Builder) Values() formdata.ValueMap {
	return b.values.Clone()
}

// Errors returns a copy of the error map produced by the last Validate call.
func (b *Builder) Errors() map[string]string {
	return cloneErrors(b.errors)
}

// ReplaceSchema substitutes the whole tree after checking its structural
// invariants. The value map is created fresh: replacement ids cannot be
// assumed to line up with the old tree's, so nothing is carried over.
func (b *Builder) ReplaceSchema(s schema.FormSchema) error {
	if err := schema.Validate(s); err != nil {
		return err
	}
	b.schema.Fields = tree.Replace(s.Fields)
	b.values = formdata.Initialize(b.schema.Fields)
	b.errors = nil
	return nil
}

// ImportJSON parses and installs a schema document. A nil return is the
// success signal; on failure the error carries the diagnostic and the
// in-memory tree, values and errors are left exactly as they were.
func (b *Builder) ImportJSON(data []byte) error {
	parsed, err := schema.Decode(data)
	if err != nil {
		return err
	}
	return b.ReplaceSchema(parsed)
}

// ExportJSON serializes the current schema as pretty-printed JSON that
// round-trips through ImportJSON.
func (b *Builder) ExportJSON() ([]byte, error) {
	return schema.Encode(b.schema)
}

// ImportYAML is ImportJSON's YAML counterpart.
func (b *Builder) ImportYAML(data []byte) error {
	parsed, err := schema.DecodeYAML(data)
	if err != nil {
		return err
	}
	return b.ReplaceSchema(parsed)
}

// ExportYAML serializes the current schema as YAML.
func (b *Builder) ExportYAML() ([]byte, error) {
	return schema.EncodeYAML(b.schema)
}

// sync re-derives the value map after a structural edit, preserving entries
// whose ids survived.
func (b *Builder) sync() {
	b.values = formdata.Merge(b.values, b.schema)
}

func cloneErrors(errs map[string]string) map[string]string {
	out := make(map[string]string, len(errs))
	for id, message := range errs {
		out[id] = message
	}
	return out
}
