package schema

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// textJSON, numberJSON and groupJSON keep the serialized shapes of the three
// variants disjoint and their key order stable: id, type, label, required,
// then the type-specific members. Groups always serialize a children array,
// even when empty, so a round-trip reproduces the same value.
type textJSON struct {
	ID          string    `json:"id"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
}

type numberJSON struct {
	ID          string    `json:"id"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
}

type groupJSON struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	Children []*Field  `json:"children"`
}

// MarshalJSON dispatches on the closed variant set. An unknown type here means
// a node was constructed outside the schema package's constructors.
func (f *Field) MarshalJSON() ([]byte, error) {
	switch f.Type {
	case FieldTypeText:
		return json.Marshal(textJSON{
			ID:          f.ID,
			Type:        f.Type,
			Label:       f.Label,
			Required:    f.Required,
			Placeholder: f.Placeholder,
		})
	case FieldTypeNumber:
		return json.Marshal(numberJSON{
			ID:          f.ID,
			Type:        f.Type,
			Label:       f.Label,
			Required:    f.Required,
			Placeholder: f.Placeholder,
			Min:         f.Min,
			Max:         f.Max,
		})
	case FieldTypeGroup:
		children := f.Children
		if children == nil {
			children = []*Field{}
		}
		return json.Marshal(groupJSON{
			ID:       f.ID,
			Type:     f.Type,
			Label:    f.Label,
			Required: f.Required,
			Children: children,
		})
	default:
		return nil, fmt.Errorf("schema: cannot marshal unknown field type %q", f.Type)
	}
}

// Encode serializes the schema as pretty-printed JSON suitable for a
// round-trip back through Decode.
func Encode(s FormSchema) ([]byte, error) {
	if s.Fields == nil {
		s.Fields = []*Field{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode document: %w", err)
	}
	return data, nil
}

// Decode parses a JSON document of shape {"fields": [...]} into a FormSchema.
// Parse failures, a missing or non-array fields member, and structural
// invariant violations (unknown types, duplicate ids, children on a leaf) all
// reject the document; the caller keeps whatever schema it already holds.
func Decode(data []byte) (FormSchema, error) {
	var probe struct {
		Fields json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return FormSchema{}, fmt.Errorf("schema: parse document: %w", err)
	}

	raw := bytes.TrimSpace(probe.Fields)
	if len(raw) == 0 {
		return FormSchema{}, errors.New("schema: document is missing a fields array")
	}
	if raw[0] != '[' {
		return FormSchema{}, errors.New("schema: fields must be an array")
	}

	var fields []*Field
	if err := json.Unmarshal(raw, &fields); err != nil {
		return FormSchema{}, fmt.Errorf("schema: parse fields: %w", err)
	}
	if fields == nil {
		fields = []*Field{}
	}

	parsed := FormSchema{Fields: fields}
	if err := Validate(parsed); err != nil {
		return FormSchema{}, err
	}
	return parsed, nil
}
