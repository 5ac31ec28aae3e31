package schema

import "fmt"

// FieldType discriminates the closed set of node kinds a form schema can
// contain. The set is fixed: leaf inputs (text, number) and nesting groups.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeGroup  FieldType = "group"
)

// Valid reports whether the type is one of the three known variants.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeGroup:
		return true
	default:
		return false
	}
}

// Field is one node of a form schema. The struct is enum-tagged: Type decides
// which members are meaningful. Placeholder applies to both leaf kinds, Min
// and Max only to number fields, Children only to groups. Leaf fields never
// carry Children.
//
// Nodes are handled by pointer throughout the module because tree operations
// preserve structural sharing: a subtree that an edit did not touch is the
// same *Field the previous tree held, not an equal copy. Treat reachable
// nodes as immutable; all mutation goes through the tree engine, which copies
// along the edit path only.
type Field struct {
	ID          string    `json:"id" yaml:"id"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Required    bool      `json:"required" yaml:"required"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Min         *float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Children    []*Field  `json:"children,omitempty" yaml:"children,omitempty"`
}

// FormSchema is the full tree of field definitions. The root is an implicit
// unlabeled group: Fields is its ordered children.
type FormSchema struct {
	Fields []*Field `json:"fields" yaml:"fields"`
}

// New constructs a field of the given type with zero-value defaults (empty
// label and placeholder, required false, groups start with an empty child
// list). Unknown types are a programmer error: the type set is closed and the
// public editing surface only ever passes the three constants.
func New(fieldType FieldType, id string) (*Field, error) {
	if id == "" {
		return nil, fmt.Errorf("schema: field id is required")
	}
	switch fieldType {
	case FieldTypeText, FieldTypeNumber:
		return &Field{ID: id, Type: fieldType}, nil
	case FieldTypeGroup:
		return &Field{ID: id, Type: fieldType, Children: []*Field{}}, nil
	default:
		return nil, fmt.Errorf("schema: unknown field type %q", fieldType)
	}
}

// MustNew panics when New fails. Useful for tests and fixtures.
func MustNew(fieldType FieldType, id string) *Field {
	field, err := New(fieldType, id)
	if err != nil {
		panic(err)
	}
	return field
}

// IsGroup reports whether the node nests children.
func (f *Field) IsGroup() bool {
	return f != nil && f.Type == FieldTypeGroup
}

// IsLeaf reports whether the node holds a scalar value.
func (f *Field) IsLeaf() bool {
	return f != nil && (f.Type == FieldTypeText || f.Type == FieldTypeNumber)
}

// WithChildren returns a shallow copy of the node carrying the supplied child
// sequence. The receiver is left untouched; every other member is shared.
func (f *Field) WithChildren(children []*Field) *Field {
	clone := *f
	clone.Children = children
	return &clone
}

// Validate walks the tree checking the structural invariants the engines
// assume: every node has a non-empty id unique across the whole tree, a known
// type, and only groups carry children.
func Validate(s FormSchema) error {
	seen := make(map[string]struct{})
	return validateFields(s.Fields, seen)
}

func validateFields(fields []*Field, seen map[string]struct{}) error {
	for _, field := range fields {
		if field == nil {
			return fmt.Errorf("schema: nil field node")
		}
		if field.ID == "" {
			return fmt.Errorf("schema: field id is required")
		}
		if !field.Type.Valid() {
			return fmt.Errorf("schema: field %q has unknown type %q", field.ID, field.Type)
		}
		if _, dup := seen[field.ID]; dup {
			return fmt.Errorf("schema: duplicate field id %q", field.ID)
		}
		seen[field.ID] = struct{}{}

		if !field.IsGroup() && len(field.Children) > 0 {
			return fmt.Errorf("schema: field %q is a %s and cannot have children", field.ID, field.Type)
		}
		if err := validateFields(field.Children, seen); err != nil {
			return err
		}
	}
	return nil
}
