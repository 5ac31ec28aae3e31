package formdata

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// ValueMap is the flat store of entered values, keyed by leaf field id.
// Values are strings (text fields), float64 (number fields) or the
// NotANumber sentinel. Group ids never appear as keys; identity by id is the
// only coupling between the value store and the schema tree.
type ValueMap map[string]any

// notANumber is unexported so no value arriving from outside the package can
// collide with the sentinel.
type notANumber struct{}

func (notANumber) String() string { return "NaN" }

// NotANumber is the reserved sentinel stored when a number field holds input
// that is present but not parseable as a number.
var NotANumber = notANumber{}

// Initialize builds a fresh value map for the given tree: every leaf field
// seeded with the empty string, groups contributing only their descendants'
// entries (flattened, never namespaced by group id).
func Initialize(fields []*schema.Field) ValueMap {
	values := make(ValueMap)
	seed(fields, values)
	return values
}

func seed(fields []*schema.Field, values ValueMap) {
	for _, field := range fields {
		if field.IsGroup() {
			seed(field.Children, values)
			continue
		}
		values[field.ID] = ""
	}
}

// Merge reconciles an existing value map against a changed schema. Identity
// is the id, not the position: an id present in both keeps its current value
// wherever its field moved, an id new to the schema is seeded with the empty
// string, and an id the schema no longer contains is dropped.
func Merge(current ValueMap, next schema.FormSchema) ValueMap {
	merged := Initialize(next.Fields)
	for id := range merged {
		if value, ok := current[id]; ok {
			merged[id] = value
		}
	}
	return merged
}

// Coerce converts raw input into the stored representation for the given
// field: text fields keep the string, number fields parse it, storing
// NotANumber when input is present but unparseable. Blank input is stored as
// the empty string for both kinds.
func Coerce(field *schema.Field, raw string) any {
	if field == nil || field.Type != schema.FieldTypeNumber {
		return raw
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return NotANumber
	}
	return parsed
}

// Clone returns a shallow copy of the map. Values are scalars, so a shallow
// copy is a full copy.
func (m ValueMap) Clone() ValueMap {
	out := make(ValueMap, len(m))
	for id, value := range m {
		out[id] = value
	}
	return out
}
