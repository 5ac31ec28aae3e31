package formdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Validate walks the tree's leaf fields and checks their values, returning a
// message per failing field id. Groups recurse without producing entries of
// their own. At most one message is recorded per field: required first, then
// for number fields parseability, then the min bound, then the max bound.
// The map is empty, never nil, when everything passes.
func Validate(values ValueMap, fields []*schema.Field) map[string]string {
	errs := make(map[string]string)
	validateFields(fields, values, errs)
	return errs
}

func validateFields(fields []*schema.Field, values ValueMap, errs map[string]string) {
	for _, field := range fields {
		if field.IsGroup() {
			validateFields(field.Children, values, errs)
			continue
		}
		if message := validateLeaf(field, values); message != "" {
			errs[field.ID] = message
		}
	}
}

func validateLeaf(field *schema.Field, values ValueMap) string {
	value, present := values[field.ID]

	if field.Required && isBlank(value, present) {
		return fmt.Sprintf("%s is required", field.Label)
	}
	if field.Type != schema.FieldTypeNumber || isBlank(value, present) {
		return ""
	}

	number, ok := toNumber(value)
	if !ok {
		return fmt.Sprintf("%s must be a valid number", field.Label)
	}
	if field.Min != nil && number < *field.Min {
		return fmt.Sprintf("%s must be at least %s", field.Label, formatBound(*field.Min))
	}
	if field.Max != nil && number > *field.Max {
		return fmt.Sprintf("%s must be at most %s", field.Label, formatBound(*field.Max))
	}
	return ""
}

// isBlank treats a missing entry, the empty string and whitespace-only
// strings as "nothing entered". Numbers, including zero, are never blank.
func isBlank(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		// Covers the NotANumber sentinel along with anything else foreign.
		return 0, false
	}
}

func formatBound(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
