package tree

import "github.com/goliatone/go-formbuilder/pkg/schema"

// FindByID locates a node anywhere in the tree using depth-first pre-order
// traversal. Ids are assumed unique; with duplicates the first match in
// traversal order wins. Returns nil when the id is absent.
func FindByID(fields []*schema.Field, id string) *schema.Field {
	for _, field := range fields {
		if field.ID == id {
			return field
		}
		if field.IsGroup() {
			if found := FindByID(field.Children, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindContext locates the sequence containing the node identified by id and
// the node's index within it. Same traversal and first-match policy as
// FindByID. ok is false when the id is absent.
func FindContext(fields []*schema.Field, id string) (siblings []*schema.Field, index int, ok bool) {
	for i, field := range fields {
		if field.ID == id {
			return fields, i, true
		}
		if field.IsGroup() {
			if siblings, index, ok = FindContext(field.Children, id); ok {
				return siblings, index, true
			}
		}
	}
	return nil, 0, false
}

// Walk visits every node depth-first in pre-order, parents before children.
// Returning false from visit stops the traversal.
func Walk(fields []*schema.Field, visit func(*schema.Field) bool) bool {
	for _, field := range fields {
		if !visit(field) {
			return false
		}
		if field.IsGroup() {
			if !Walk(field.Children, visit) {
				return false
			}
		}
	}
	return true
}
