package tree

import "github.com/goliatone/go-formbuilder/pkg/schema"

// Direction selects which adjacent sibling a Move swaps with.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Valid reports whether the direction is one of the two known values.
func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}

// Add appends node to the children of the group identified by parentID, or to
// the root sequence when parentID is empty. When parentID names a leaf or no
// node at all, the input is returned unchanged: the caller mints every id, so
// a stale target is a benign race, not an integrity failure.
func Add(fields []*schema.Field, parentID string, node *schema.Field) []*schema.Field {
	if node == nil {
		return fields
	}
	if parentID == "" {
		out := make([]*schema.Field, 0, len(fields)+1)
		out = append(out, fields...)
		return append(out, node)
	}
	out, _ := addToParent(fields, parentID, node)
	return out
}

func addToParent(fields []*schema.Field, parentID string, node *schema.Field) ([]*schema.Field, bool) {
	for i, field := range fields {
		if field.ID == parentID {
			if !field.IsGroup() {
				return fields, false
			}
			children := make([]*schema.Field, 0, len(field.Children)+1)
			children = append(children, field.Children...)
			children = append(children, node)
			return replaceAt(fields, i, field.WithChildren(children)), true
		}
		if field.IsGroup() {
			children, changed := addToParent(field.Children, parentID, node)
			if changed {
				return replaceAt(fields, i, field.WithChildren(children)), true
			}
		}
	}
	return fields, false
}

// Update replaces the node identified by id with a copy carrying the patch.
// ID and Type are immutable; Patch cannot express either. Unknown id returns
// the input unchanged.
func Update(fields []*schema.Field, id string, patch schema.Patch) []*schema.Field {
	out, _ := updateNode(fields, id, patch)
	return out
}

func updateNode(fields []*schema.Field, id string, patch schema.Patch) ([]*schema.Field, bool) {
	for i, field := range fields {
		if field.ID == id {
			return replaceAt(fields, i, field.Apply(patch)), true
		}
		if field.IsGroup() {
			children, changed := updateNode(field.Children, id, patch)
			if changed {
				return replaceAt(fields, i, field.WithChildren(children)), true
			}
		}
	}
	return fields, false
}

// Delete removes the node identified by id from its containing sequence. A
// deleted group takes its whole subtree with it; orphaned children are not
// promoted. Unknown id returns the input unchanged.
func Delete(fields []*schema.Field, id string) []*schema.Field {
	out, _ := deleteNode(fields, id)
	return out
}

func deleteNode(fields []*schema.Field, id string) ([]*schema.Field, bool) {
	for i, field := range fields {
		if field.ID == id {
			out := make([]*schema.Field, 0, len(fields)-1)
			out = append(out, fields[:i]...)
			out = append(out, fields[i+1:]...)
			return out, true
		}
		if field.IsGroup() {
			children, changed := deleteNode(field.Children, id)
			if changed {
				return replaceAt(fields, i, field.WithChildren(children)), true
			}
		}
	}
	return fields, false
}

// Move swaps the node identified by id with its previous (up) or next (down)
// sibling. Moving the first child up or the last child down is a no-op that
// returns the input references untouched, as is an unknown id or direction.
func Move(fields []*schema.Field, id string, direction Direction) []*schema.Field {
	if !direction.Valid() {
		return fields
	}
	out, _ := moveNode(fields, id, direction)
	return out
}

func moveNode(fields []*schema.Field, id string, direction Direction) ([]*schema.Field, bool) {
	for i, field := range fields {
		if field.ID == id {
			j := i - 1
			if direction == DirectionDown {
				j = i + 1
			}
			if j < 0 || j >= len(fields) {
				return fields, false
			}
			out := make([]*schema.Field, len(fields))
			copy(out, fields)
			out[i], out[j] = out[j], out[i]
			return out, true
		}
		if field.IsGroup() {
			children, changed := moveNode(field.Children, id, direction)
			if changed {
				return replaceAt(fields, i, field.WithChildren(children)), true
			}
		}
	}
	return fields, false
}

// Replace substitutes the entire field sequence, normalizing nil to an empty
// sequence. Import flows go through this after the codec's shape check.
func Replace(next []*schema.Field) []*schema.Field {
	if next == nil {
		return []*schema.Field{}
	}
	return next
}

// replaceAt allocates a fresh sequence differing from fields only at index i.
// Every other element keeps its reference, which is what lets callers skip
// unchanged subtrees by pointer comparison.
func replaceAt(fields []*schema.Field, i int, node *schema.Field) []*schema.Field {
	out := make([]*schema.Field, len(fields))
	copy(out, fields)
	out[i] = node
	return out
}
