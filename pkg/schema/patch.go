package schema

// Patch describes a partial update to a field node. Nil members are left
// untouched; ID and Type are deliberately absent because they are immutable
// once a node exists. ClearMin/ClearMax remove an existing bound, since a nil
// Min/Max already means "no change".
type Patch struct {
	Label       *string
	Required    *bool
	Placeholder *string
	Min         *float64
	Max         *float64
	ClearMin    bool
	ClearMax    bool
}

// IsZero reports whether applying the patch would change nothing.
func (p Patch) IsZero() bool {
	return p.Label == nil && p.Required == nil && p.Placeholder == nil &&
		p.Min == nil && p.Max == nil && !p.ClearMin && !p.ClearMax
}

// Apply returns a copy of the node with the patch merged in. Children keep
// the receiver's slice reference: patching a group's own properties must not
// disturb sharing of its subtree.
func (f *Field) Apply(p Patch) *Field {
	clone := *f
	if p.Label != nil {
		clone.Label = *p.Label
	}
	if p.Required != nil {
		clone.Required = *p.Required
	}
	if p.Placeholder != nil {
		clone.Placeholder = *p.Placeholder
	}
	if p.Min != nil {
		value := *p.Min
		clone.Min = &value
	} else if p.ClearMin {
		clone.Min = nil
	}
	if p.Max != nil {
		value := *p.Max
		clone.Max = &value
	} else if p.ClearMax {
		clone.Max = nil
	}
	return &clone
}

// String returns a pointer to the supplied string, for terse Patch literals.
func String(value string) *string { return &value }

// Bool returns a pointer to the supplied bool.
func Bool(value bool) *bool { return &value }

// Float returns a pointer to the supplied float64.
func Float(value float64) *float64 { return &value }
