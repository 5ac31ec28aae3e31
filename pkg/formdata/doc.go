// Package formdata keeps the flat id-to-value store that backs a live form
// preview in sync with its schema tree, and validates entered values against
// the tree's constraints.
//
// The package reads the tree, never edits it; the only coupling between the
// two structures is the field id. Reconciliation after a schema edit is a
// join over the two id sets: ids present in both keep their value, ids only
// in the new schema are seeded, ids only in the old map are dropped. Values
// therefore survive relabeling and reordering and are lost only when their
// owning field is deleted or the whole tree is replaced.
package formdata
