// Package tree implements the pure editing operations over a schema field
// tree: add, update, delete, adjacent move, wholesale replace, and the two
// lookup traversals.
//
// Every operation takes the current field sequence and returns a new one
// without touching the input. The returned tree shares structure with the
// input aggressively: only the nodes on the path from the root to the edited
// node are reallocated, so any subtree that contains no affected node comes
// back as the identical reference. Consumers rely on that contract to skip
// re-processing unchanged subtrees with a pointer comparison, which makes it
// a correctness property here rather than an optimization.
//
// Operations that target an id the tree does not contain (or that is not
// eligible, such as adding under a leaf) return the input unchanged. The
// embedding builder is the only producer of ids, so a miss indicates a stale
// reference and not a condition worth failing on.
package tree
