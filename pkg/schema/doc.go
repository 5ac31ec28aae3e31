// Package schema defines the field-node tree a form builder edits: a closed
// union of text, number and group nodes, plus the JSON/YAML codecs that move
// whole trees in and out of the process.
//
// The package owns node shape only. Structure-changing edits live in
// pkg/tree; entered values and validation live in pkg/formdata.
package schema
