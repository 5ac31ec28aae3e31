// Package openapi seeds form schemas from OpenAPI 3 documents: the request
// body of one operation becomes an editable field tree, ready for the
// builder. Conversion is one-way and lossy by design; only the shapes the
// builder can edit survive, everything else degrades to a text field.
package openapi
