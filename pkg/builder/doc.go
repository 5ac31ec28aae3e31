// Package builder exposes the operation surface a form-builder UI calls
// into: field creation with minted ids and type defaults, patch updates,
// deletion, adjacent moves, value entry, validation, and JSON/YAML
// import/export. It composes the tree engine (structure) with the formdata
// engine (values) and owns the current references to both.
package builder
