package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeYAML serializes the schema as YAML. The member order follows the
// struct declaration, matching the JSON export.
func EncodeYAML(s FormSchema) ([]byte, error) {
	if s.Fields == nil {
		s.Fields = []*Field{}
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("schema: encode yaml document: %w", err)
	}
	return data, nil
}

// DecodeYAML parses a YAML document with the same shape contract as Decode:
// a top-level mapping carrying a fields sequence.
func DecodeYAML(data []byte) (FormSchema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return FormSchema{}, fmt.Errorf("schema: parse yaml document: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return FormSchema{}, errors.New("schema: yaml document must be a mapping")
	}

	var fieldsNode *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "fields" {
			fieldsNode = root.Content[i+1]
			break
		}
	}
	if fieldsNode == nil {
		return FormSchema{}, errors.New("schema: yaml document is missing a fields sequence")
	}
	if fieldsNode.Kind != yaml.SequenceNode {
		return FormSchema{}, errors.New("schema: fields must be a sequence")
	}

	var fields []*Field
	if err := fieldsNode.Decode(&fields); err != nil {
		return FormSchema{}, fmt.Errorf("schema: parse fields: %w", err)
	}
	if fields == nil {
		fields = []*Field{}
	}

	parsed := FormSchema{Fields: fields}
	if err := Validate(parsed); err != nil {
		return FormSchema{}, err
	}
	return parsed, nil
}
