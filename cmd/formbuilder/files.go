package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// schemaFormat picks the on-disk encoding from the file extension. JSON is
// the default for unknown extensions.
func schemaFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func loadSchemaFile(path string) (schema.FormSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.FormSchema{}, fmt.Errorf("read schema: %w", err)
	}
	if schemaFormat(path) == "yaml" {
		return schema.DecodeYAML(data)
	}
	return schema.Decode(data)
}

func encodeSchema(form schema.FormSchema, format string) ([]byte, error) {
	if format == "yaml" {
		return schema.EncodeYAML(form)
	}
	return schema.Encode(form)
}

func loadValuesFile(path string) (formdata.ValueMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	values := formdata.ValueMap{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse values: %w", err)
	}
	return values, nil
}

// writeOutput writes to the given path or stdout when the path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
