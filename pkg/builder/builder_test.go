package builder_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/formdata"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// sequentialIDs makes test output deterministic.
func sequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%04d", n)
	}
}

func newBuilder(t *testing.T) *builder.Builder {
	t.Helper()
	b, err := builder.New(builder.WithIDGenerator(sequentialIDs()))
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	return b
}

func TestBuilder_AddField(t *testing.T) {
	b := newBuilder(t)

	groupID, err := b.AddField(schema.FieldTypeGroup, "")
	if err != nil {
		t.Fatalf("add group: %v", err)
	}
	if groupID != "group-0001" {
		t.Fatalf("unexpected id %q", groupID)
	}

	textID, err := b.AddField(schema.FieldTypeText, groupID)
	if err != nil {
		t.Fatalf("add text: %v", err)
	}

	s := b.Schema()
	if len(s.Fields) != 1 || len(s.Fields[0].Children) != 1 {
		t.Fatalf("unexpected tree: %+v", s.Fields)
	}
	if s.Fields[0].Children[0].ID != textID {
		t.Fatal("expected the text field under the group")
	}
	if b.Values()[textID] != "" {
		t.Fatal("expected new leaf seeded in the value map")
	}
}

func TestBuilder_AddField_UnknownType(t *testing.T) {
	b := newBuilder(t)
	if _, err := b.AddField(schema.FieldType("date"), ""); err == nil {
		t.Fatal("expected error for unknown field type")
	}
}

func TestBuilder_AddField_StaleParentIsNoOp(t *testing.T) {
	b := newBuilder(t)
	before := b.Schema()

	id, err := b.AddField(schema.FieldTypeText, "missing")
	if err != nil {
		t.Fatalf("stale parent must not error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id for a no-op, got %q", id)
	}
	if diff := cmp.Diff(before, b.Schema()); diff != "" {
		t.Fatalf("schema changed on a no-op:\n%s", diff)
	}
}

func TestBuilder_ValuesSurviveEdits(t *testing.T) {
	b := newBuilder(t)
	textID, _ := b.AddField(schema.FieldTypeText, "")
	numberID, _ := b.AddField(schema.FieldTypeNumber, "")

	b.SetValue(textID, "hello")
	b.SetValue(numberID, "42")

	b.UpdateField(textID, schema.Patch{Label: schema.String("Greeting")})
	b.MoveField(textID, tree.DirectionDown)

	values := b.Values()
	if values[textID] != "hello" {
		t.Fatalf("expected value to survive relabel and move, got %v", values[textID])
	}
	if values[numberID] != 42.0 {
		t.Fatalf("expected coerced number, got %v", values[numberID])
	}

	b.DeleteField(numberID)
	if _, ok := b.Values()[numberID]; ok {
		t.Fatal("expected deleted field's value to be dropped")
	}
}

func TestBuilder_SetValue(t *testing.T) {
	b := newBuilder(t)
	numberID, _ := b.AddField(schema.FieldTypeNumber, "")
	groupID, _ := b.AddField(schema.FieldTypeGroup, "")

	b.SetValue(numberID, "not numeric")
	if b.Values()[numberID] != formdata.NotANumber {
		t.Fatalf("expected sentinel, got %v", b.Values()[numberID])
	}

	b.SetValue(groupID, "ignored")
	if _, ok := b.Values()[groupID]; ok {
		t.Fatal("group ids must never gain value entries")
	}

	b.SetValue("missing", "ignored")
	if _, ok := b.Values()["missing"]; ok {
		t.Fatal("unknown ids must be ignored")
	}
}

func TestBuilder_Validate(t *testing.T) {
	b := newBuilder(t)
	id, _ := b.AddField(schema.FieldTypeNumber, "")
	b.UpdateField(id, schema.Patch{
		Label:    schema.String("Age"),
		Required: schema.Bool(true),
		Min:      schema.Float(0),
		Max:      schema.Float(120),
	})

	b.SetValue(id, "150")
	errs := b.Validate()
	if errs[id] != "Age must be at most 120" {
		t.Fatalf("unexpected errors: %v", errs)
	}

	b.SetValue(id, "30")
	if errs := b.Validate(); len(errs) != 0 {
		t.Fatalf("expected clean validation, got %v", errs)
	}
	if len(b.Errors()) != 0 {
		t.Fatal("expected stored errors to be refreshed")
	}
}

func TestBuilder_ImportExportRoundTrip(t *testing.T) {
	b := newBuilder(t)
	groupID, _ := b.AddField(schema.FieldTypeGroup, "")
	b.UpdateField(groupID, schema.Patch{Label: schema.String("Details")})
	leafID, _ := b.AddField(schema.FieldTypeNumber, groupID)
	b.UpdateField(leafID, schema.Patch{Label: schema.String("Age"), Min: schema.Float(0)})

	exported, err := b.ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	other, err := builder.New()
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	if err := other.ImportJSON(exported); err != nil {
		t.Fatalf("import: %v", err)
	}

	if diff := cmp.Diff(b.Schema(), other.Schema()); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_ImportRejectionKeepsState(t *testing.T) {
	b := newBuilder(t)
	id, _ := b.AddField(schema.FieldTypeText, "")
	b.SetValue(id, "hello")
	before := b.Schema()

	err := b.ImportJSON([]byte(`{"foo": 1}`))
	if err == nil {
		t.Fatal("expected import rejection")
	}
	if !strings.Contains(err.Error(), "fields") {
		t.Fatalf("expected a diagnostic mentioning the fields member, got %v", err)
	}
	if diff := cmp.Diff(before, b.Schema()); diff != "" {
		t.Fatalf("schema changed on rejected import:\n%s", diff)
	}
	if b.Values()[id] != "hello" {
		t.Fatal("values must survive a rejected import")
	}
}

func TestBuilder_ImportResetsValues(t *testing.T) {
	b := newBuilder(t)
	id, _ := b.AddField(schema.FieldTypeText, "")
	b.SetValue(id, "hello")

	doc := []byte(`{"fields": [{"id": "fresh", "type": "text", "label": "Fresh", "required": false}]}`)
	if err := b.ImportJSON(doc); err != nil {
		t.Fatalf("import: %v", err)
	}

	values := b.Values()
	if _, ok := values[id]; ok {
		t.Fatal("old values must not survive a wholesale replace")
	}
	if values["fresh"] != "" {
		t.Fatalf("expected fresh seed, got %v", values["fresh"])
	}
}

func TestBuilder_WithSchema(t *testing.T) {
	seed := schema.FormSchema{Fields: []*schema.Field{schema.MustNew(schema.FieldTypeText, "t1")}}
	b, err := builder.New(builder.WithSchema(seed))
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	if _, ok := b.Values()["t1"]; !ok {
		t.Fatal("expected seeded schema's leaves in the value map")
	}

	dup := schema.FormSchema{Fields: []*schema.Field{
		schema.MustNew(schema.FieldTypeText, "t1"),
		schema.MustNew(schema.FieldTypeText, "t1"),
	}}
	if _, err := builder.New(builder.WithSchema(dup)); err == nil {
		t.Fatal("expected duplicate-id schema to be rejected")
	}
}

func TestBuilder_YAMLRoundTrip(t *testing.T) {
	b := newBuilder(t)
	id, _ := b.AddField(schema.FieldTypeText, "")
	b.UpdateField(id, schema.Patch{Label: schema.String("Name")})

	exported, err := b.ExportYAML()
	if err != nil {
		t.Fatalf("export yaml: %v", err)
	}

	other, err := builder.New()
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	if err := other.ImportYAML(exported); err != nil {
		t.Fatalf("import yaml: %v", err)
	}
	if diff := cmp.Diff(b.Schema(), other.Schema()); diff != "" {
		t.Fatalf("yaml round-trip mismatch (-want +got):\n%s", diff)
	}
}
