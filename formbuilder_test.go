package formbuilder_test

import (
	"context"
	"strings"
	"testing"

	formbuilder "github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

func TestBuildAndGenerateHTML(t *testing.T) {
	b, err := formbuilder.New()
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	nameID, err := b.AddField(formbuilder.FieldTypeText, "")
	if err != nil {
		t.Fatalf("add field: %v", err)
	}
	b.UpdateField(nameID, schema.Patch{
		Label:    schema.String("Full Name"),
		Required: schema.Bool(true),
	})
	b.SetValue(nameID, "Ada")

	html, err := formbuilder.GenerateHTML(context.Background(), b.Schema(), formbuilder.RenderOptions{
		Title:  "Signup",
		Values: b.Values(),
	})
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}

	out := string(html)
	for _, want := range []string{"Signup", "Full Name", `value="Ada"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	files := formbuilder.EmbeddedTemplates()
	if files == nil {
		t.Fatal("expected embedded template bundle")
	}
}
