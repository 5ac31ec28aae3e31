package schema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

func TestYAML_RoundTrip(t *testing.T) {
	want := sampleSchema()

	data, err := schema.EncodeYAML(want)
	if err != nil {
		t.Fatalf("encode yaml: %v", err)
	}
	got, err := schema.DecodeYAML(data)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML_Rejections(t *testing.T) {
	cases := map[string]string{
		"not a mapping":      "- just\n- a\n- list\n",
		"missing fields":     "title: untitled\n",
		"fields not a list":  "fields:\n  id: f1\n",
		"duplicate field id": "fields:\n  - id: f1\n    type: text\n  - id: f1\n    type: number\n",
	}

	for name, input := range cases {
		if _, err := schema.DecodeYAML([]byte(input)); err == nil {
			t.Fatalf("%s: expected decode to fail", name)
		}
	}
}
