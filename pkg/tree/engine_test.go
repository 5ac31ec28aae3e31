package tree_test

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

// fixture builds:
//
//	t1 (text)
//	g1 (group)
//	  t2 (text)
//	  g2 (group)
//	    t3 (number)
//	t4 (number)
func fixture() []*schema.Field {
	t1 := schema.MustNew(schema.FieldTypeText, "t1")
	t2 := schema.MustNew(schema.FieldTypeText, "t2")
	t3 := schema.MustNew(schema.FieldTypeNumber, "t3")
	t4 := schema.MustNew(schema.FieldTypeNumber, "t4")

	g2 := schema.MustNew(schema.FieldTypeGroup, "g2")
	g2.Children = []*schema.Field{t3}

	g1 := schema.MustNew(schema.FieldTypeGroup, "g1")
	g1.Children = []*schema.Field{t2, g2}

	return []*schema.Field{t1, g1, t4}
}

func TestAdd_ToRoot(t *testing.T) {
	fields := fixture()
	node := schema.MustNew(schema.FieldTypeText, "t5")

	got := tree.Add(fields, "", node)
	if len(got) != 4 {
		t.Fatalf("expected 4 root fields, got %d", len(got))
	}
	if got[3] != node {
		t.Fatal("expected new node appended at the end")
	}
	for i := range fields {
		if got[i] != fields[i] {
			t.Fatalf("expected root field %d to keep its reference", i)
		}
	}
	if len(fields) != 3 {
		t.Fatal("input sequence must not be mutated")
	}
}

func TestAdd_ToNestedGroup(t *testing.T) {
	fields := fixture()
	node := schema.MustNew(schema.FieldTypeText, "t5")

	got := tree.Add(fields, "g2", node)

	g1 := got[1]
	g2 := g1.Children[1]
	if len(g2.Children) != 2 || g2.Children[1] != node {
		t.Fatalf("expected node appended to g2, got %v", g2.Children)
	}

	// Ancestors on the path are fresh, everything off the path is shared.
	if g1 == fields[1] || g2 == fields[1].Children[1] {
		t.Fatal("expected fresh wrappers along the edit path")
	}
	if got[0] != fields[0] || got[2] != fields[2] {
		t.Fatal("expected untouched root siblings to keep their references")
	}
	if g1.Children[0] != fields[1].Children[0] {
		t.Fatal("expected untouched nested sibling to keep its reference")
	}
	if g2.Children[0] != fields[1].Children[1].Children[0] {
		t.Fatal("expected existing child of the target group to keep its reference")
	}
}

func TestAdd_ToLeafIsNoOp(t *testing.T) {
	fields := fixture()
	got := tree.Add(fields, "t2", schema.MustNew(schema.FieldTypeText, "t5"))
	assertSameTree(t, fields, got)
}

func TestAdd_UnknownParentIsNoOp(t *testing.T) {
	fields := fixture()
	got := tree.Add(fields, "missing", schema.MustNew(schema.FieldTypeText, "t5"))
	assertSameTree(t, fields, got)
}

func TestUpdate_Nested(t *testing.T) {
	fields := fixture()

	got := tree.Update(fields, "t3", schema.Patch{
		Label: schema.String("Quantity"),
		Min:   schema.Float(1),
	})

	updated := got[1].Children[1].Children[0]
	if updated.Label != "Quantity" || updated.Min == nil || *updated.Min != 1 {
		t.Fatalf("unexpected updated node: %+v", updated)
	}
	if updated.ID != "t3" || updated.Type != schema.FieldTypeNumber {
		t.Fatal("id and type must survive updates")
	}
	if fields[1].Children[1].Children[0].Label != "" {
		t.Fatal("input node must not be mutated")
	}
	if got[0] != fields[0] || got[2] != fields[2] || got[1].Children[0] != fields[1].Children[0] {
		t.Fatal("expected off-path subtrees to keep their references")
	}
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	fields := fixture()
	got := tree.Update(fields, "missing", schema.Patch{Label: schema.String("x")})
	assertSameTree(t, fields, got)
}

func TestDelete_RemovesSubtree(t *testing.T) {
	fields := fixture()

	got := tree.Delete(fields, "g1")
	if len(got) != 2 {
		t.Fatalf("expected 2 root fields, got %d", len(got))
	}
	for _, id := range []string{"g1", "t2", "g2", "t3"} {
		if tree.FindByID(got, id) != nil {
			t.Fatalf("expected %q to be gone", id)
		}
	}
	if got[0] != fields[0] || got[1] != fields[2] {
		t.Fatal("expected surviving nodes to keep their references")
	}
}

func TestDelete_NestedLeaf(t *testing.T) {
	fields := fixture()

	got := tree.Delete(fields, "t3")
	if tree.FindByID(got, "t3") != nil {
		t.Fatal("expected t3 to be gone")
	}
	if len(got[1].Children[1].Children) != 0 {
		t.Fatal("expected g2 to be empty")
	}
	if got[1].Children[0] != fields[1].Children[0] {
		t.Fatal("expected t2 to keep its reference")
	}
}

func TestDelete_UnknownIDIsNoOp(t *testing.T) {
	fields := fixture()
	got := tree.Delete(fields, "missing")
	assertSameTree(t, fields, got)
}

func TestMove_SwapsAdjacentSiblings(t *testing.T) {
	fields := fixture()

	got := tree.Move(fields, "t4", tree.DirectionUp)
	if got[1].ID != "t4" || got[2].ID != "g1" {
		t.Fatalf("expected t4 and g1 swapped, got %s %s", got[1].ID, got[2].ID)
	}
	if got[0] != fields[0] || got[1] != fields[2] || got[2] != fields[1] {
		t.Fatal("expected moved nodes to keep their references")
	}

	back := tree.Move(got, "t4", tree.DirectionDown)
	if back[1].ID != "g1" || back[2].ID != "t4" {
		t.Fatal("expected the swap to reverse")
	}
}

func TestMove_NestedSibling(t *testing.T) {
	fields := fixture()

	got := tree.Move(fields, "g2", tree.DirectionUp)
	kids := got[1].Children
	if kids[0].ID != "g2" || kids[1].ID != "t2" {
		t.Fatalf("expected g2 before t2, got %s %s", kids[0].ID, kids[1].ID)
	}
	if got[0] != fields[0] || got[2] != fields[2] {
		t.Fatal("expected root siblings to keep their references")
	}
	if kids[0] != fields[1].Children[1] || kids[1] != fields[1].Children[0] {
		t.Fatal("expected the swapped nodes themselves to keep their references")
	}
}

func TestMove_BoundaryIsNoOp(t *testing.T) {
	fields := fixture()

	assertSameTree(t, fields, tree.Move(fields, "t1", tree.DirectionUp))
	assertSameTree(t, fields, tree.Move(fields, "t4", tree.DirectionDown))
	assertSameTree(t, fields, tree.Move(fields, "t2", tree.DirectionUp))
	assertSameTree(t, fields, tree.Move(fields, "missing", tree.DirectionDown))
	assertSameTree(t, fields, tree.Move(fields, "t1", tree.Direction("sideways")))
}

func TestReplace_NormalizesNil(t *testing.T) {
	got := tree.Replace(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty sequence, got %v", got)
	}

	next := fixture()
	if replaced := tree.Replace(next); len(replaced) != 3 {
		t.Fatalf("expected the supplied sequence back, got %d fields", len(replaced))
	}
}

// assertSameTree checks the no-op contract: same slice contents with every
// element keeping its reference.
func assertSameTree(t *testing.T, want, got []*schema.Field) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("expected %d fields, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("expected field %d to keep its reference", i)
		}
	}
}
