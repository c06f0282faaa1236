package ir

import "testing"

func TestCloneNoAliasing(t *testing.T) {
	orig := obj(
		"name", FromString("layer-1"),
		"steps", FromSlice([]*Node{FromInt(1), FromInt(2)}),
		"meta", obj("owner", FromString("qa")),
	)
	dup := orig.Clone()
	if !Equal(orig, dup) {
		t.Fatal("clone not equal to original")
	}

	// Mutating the copy must not affect the original, and vice versa.
	dup.SetField("name", FromString("layer-2"))
	Get(dup, "steps").InsertValueAt(2, FromInt(3))
	Get(orig, "meta").SetField("owner", FromString("dev"))

	if got := Get(orig, "name").String; got != "layer-1" {
		t.Errorf("original name = %q after mutating clone", got)
	}
	if got := len(Get(orig, "steps").Values); got != 2 {
		t.Errorf("original steps len = %d after mutating clone", got)
	}
	if got := Get(dup, "meta"); Get(got, "owner").String != "qa" {
		t.Errorf("clone meta.owner = %q after mutating original", Get(got, "owner").String)
	}
}

func TestObjectMutators(t *testing.T) {
	y := obj("a", FromInt(1), "b", FromInt(2), "c", FromInt(3))

	y.SetField("b", FromInt(20))
	if i := y.FieldIndex("b"); i != 1 {
		t.Errorf("SetField moved key b to index %d", i)
	}
	if got := Get(y, "b"); *got.Int64 != 20 {
		t.Errorf("SetField b = %d, want 20", *got.Int64)
	}

	y.RemoveFieldAt(y.FieldIndex("a"))
	if Get(y, "a") != nil {
		t.Error("a still present after RemoveFieldAt")
	}
	if len(y.Fields) != 2 || y.Fields[0].String != "b" || y.Fields[1].String != "c" {
		t.Errorf("unexpected field order after remove: %v, %v", y.Fields, y.Values)
	}
}

func TestArrayMutators(t *testing.T) {
	y := FromSlice([]*Node{FromString("a"), FromString("c")})

	y.InsertValueAt(1, FromString("b"))
	y.InsertValueAt(3, FromString("d")) // append position
	want := []string{"a", "b", "c", "d"}
	for i, w := range want {
		if y.Values[i].String != w {
			t.Fatalf("after inserts values[%d] = %q, want %q", i, y.Values[i].String, w)
		}
	}

	y.RemoveValueAt(0)
	if y.Values[0].String != "b" || len(y.Values) != 3 {
		t.Errorf("after remove values[0] = %q len %d", y.Values[0].String, len(y.Values))
	}
}
