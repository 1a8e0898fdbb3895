package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/domfmt/go-xmldoc/ir"
)

func obj(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs) }
func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(k), Val: v}
}

func TestDiffEqual(t *testing.T) {
	a := obj(kv("x", ir.FromString("1")), kv("y", ir.FromSlice([]*ir.Node{ir.FromString("a")})))
	b := obj(kv("x", ir.FromString("1")), kv("y", ir.FromSlice([]*ir.Node{ir.FromString("a")})))
	if d := Diff(a, b); d != nil {
		t.Errorf("Diff of equal values = %v", d.ToGo())
	}
}

func TestDiffScalarChange(t *testing.T) {
	d := Diff(ir.FromString("old"), ir.FromString("new"))
	want := map[string]any{"-": "old", "+": "new"}
	if diff := cmp.Diff(want, d.ToGo()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffObjectFields(t *testing.T) {
	a := obj(kv("keep", ir.FromString("v")), kv("gone", ir.FromString("1")), kv("change", ir.FromString("x")))
	b := obj(kv("keep", ir.FromString("v")), kv("change", ir.FromString("y")), kv("added", ir.FromString("2")))
	d := Diff(a, b)
	want := map[string]any{
		"gone":   map[string]any{"-": "1"},
		"change": map[string]any{"-": "x", "+": "y"},
		"added":  map[string]any{"+": "2"},
	}
	if diff := cmp.Diff(want, d.ToGo()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffTypeChange(t *testing.T) {
	a := ir.FromString("x")
	b := ir.FromSlice([]*ir.Node{ir.FromString("x")})
	d := Diff(a, b)
	want := map[string]any{"-": "x", "+": []any{"x"}}
	if diff := cmp.Diff(want, d.ToGo()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffArray(t *testing.T) {
	a := ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")})
	b := ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("c")})
	d := Diff(a, b)
	if d == nil || d.Type != ir.ArrayType {
		t.Fatalf("d = %v", d)
	}
	got := d.ToGo().([]any)
	// "b" removed, "c" inserted; alignment keeps "a" out of the diff
	want := []any{
		map[string]any{"-": "b"},
		map[string]any{"+": "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffNil(t *testing.T) {
	if d := Diff(nil, nil); d != nil {
		t.Errorf("Diff(nil, nil) = %v", d)
	}
	d := Diff(nil, ir.FromString("x"))
	want := map[string]any{"+": "x"}
	if diff := cmp.Diff(want, d.ToGo()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
