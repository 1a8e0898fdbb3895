package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromKeyValsOrder(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("b"), Val: FromString("2")},
		{Key: FromString("a"), Val: FromString("1")},
		{Key: FromString("c"), Val: FromString("3")},
	})
	got := make([]string, len(obj.Fields))
	for i, f := range obj.Fields {
		got[i] = f.String
	}
	want := []string{"b", "a", "c"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("field order (-want +got):\n%s", d)
	}
}

func TestAppendBackRefs(t *testing.T) {
	obj := FromKeyVals(nil)
	obj.Append(FromString("a"), FromString("1"))
	obj.Append(FromString("b"), FromString("2"))
	if len(obj.Fields) != 2 || len(obj.Values) != 2 {
		t.Fatalf("got %d fields, %d values", len(obj.Fields), len(obj.Values))
	}
	for i, v := range obj.Values {
		if v.Parent != obj {
			t.Errorf("value %d parent not set", i)
		}
		if v.ParentIndex != i {
			t.Errorf("value %d parent index = %d", i, v.ParentIndex)
		}
	}
	if obj.Values[1].ParentField != "b" {
		t.Errorf("parent field = %q, want %q", obj.Values[1].ParentField, "b")
	}
}

func TestGet(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromString("1")},
		{Key: FromString("b"), Val: FromString("2")},
	})
	if got := Get(obj, "b"); got == nil || got.String != "2" {
		t.Errorf("Get(b) = %v", got)
	}
	if got := Get(obj, "z"); got != nil {
		t.Errorf("Get(z) = %v, want nil", got)
	}
}

func TestScalarCount(t *testing.T) {
	tests := []struct {
		name     string
		node     *Node
		expected int
	}{
		{"string", FromString("x"), 1},
		{"null", Null(), 1},
		{"empty object", FromKeyVals(nil), 0},
		{"one entry", FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromString("1")}}), 1},
		{"nested", FromKeyVals([]KeyVal{
			{Key: FromString("a"), Val: FromString("1")},
			{Key: FromString("b"), Val: FromSlice([]*Node{FromString("x"), FromString("y")})},
		}), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.ScalarCount(); got != tt.expected {
				t.Errorf("ScalarCount() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestToGo(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromString("1")},
		{Key: FromString("b"), Val: FromSlice([]*Node{FromString("x"), Null()})},
	})
	got := obj.ToGo()
	want := map[string]any{
		"a": "1",
		"b": []any{"x", nil},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("ToGo (-want +got):\n%s", d)
	}
}

func TestClone(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromSlice([]*Node{FromString("x")})},
	})
	cl := obj.Clone()
	if cl == obj {
		t.Fatal("clone aliases original")
	}
	cl.Values[0].Values[0].String = "changed"
	if obj.Values[0].Values[0].String != "x" {
		t.Error("clone shares value nodes with original")
	}
	if d := cmp.Diff(obj.ToGo(), FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromSlice([]*Node{FromString("x")})},
	}).ToGo()); d != "" {
		t.Errorf("original mutated:\n%s", d)
	}
}

func TestVisit(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromString("1")},
		{Key: FromString("b"), Val: FromSlice([]*Node{FromString("x")})},
	})
	var pre, post int
	err := obj.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// object, "1", array, "x"
	if pre != 4 || post != 4 {
		t.Errorf("pre = %d, post = %d, want 4, 4", pre, post)
	}
}
