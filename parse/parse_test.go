package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/domfmt/go-xmldoc/ir"
)

func TestParseJSONOrder(t *testing.T) {
	v, err := ParseString(`{"b": "2", "a": "1", "c": "3"}`)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		got[i] = f.String
	}
	want := []string{"b", "a", "c"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("field order (-want +got):\n%s", d)
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected any
	}{
		{"string", `"x"`, "x"},
		{"int", `42`, "42"},
		{"float", `1.5`, "1.5"},
		{"bool", `true`, "true"},
		{"null", `null`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.expected, v.ToGo()); d != "" {
				t.Errorf("(-want +got):\n%s", d)
			}
		})
	}
}

func TestParseNested(t *testing.T) {
	v, err := ParseString(`{"root": {"@id": "1", "a": ["x", "y"]}}`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"root": map[string]any{
			"@id": "1",
			"a":   []any{"x", "y"},
		},
	}
	if d := cmp.Diff(want, v.ToGo()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	root := ir.Get(v, "root")
	if root == nil || root.Type != ir.ObjectType {
		t.Fatal("missing root object")
	}
	if root.Parent != v {
		t.Error("parent back reference not set")
	}
}

func TestParseYAML(t *testing.T) {
	v, err := Parse([]byte("root:\n  \"@id\": \"1\"\n  a:\n  - x\n  - y\n"), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"root": map[string]any{
			"@id": "1",
			"a":   []any{"x", "y"},
		},
	}
	if d := cmp.Diff(want, v.ToGo()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestParseError(t *testing.T) {
	_, err := ParseString(`{"a": `)
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want %v", err, ErrParse)
	}
}
