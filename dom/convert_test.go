package dom

import (
	"errors"
	"testing"

	"github.com/domfmt/go-xmldoc/ir"
)

func obj(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs) }
func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(k), Val: v}
}

func TestFromValueBasic(t *testing.T) {
	v := obj(kv("root", obj(
		kv("@id", ir.FromString("1")),
		kv("a", ir.FromString("x")),
	)))
	doc, err := FromValue(v)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.DocumentElement()
	if root == nil || root.Local != "root" {
		t.Fatal("missing root element")
	}
	id := root.Attribute("", "id")
	if id == nil || id.Value != "1" {
		t.Errorf("id attribute = %+v", id)
	}
	if len(root.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(root.Children))
	}
	a := root.Children[0]
	if a.Local != "a" || len(a.Children) != 1 || a.Children[0].Data != "x" {
		t.Errorf("unexpected child %+v", a)
	}
}

func TestFromValueMarkers(t *testing.T) {
	v := obj(kv("root", obj(
		kv("#", ir.FromString("text")),
		kv("$", ir.FromString("cdata")),
		kv("!", ir.FromString("comment")),
		kv("?pi", ir.FromString("data")),
	)))
	doc, err := FromValue(v)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.DocumentElement()
	types := []NodeType{TextNode, CDATANode, CommentNode, PINode}
	if len(root.Children) != len(types) {
		t.Fatalf("got %d children, want %d", len(root.Children), len(types))
	}
	for i, want := range types {
		if root.Children[i].Type != want {
			t.Errorf("child %d type = %s, want %s", i, root.Children[i].Type, want)
		}
	}
	pi := root.Children[3]
	if pi.Target != "pi" || pi.Data != "data" {
		t.Errorf("pi = %q %q", pi.Target, pi.Data)
	}
}

func TestFromValueRepeatedKey(t *testing.T) {
	v := obj(kv("root", obj(
		kv("a", ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromString("y")})),
	)))
	doc, err := FromValue(v)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.DocumentElement()
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}
	for i, want := range []string{"x", "y"} {
		c := root.Children[i]
		if c.Local != "a" || c.Children[0].Data != want {
			t.Errorf("child %d = %s %q", i, c.Local, c.Children[0].Data)
		}
	}
}

func TestFromValueNulls(t *testing.T) {
	v := obj(kv("root", obj(
		kv("@id", ir.Null()),
		kv("#", ir.Null()),
	)))
	doc, err := FromValue(v)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.DocumentElement()
	id := root.Attribute("", "id")
	if id == nil || !id.Null {
		t.Errorf("id = %+v, want null attribute", id)
	}
	if len(root.Children) != 1 || !root.Children[0].Null {
		t.Error("want one null text child")
	}
}

func TestFromValueNamespaceOnSelf(t *testing.T) {
	v := obj(kv("p:root", obj(
		kv("@xmlns:p", ir.FromString("ns-p")),
	)))
	doc, err := FromValue(v)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.DocumentElement()
	if root.NS != "ns-p" {
		t.Errorf("namespace = %q, want ns-p", root.NS)
	}
}

func TestFromValueUnboundPrefix(t *testing.T) {
	v := obj(kv("p:root", obj(
		kv("a", ir.FromString("x")),
	)))
	_, err := FromValue(v)
	if !errors.Is(err, ErrNamespace) {
		t.Errorf("err = %v, want %v", err, ErrNamespace)
	}
}

func TestFromValueInvalidName(t *testing.T) {
	v := obj(kv("not a name", ir.FromString("x")))
	_, err := FromValue(v)
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("err = %v, want %v", err, ErrInvalidCharacter)
	}
}

func TestFromValueCustomMarkers(t *testing.T) {
	v := obj(kv("root", obj(
		kv("+id", ir.FromString("1")),
		kv("~", ir.FromString("text")),
	)))
	doc, err := FromValue(v, AttMarker("+"), TextMarker("~"))
	if err != nil {
		t.Fatal(err)
	}
	root := doc.DocumentElement()
	if root.Attribute("", "id") == nil {
		t.Error("custom attribute marker not honored")
	}
	if len(root.Children) != 1 || root.Children[0].Type != TextNode {
		t.Error("custom text marker not honored")
	}
}

func TestFromValueAttrNonScalar(t *testing.T) {
	v := obj(kv("root", obj(
		kv("@id", obj(kv("x", ir.FromString("1")))),
	)))
	_, err := FromValue(v)
	if !errors.Is(err, ErrConvert) {
		t.Errorf("err = %v, want %v", err, ErrConvert)
	}
}
