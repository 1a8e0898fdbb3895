package dom

import (
	"testing"
)

func TestBuilderChain(t *testing.T) {
	doc := NewDocument()
	root := doc.Ele("root").Att("id", "1")
	root.Ele("a").Txt("x")
	root.Ele("a").Txt("y")

	if got := doc.DocumentElement(); got != root {
		t.Fatal("document element not set")
	}
	if root.Attribute("", "id") == nil {
		t.Fatal("id attribute missing")
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}
	a := root.Children[0]
	if a.Local != "a" || len(a.Children) != 1 || a.Children[0].Data != "x" {
		t.Errorf("first child = %s with %d children", a.Local, len(a.Children))
	}
	if a.Document != doc {
		t.Error("owner document not propagated")
	}
}

func TestBuilderUpDoc(t *testing.T) {
	doc := NewDocument()
	leaf := doc.Ele("root").Ele("a").Ele("b")
	if leaf.Up().Local != "a" {
		t.Errorf("Up() = %s, want a", leaf.Up().Local)
	}
	if leaf.Doc() != doc {
		t.Error("Doc() did not return the document")
	}
	if doc.Up() != doc {
		t.Error("Up() at the top should return the node itself")
	}
}

func TestBuilderNamespaces(t *testing.T) {
	doc := NewDocument()
	root := doc.Ele("root").
		Att("xmlns", "ns-default").
		Att("xmlns:p", "ns-p")
	child := root.Ele("p:item")
	if child.NS != "ns-p" {
		t.Errorf("child namespace = %q, want %q", child.NS, "ns-p")
	}
	if got := child.LookupNamespace(""); got != "ns-default" {
		t.Errorf("default namespace = %q, want %q", got, "ns-default")
	}
	if got := child.LookupNamespace("xml"); got != XMLNamespace {
		t.Errorf("xml namespace = %q", got)
	}
	if got := child.LookupNamespace("q"); got != "" {
		t.Errorf("unbound prefix resolved to %q", got)
	}
}

func TestBuilderNamespaceShadowing(t *testing.T) {
	doc := NewDocument()
	root := doc.Ele("root").Att("xmlns:p", "outer")
	inner := root.Ele("mid").Att("xmlns:p", "inner")
	if got := inner.LookupNamespace("p"); got != "inner" {
		t.Errorf("LookupNamespace(p) = %q, want inner", got)
	}
	if got := root.LookupNamespace("p"); got != "outer" {
		t.Errorf("LookupNamespace(p) = %q, want outer", got)
	}
}

func TestBuilderPanicsOnInvalidName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Ele with invalid name should panic")
		}
	}()
	NewDocument().Ele("not a name")
}

func TestBuilderMixedContent(t *testing.T) {
	doc := NewDocument()
	e := doc.Ele("root")
	e.Txt("before").Com("note").Dat("raw").Ins("pi", "data")
	types := []NodeType{TextNode, CommentNode, CDATANode, PINode}
	if len(e.Children) != len(types) {
		t.Fatalf("got %d children, want %d", len(e.Children), len(types))
	}
	for i, want := range types {
		if e.Children[i].Type != want {
			t.Errorf("child %d type = %s, want %s", i, e.Children[i].Type, want)
		}
	}
}

func TestSetAttributeReplaces(t *testing.T) {
	doc := NewDocument()
	e := doc.Ele("root").Att("id", "1").Att("id", "2")
	if len(e.Attrs) != 1 {
		t.Fatalf("got %d attributes, want 1", len(e.Attrs))
	}
	if e.Attrs[0].Value != "2" {
		t.Errorf("value = %q, want 2", e.Attrs[0].Value)
	}
	if !e.RemoveAttribute("", "id") {
		t.Error("RemoveAttribute did not find id")
	}
	if e.RemoveAttribute("", "id") {
		t.Error("RemoveAttribute found a removed attribute")
	}
}

func TestDetachReindexes(t *testing.T) {
	doc := NewDocument()
	root := doc.Ele("root")
	a := root.Ele("a")
	b := root.Ele("b")
	c := root.Ele("c")
	a.Detach()
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}
	if root.Children[0] != b || b.ParentIndex != 0 {
		t.Error("b not reindexed")
	}
	if root.Children[1] != c || c.ParentIndex != 1 {
		t.Error("c not reindexed")
	}
	if a.Parent != nil {
		t.Error("detached node keeps its parent")
	}
}

func TestInsertBefore(t *testing.T) {
	doc := NewDocument()
	root := doc.Ele("root")
	a := root.Ele("a")
	c := root.Ele("c")
	b := NewText("b")
	if _, err := root.InsertBefore(b, c); err != nil {
		t.Fatal(err)
	}
	if root.Children[1] != b || root.Children[2] != c {
		t.Error("wrong insertion order")
	}
	if _, err := a.InsertBefore(NewText("z"), c); err == nil {
		t.Error("expected hierarchy error for foreign reference node")
	}
}
