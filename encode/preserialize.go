package encode

import (
	"fmt"
	"os"

	"github.com/domfmt/go-xmldoc/debug"
	"github.com/domfmt/go-xmldoc/dom"
)

// Rec is one resolved attribute or namespace-declaration record.
type Rec struct {
	Name  string
	Value string
	Null  bool
}

// PreNode is the pre-serialized form of one source node: a weak
// reference to the node, its nesting level, and its resolved name,
// attributes, namespace declarations and children. A PreNode tree is
// built once per serialization call and never mutated afterwards.
type PreNode struct {
	Node  *dom.Node
	Level int

	Name string
	NS   string

	Attributes []Rec
	Namespaces []Rec
	Children   []*PreNode
}

// nsScope chains in-scope namespace declarations; nearer declarations
// shadow farther ones.
type nsScope struct {
	bindings map[string]string
	parent   *nsScope
}

func rootScope() *nsScope {
	return &nsScope{
		bindings: map[string]string{
			"xml":   dom.XMLNamespace,
			"xmlns": dom.XMLNSNamespace,
		},
	}
}

func (s *nsScope) child() *nsScope {
	return &nsScope{bindings: map[string]string{}, parent: s}
}

func (s *nsScope) get(prefix string) (string, bool) {
	if v, ok := s.bindings[prefix]; ok {
		return v, ok
	}
	if s.parent != nil {
		return s.parent.get(prefix)
	}
	return "", false
}

// PreSerialize walks node's subtree once, in document order, and
// returns its pre-serialized form. The walk only reads the tree;
// identical input and options yield structurally equal results.
func PreSerialize(node *dom.Node, opts ...Option) *PreNode {
	es := newEncState(opts...)
	return preSerialize(node, es, es.level, rootScope())
}

func preSerialize(n *dom.Node, es *EncState, level int, scope *nsScope) *PreNode {
	pre := &PreNode{Node: n, Level: level}
	switch n.Type {
	case dom.DocumentNode, dom.DocumentFragmentNode:
		for _, c := range n.Children {
			if c.Null && !es.keepNullNodes {
				continue
			}
			pre.Children = append(pre.Children, preSerialize(c, es, level, scope))
		}
	case dom.ElementNode:
		scope = scope.child()
		for _, a := range n.Attrs {
			if !isNSDecl(a) {
				continue
			}
			if a.Null && !es.keepNullAttributes {
				continue
			}
			if a.Prefix == "xmlns" {
				scope.bindings[a.Local] = a.Value
			} else {
				scope.bindings[""] = a.Value
			}
			pre.Namespaces = append(pre.Namespaces, Rec{Name: a.Name(), Value: a.Value})
		}
		for _, a := range n.Attrs {
			if isNSDecl(a) {
				continue
			}
			if a.Null && !es.keepNullAttributes {
				continue
			}
			pre.Attributes = append(pre.Attributes, Rec{Name: a.Name(), Value: a.Value, Null: a.Null})
		}
		pre.Name = n.QName()
		pre.NS = n.NS
		if pre.NS == "" {
			if ns, ok := scope.get(n.Prefix); ok {
				pre.NS = ns
			}
		}
		for _, c := range n.Children {
			if c.Null && !es.keepNullNodes {
				continue
			}
			pre.Children = append(pre.Children, preSerialize(c, es, level+1, scope))
		}
	case dom.PINode:
		pre.Name = n.Target
	case dom.DoctypeNode:
		pre.Name = n.Local
	}
	if debug.PreSerialize() {
		fmt.Fprintf(os.Stderr, "preserialize: %s %q level %d atts %d ns %d\n",
			n.Type, pre.Name, pre.Level, len(pre.Attributes), len(pre.Namespaces))
	}
	return pre
}

func isNSDecl(a *dom.Attr) bool {
	if a.Prefix == "xmlns" {
		return true
	}
	return a.Prefix == "" && a.Local == "xmlns"
}
