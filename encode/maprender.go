package encode

import (
	"strings"

	"github.com/domfmt/go-xmldoc/dom"
	"github.com/domfmt/go-xmldoc/ir"
)

// Value serializes node into the ordered map form: object entries
// reproduce document order exactly.
func Value(node *dom.Node, opts ...Option) (*ir.Node, error) {
	es := newEncState(opts...)
	pre := preSerialize(node, es, es.level, rootScope())
	return valueOf(pre, es), nil
}

// Object is Value flattened to plain Go containers. Map iteration
// order is not guaranteed; use Value when order matters.
func Object(node *dom.Node, opts ...Option) (any, error) {
	v, err := Value(node, opts...)
	if err != nil {
		return nil, err
	}
	return v.ToGo(), nil
}

func valueOf(pre *PreNode, es *EncState) *ir.Node {
	n := pre.Node
	switch n.Type {
	case dom.DocumentNode, dom.DocumentFragmentNode:
		obj := ir.FromKeyVals(nil)
		for _, c := range pre.Children {
			if c.Node.Type == dom.DoctypeNode {
				continue
			}
			addEntry(obj, childKey(c, es), childValue(c, es))
		}
		return obj
	case dom.ElementNode:
		if collapses(pre) {
			return ir.FromString(textContent(pre))
		}
		obj := ir.FromKeyVals(nil)
		for _, r := range pre.Attributes {
			addEntry(obj, es.attMarker+r.Name, recValue(r))
		}
		for _, r := range pre.Namespaces {
			addEntry(obj, es.attMarker+r.Name, ir.FromString(r.Value))
		}
		for _, c := range pre.Children {
			addEntry(obj, childKey(c, es), childValue(c, es))
		}
		return obj
	default:
		return ir.FromString(n.Data)
	}
}

// collapses reports whether an element folds to a plain string: no
// attributes, no namespace declarations, and only text-like children.
func collapses(pre *PreNode) bool {
	if len(pre.Attributes) != 0 || len(pre.Namespaces) != 0 {
		return false
	}
	if len(pre.Children) == 0 {
		return false
	}
	for _, c := range pre.Children {
		if !c.Node.Type.IsTextual() || c.Node.Null {
			return false
		}
	}
	return true
}

func textContent(pre *PreNode) string {
	var b strings.Builder
	for _, c := range pre.Children {
		b.WriteString(c.Node.Data)
	}
	return b.String()
}

func childKey(c *PreNode, es *EncState) string {
	switch c.Node.Type {
	case dom.ElementNode:
		return c.Name
	case dom.TextNode:
		return es.textMarker
	case dom.CDATANode:
		return es.cdataMarker
	case dom.CommentNode:
		return es.commentMarker
	case dom.PINode:
		return es.piMarker + c.Node.Target
	default:
		return es.textMarker
	}
}

func childValue(c *PreNode, es *EncState) *ir.Node {
	if c.Node.Type == dom.ElementNode {
		return valueOf(c, es)
	}
	if c.Node.Null {
		return ir.Null()
	}
	return ir.FromString(c.Node.Data)
}

func recValue(r Rec) *ir.Node {
	if r.Null {
		return ir.Null()
	}
	return ir.FromString(r.Value)
}

// addEntry appends an object entry. A repeated key turns into an
// array at the position of its first occurrence, preserving order of
// occurrence; entries are never overwritten.
func addEntry(obj *ir.Node, key string, val *ir.Node) {
	for i, f := range obj.Fields {
		if f.String != key {
			continue
		}
		cur := obj.Values[i]
		if cur.Type == ir.ArrayType {
			cur.Append(nil, val)
			return
		}
		arr := ir.FromSlice([]*ir.Node{cur, val})
		arr.Parent = obj
		arr.ParentIndex = i
		arr.ParentField = key
		obj.Values[i] = arr
		return
	}
	obj.Append(ir.FromString(key), val)
}
