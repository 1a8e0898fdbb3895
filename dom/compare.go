package dom

import "cmp"

// Compare orders a and b by document order within the tree rooted at
// a's root. The result is 0 when the nodes are the same node or when
// either has no position in that tree.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	root := a.Root()
	posA := TreePosition(root, a)
	posB := TreePosition(root, b)
	if posA == -1 || posB == -1 {
		return 0
	}
	return cmp.Compare(posA, posB)
}

// Equal reports structural equality of two nodes: same kind, names
// and payloads, attributes as an unordered set, children pairwise
// equal in order. Parent and document links are not compared.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	if a.Local != b.Local || a.Prefix != b.Prefix || a.NS != b.NS {
		return false
	}
	if a.Data != b.Data || a.Target != b.Target || a.Null != b.Null {
		return false
	}
	if a.Version != b.Version || a.Encoding != b.Encoding {
		return false
	}
	if (a.Standalone == nil) != (b.Standalone == nil) {
		return false
	}
	if a.Standalone != nil && *a.Standalone != *b.Standalone {
		return false
	}
	if a.PubID != b.PubID || a.SysID != b.SysID {
		return false
	}
	if !equalAttrs(a.Attrs, b.Attrs) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Attributes are an unordered set per XML semantics, so order does not
// matter for equality even though stored order matters for output.
func equalAttrs(as, bs []*Attr) bool {
	if len(as) != len(bs) {
		return false
	}
	for _, a := range as {
		found := false
		for _, b := range bs {
			if a.NS == b.NS && a.Local == b.Local {
				found = a.Value == b.Value && a.Null == b.Null && a.Prefix == b.Prefix
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
