package dom

// EachDescendant walks the descendants of n in preorder (children in
// stored order before grandchildren), excluding n itself. It stops at
// the first descendant for which visit returns true and returns that
// node, or nil when the walk is exhausted.
func EachDescendant(n *Node, visit func(*Node) bool) *Node {
	for _, c := range n.Children {
		if visit(c) {
			return c
		}
		if found := EachDescendant(c, visit); found != nil {
			return found
		}
	}
	return nil
}

// IsDescendantOf reports whether other appears anywhere in n's
// subtree.
func IsDescendantOf(n, other *Node) bool {
	return EachDescendant(n, func(d *Node) bool { return d == other }) != nil
}

// IsAncestorOf reports whether other is an ancestor of n at any
// depth.
func IsAncestorOf(n, other *Node) bool {
	return IsDescendantOf(other, n)
}

// TreePosition returns the 1-based preorder index of n among the
// descendants of root, or -1 when n is not in root's subtree.
func TreePosition(root, n *Node) int {
	pos := 0
	found := EachDescendant(root, func(d *Node) bool {
		pos++
		return d == n
	})
	if found == nil {
		return -1
	}
	return pos
}

// IsPreceding reports whether other comes before n in the tree of n's
// root. It is false, not an error, when either node has no position
// in that tree.
func IsPreceding(n, other *Node) bool {
	root := n.Root()
	nodePos := TreePosition(root, n)
	otherPos := TreePosition(root, other)
	if nodePos == -1 || otherPos == -1 {
		return false
	}
	return otherPos < nodePos
}

// IsFollowing reports whether other comes after n in the tree of n's
// root. It is false, not an error, when either node has no position
// in that tree.
func IsFollowing(n, other *Node) bool {
	root := n.Root()
	nodePos := TreePosition(root, n)
	otherPos := TreePosition(root, other)
	if nodePos == -1 || otherPos == -1 {
		return false
	}
	return otherPos > nodePos
}
