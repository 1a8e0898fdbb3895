package dom

import "fmt"

// Attr is a namespace-qualified attribute owned by one element. Attrs
// are not part of the element's child sequence. Null marks an
// attribute whose value was null in the source representation; the
// pre-serializer drops such attributes unless asked to keep them.
type Attr struct {
	NS     string
	Prefix string
	Local  string
	Value  string
	Null   bool
}

// Name returns the qualified name of the attribute.
func (a *Attr) Name() string {
	if a.Prefix == "" {
		return a.Local
	}
	return a.Prefix + ":" + a.Local
}

// Node is one node of the document tree. The Type tag selects which
// payload fields are meaningful. Children is the owning sequence;
// Parent, ParentIndex and Document are back references that never
// extend a node's lifetime.
type Node struct {
	Type        NodeType
	Parent      *Node
	ParentIndex int
	Document    *Node
	Children    []*Node

	// element
	Local  string
	Prefix string
	NS     string
	Attrs  []*Attr

	// character data; Target additionally for processing instructions,
	// Null for null-valued text from conversion
	Data   string
	Target string
	Null   bool

	// document
	Version    string
	Encoding   string
	Standalone *bool

	// doctype (Local holds the doctype name)
	PubID string
	SysID string
}

func NewDocument() *Node {
	return &Node{Type: DocumentNode, Version: "1.0"}
}

func NewFragment() *Node {
	return &Node{Type: DocumentFragmentNode}
}

// NewElement creates an element with a validated qualified name.
func NewElement(namespace, qualifiedName string) (*Node, error) {
	name, err := ExtractNames(namespace, qualifiedName)
	if err != nil {
		return nil, err
	}
	return &Node{
		Type:   ElementNode,
		NS:     name.Namespace,
		Prefix: name.Prefix,
		Local:  name.Local,
	}, nil
}

func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

func NewCDATA(data string) *Node {
	return &Node{Type: CDATANode, Data: data}
}

func NewComment(data string) *Node {
	return &Node{Type: CommentNode, Data: data}
}

func NewPI(target, data string) *Node {
	return &Node{Type: PINode, Target: target, Data: data}
}

func NewDoctype(name, pubID, sysID string) *Node {
	return &Node{Type: DoctypeNode, Local: name, PubID: pubID, SysID: sysID}
}

// QName returns the qualified name of an element node.
func (n *Node) QName() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// OwnerDocument returns the document owning n, or n itself when n is a
// document.
func (n *Node) OwnerDocument() *Node {
	if n.Type == DocumentNode {
		return n
	}
	return n.Document
}

// Root returns the topmost ancestor of n, which is n itself when it
// has no parent.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// AppendChild adds c as the last child of n, detaching it from any
// previous parent first. It returns c.
func (n *Node) AppendChild(c *Node) *Node {
	c.Detach()
	c.Parent = n
	c.ParentIndex = len(n.Children)
	n.Children = append(n.Children, c)
	c.setDocument(n.OwnerDocument())
	return c
}

// InsertBefore inserts c before ref among n's children. A nil ref
// appends.
func (n *Node) InsertBefore(c, ref *Node) (*Node, error) {
	if ref == nil {
		return n.AppendChild(c), nil
	}
	if ref.Parent != n {
		return nil, fmt.Errorf("%w: reference node is not a child", ErrHierarchy)
	}
	c.Detach()
	i := ref.ParentIndex
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = c
	c.Parent = n
	for j := i; j < len(n.Children); j++ {
		n.Children[j].ParentIndex = j
	}
	c.setDocument(n.OwnerDocument())
	return c, nil
}

// RemoveChild removes c from n's children and returns it.
func (n *Node) RemoveChild(c *Node) (*Node, error) {
	if c.Parent != n {
		return nil, fmt.Errorf("%w: node is not a child", ErrHierarchy)
	}
	c.Detach()
	return c, nil
}

// Detach removes n from its parent's child list, keeping sibling
// indices consistent. Detaching a parentless node is a no-op.
func (n *Node) Detach() {
	p := n.Parent
	if p == nil {
		return
	}
	i := n.ParentIndex
	p.Children = append(p.Children[:i], p.Children[i+1:]...)
	for j := i; j < len(p.Children); j++ {
		p.Children[j].ParentIndex = j
	}
	n.Parent = nil
	n.ParentIndex = 0
}

func (n *Node) setDocument(doc *Node) {
	if n.Type == DocumentNode || doc == nil {
		return
	}
	n.Document = doc
	for _, c := range n.Children {
		c.setDocument(doc)
	}
}

// SetAttribute sets a on n. An existing attribute with the same
// resolved (namespace, local name) pair is replaced in place, so
// attributes never duplicate.
func (n *Node) SetAttribute(a *Attr) {
	for i, old := range n.Attrs {
		if old.NS == a.NS && old.Local == a.Local {
			n.Attrs[i] = a
			return
		}
	}
	n.Attrs = append(n.Attrs, a)
}

// Attribute returns the attribute with the given resolved name, or
// nil.
func (n *Node) Attribute(namespace, local string) *Attr {
	for _, a := range n.Attrs {
		if a.NS == namespace && a.Local == local {
			return a
		}
	}
	return nil
}

// RemoveAttribute removes the attribute with the given resolved name
// and reports whether one was present.
func (n *Node) RemoveAttribute(namespace, local string) bool {
	for i, a := range n.Attrs {
		if a.NS == namespace && a.Local == local {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// DocumentElement returns the document element of a document node, or
// nil.
func (n *Node) DocumentElement() *Node {
	for _, c := range n.Children {
		if c.Type == ElementNode {
			return c
		}
	}
	return nil
}

// Doctype returns the doctype child of a document node, or nil.
func (n *Node) Doctype() *Node {
	for _, c := range n.Children {
		if c.Type == DoctypeNode {
			return c
		}
	}
	return nil
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Local = n.Local
	dst.Prefix = n.Prefix
	dst.NS = n.NS
	dst.Data = n.Data
	dst.Target = n.Target
	dst.Null = n.Null
	dst.Version = n.Version
	dst.Encoding = n.Encoding
	if n.Standalone != nil {
		v := *n.Standalone
		dst.Standalone = &v
	}
	dst.PubID = n.PubID
	dst.SysID = n.SysID
	dst.Attrs = make([]*Attr, len(n.Attrs))
	for i, a := range n.Attrs {
		aa := *a
		dst.Attrs[i] = &aa
	}
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		cc := &Node{}
		c.CloneTo(cc)
		cc.Parent = dst
		cc.ParentIndex = i
		dst.Children[i] = cc
	}
	return dst
}
