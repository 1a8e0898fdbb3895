package dom

import "strings"

// The chainable builder. Name-taking methods validate through
// ExtractNames and panic on invalid input; use NewElement and
// SetAttribute directly when errors must be handled.

// Ele appends a child element with the given qualified name and
// returns it, so calls chain downward. A prefix resolves against the
// namespace declarations in scope at n.
func (n *Node) Ele(qualifiedName string) *Node {
	return n.EleNS(n.namespaceFor(qualifiedName), qualifiedName)
}

// EleNS is Ele with an explicit namespace.
func (n *Node) EleNS(namespace, qualifiedName string) *Node {
	e, err := NewElement(namespace, qualifiedName)
	if err != nil {
		panic(err)
	}
	n.AppendChild(e)
	return e
}

// Att sets an attribute on n and returns n.
func (n *Node) Att(qualifiedName, value string) *Node {
	return n.AttNS(n.namespaceFor(qualifiedName), qualifiedName, value)
}

// AttNS is Att with an explicit namespace.
func (n *Node) AttNS(namespace, qualifiedName, value string) *Node {
	name, err := ExtractNames(namespace, qualifiedName)
	if err != nil {
		panic(err)
	}
	n.SetAttribute(&Attr{
		NS:     name.Namespace,
		Prefix: name.Prefix,
		Local:  name.Local,
		Value:  value,
	})
	return n
}

// namespaceFor supplies the fixed namespaces implied by the reserved
// names and otherwise resolves a prefix against the declarations in
// scope at n.
func (n *Node) namespaceFor(qualifiedName string) string {
	if qualifiedName == "xmlns" || strings.HasPrefix(qualifiedName, "xmlns:") {
		return XMLNSNamespace
	}
	if strings.HasPrefix(qualifiedName, "xml:") {
		return XMLNamespace
	}
	i := strings.IndexByte(qualifiedName, ':')
	if i < 0 {
		return ""
	}
	return n.LookupNamespace(qualifiedName[:i])
}

// LookupNamespace resolves a namespace prefix against the xmlns
// declarations visible at n, nearest declaration first. An empty
// prefix looks up the default namespace. It returns "" when the
// prefix is not bound.
func (n *Node) LookupNamespace(prefix string) string {
	for a := n; a != nil; a = a.Parent {
		for _, at := range a.Attrs {
			if prefix != "" && at.Prefix == "xmlns" && at.Local == prefix {
				return at.Value
			}
			if prefix == "" && at.Prefix == "" && at.Local == "xmlns" {
				return at.Value
			}
		}
	}
	switch prefix {
	case "xml":
		return XMLNamespace
	case "xmlns":
		return XMLNSNamespace
	}
	return ""
}

// Txt appends a text child and returns n.
func (n *Node) Txt(data string) *Node {
	n.AppendChild(NewText(data))
	return n
}

// Dat appends a CDATA section child and returns n.
func (n *Node) Dat(data string) *Node {
	n.AppendChild(NewCDATA(data))
	return n
}

// Com appends a comment child and returns n.
func (n *Node) Com(data string) *Node {
	n.AppendChild(NewComment(data))
	return n
}

// Ins appends a processing instruction child and returns n.
func (n *Node) Ins(target, data string) *Node {
	n.AppendChild(NewPI(target, data))
	return n
}

// Dtd appends a doctype child and returns n.
func (n *Node) Dtd(name, pubID, sysID string) *Node {
	n.AppendChild(NewDoctype(name, pubID, sysID))
	return n
}

// Up returns the parent, or n itself at the top of the tree.
func (n *Node) Up() *Node {
	if n.Parent == nil {
		return n
	}
	return n.Parent
}

// Doc returns the owning document, or n itself when detached.
func (n *Node) Doc() *Node {
	if d := n.OwnerDocument(); d != nil {
		return d
	}
	return n
}
