package dom

import "fmt"

type NodeType int

const (
	DocumentNode NodeType = iota
	DocumentFragmentNode
	ElementNode
	AttributeNode
	TextNode
	CDATANode
	CommentNode
	PINode
	DoctypeNode
)

func (t NodeType) String() string {
	s, ok := map[NodeType]string{
		DocumentNode:         "Document",
		DocumentFragmentNode: "DocumentFragment",
		ElementNode:          "Element",
		AttributeNode:        "Attribute",
		TextNode:             "Text",
		CDATANode:            "CDATA",
		CommentNode:          "Comment",
		PINode:               "ProcessingInstruction",
		DoctypeNode:          "Doctype",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *NodeType) UnmarshalText(d []byte) error {
	tt, ok := map[string]NodeType{
		"Document":              DocumentNode,
		"DocumentFragment":      DocumentFragmentNode,
		"Element":               ElementNode,
		"Attribute":             AttributeNode,
		"Text":                  TextNode,
		"CDATA":                 CDATANode,
		"Comment":               CommentNode,
		"ProcessingInstruction": PINode,
		"Doctype":               DoctypeNode,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized node type %q", d)
	}
	*t = tt
	return nil
}

func NodeTypes() []NodeType {
	return []NodeType{
		DocumentNode,
		DocumentFragmentNode,
		ElementNode,
		AttributeNode,
		TextNode,
		CDATANode,
		CommentNode,
		PINode,
		DoctypeNode,
	}
}

// IsCharData reports whether nodes of this type carry a Data payload.
func (t NodeType) IsCharData() bool {
	switch t {
	case TextNode, CDATANode, CommentNode, PINode:
		return true
	default:
		return false
	}
}

// IsTextual reports whether nodes of this type contribute literal text
// content to their parent element.
func (t NodeType) IsTextual() bool {
	switch t {
	case TextNode, CDATANode:
		return true
	default:
		return false
	}
}
