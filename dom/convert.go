package dom

import (
	"fmt"
	"os"
	"strings"

	"github.com/domfmt/go-xmldoc/debug"
	"github.com/domfmt/go-xmldoc/ir"
)

// ConvertOptions holds the marker strings that map object keys to
// node kinds when building a tree from an ordered value.
type ConvertOptions struct {
	AttMarker     string
	TextMarker    string
	CDataMarker   string
	CommentMarker string
	PIMarker      string
}

type ConvertOption func(*ConvertOptions)

func AttMarker(v string) ConvertOption {
	return func(co *ConvertOptions) { co.AttMarker = v }
}
func TextMarker(v string) ConvertOption {
	return func(co *ConvertOptions) { co.TextMarker = v }
}
func CDataMarker(v string) ConvertOption {
	return func(co *ConvertOptions) { co.CDataMarker = v }
}
func CommentMarker(v string) ConvertOption {
	return func(co *ConvertOptions) { co.CommentMarker = v }
}
func PIMarker(v string) ConvertOption {
	return func(co *ConvertOptions) { co.PIMarker = v }
}

func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		AttMarker:     "@",
		TextMarker:    "#",
		CDataMarker:   "$",
		CommentMarker: "!",
		PIMarker:      "?",
	}
}

// FromValue builds a document tree from an ordered value. Object keys
// become elements unless they carry a marker: attribute "@name", text
// "#", CDATA "$", comment "!", processing instruction "?target".
// Array values repeat their key; null values become null-flagged
// attributes or text nodes, filtered later during pre-serialization
// unless the keep-null options are set.
func FromValue(v *ir.Node, opts ...ConvertOption) (*Node, error) {
	co := defaultConvertOptions()
	for _, opt := range opts {
		opt(co)
	}
	doc := NewDocument()
	if err := convertInto(doc, v, co); err != nil {
		return nil, err
	}
	return doc, nil
}

func convertInto(parent *Node, v *ir.Node, co *ConvertOptions) error {
	switch v.Type {
	case ir.ObjectType:
		for i, f := range v.Fields {
			if err := convertEntry(parent, f.String, v.Values[i], co); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayType:
		for _, vv := range v.Values {
			if err := convertInto(parent, vv, co); err != nil {
				return err
			}
		}
		return nil
	case ir.StringType, ir.NullType:
		return appendCharData(parent, v, NewText)
	default:
		return fmt.Errorf("%w: unexpected value type %s", ErrConvert, v.Type)
	}
}

func convertEntry(parent *Node, key string, val *ir.Node, co *ConvertOptions) error {
	if debug.Convert() {
		fmt.Fprintf(os.Stderr, "convert: key %q type %s under %s\n", key, val.Type, parent.Type)
	}
	switch {
	case len(key) > len(co.AttMarker) && strings.HasPrefix(key, co.AttMarker):
		return convertAttr(parent, key[len(co.AttMarker):], val)
	case key == co.TextMarker:
		return appendCharData(parent, val, NewText)
	case key == co.CDataMarker:
		return appendCharData(parent, val, NewCDATA)
	case key == co.CommentMarker:
		return appendCharData(parent, val, NewComment)
	case len(key) > len(co.PIMarker) && strings.HasPrefix(key, co.PIMarker):
		target := key[len(co.PIMarker):]
		return appendCharData(parent, val, func(data string) *Node {
			return NewPI(target, data)
		})
	case val.Type == ir.ArrayType:
		for _, vv := range val.Values {
			if err := convertElement(parent, key, vv, co); err != nil {
				return err
			}
		}
		return nil
	default:
		return convertElement(parent, key, val, co)
	}
}

func convertAttr(parent *Node, qualifiedName string, val *ir.Node) error {
	name, err := ExtractNames(parent.namespaceFor(qualifiedName), qualifiedName)
	if err != nil {
		return err
	}
	a := &Attr{NS: name.Namespace, Prefix: name.Prefix, Local: name.Local}
	switch val.Type {
	case ir.StringType:
		a.Value = val.String
	case ir.NullType:
		a.Null = true
	default:
		return fmt.Errorf("%w: attribute %q must have scalar value, got %s", ErrConvert, qualifiedName, val.Type)
	}
	parent.SetAttribute(a)
	return nil
}

// convertElement defers namespace resolution until the element's own
// xmlns attributes are in place, so a prefix may be declared on the
// element that uses it.
func convertElement(parent *Node, qualifiedName string, val *ir.Node, co *ConvertOptions) error {
	if err := ValidateQName(qualifiedName); err != nil {
		return err
	}
	e := &Node{Type: ElementNode, Local: qualifiedName}
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		e.Prefix = qualifiedName[:i]
		e.Local = qualifiedName[i+1:]
	}
	parent.AppendChild(e)
	if err := convertInto(e, val, co); err != nil {
		return err
	}
	if e.NS == "" {
		e.NS = e.LookupNamespace(e.Prefix)
	}
	if e.Prefix != "" && e.NS == "" {
		return fmt.Errorf("%w: prefix %q is not bound to a namespace", ErrNamespace, e.Prefix)
	}
	return nil
}

func appendCharData(parent *Node, val *ir.Node, mk func(string) *Node) error {
	switch val.Type {
	case ir.StringType:
		parent.AppendChild(mk(val.String))
		return nil
	case ir.NullType:
		c := mk("")
		c.Null = true
		parent.AppendChild(c)
		return nil
	case ir.ArrayType:
		for _, vv := range val.Values {
			if err := appendCharData(parent, vv, mk); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: expected scalar content, got %s", ErrConvert, val.Type)
	}
}
