// Package xmldoc builds XML document trees and serializes them to
// XML text, ordered maps, JSON and YAML.
//
// # Usage
//
//	// Build a document with the chaining builder
//	doc := xmldoc.Create()
//	doc.Ele("root").Att("id", "1").Ele("a").Txt("x")
//	s, err := xmldoc.String(doc, encode.Pretty(true))
//
//	// Round-trip through JSON
//	doc, err := xmldoc.FromJSON([]byte(`{"root": {"@id": "1"}}`))
//	s, err := xmldoc.JSONString(doc)
//
// The subpackages carry the full surface: dom for the tree and
// builder, encode for rendering, parse for reading JSON and YAML,
// ir for the ordered value form.
package xmldoc

import (
	"github.com/domfmt/go-xmldoc/dom"
	"github.com/domfmt/go-xmldoc/encode"
	"github.com/domfmt/go-xmldoc/ir"
	"github.com/domfmt/go-xmldoc/parse"
)

// Create returns an empty document ready for builder chaining.
func Create() *dom.Node {
	return dom.NewDocument()
}

// CreateFragment returns an empty document fragment.
func CreateFragment() *dom.Node {
	return dom.NewFragment()
}

// FromValue builds a document from an ordered value, interpreting
// marker-prefixed keys as attributes, text, CDATA, comments and
// processing instructions.
func FromValue(v *ir.Node, opts ...dom.ConvertOption) (*dom.Node, error) {
	return dom.FromValue(v, opts...)
}

// FromJSON parses JSON text and builds a document from it.
func FromJSON(d []byte, opts ...dom.ConvertOption) (*dom.Node, error) {
	v, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	return dom.FromValue(v, opts...)
}

// FromYAML parses YAML text and builds a document from it.
func FromYAML(d []byte, opts ...dom.ConvertOption) (*dom.Node, error) {
	v, err := parse.Parse(d, parse.ParseYAML())
	if err != nil {
		return nil, err
	}
	return dom.FromValue(v, opts...)
}

// String renders node as XML text.
func String(node *dom.Node, opts ...encode.Option) (string, error) {
	return encode.String(node, opts...)
}

// JSONString renders node as JSON text.
func JSONString(node *dom.Node, opts ...encode.Option) (string, error) {
	return encode.JSONString(node, opts...)
}

// YAMLString renders node as YAML text.
func YAMLString(node *dom.Node, opts ...encode.Option) (string, error) {
	return encode.YAMLString(node, opts...)
}

// Serialize renders node according to the encode format option.
func Serialize(node *dom.Node, opts ...encode.Option) (any, error) {
	return encode.Serialize(node, opts...)
}
