// Package encode serializes document trees to XML text and to the
// map, object, JSON and YAML forms.
//
// # Usage
//
//	// Build a document and render it as XML
//	doc := dom.NewDocument()
//	doc.Ele("root").Att("id", "1").Ele("a").Txt("x")
//	s, err := encode.String(doc, encode.Pretty(true))
//
//	// Render the ordered map form
//	v, err := encode.Value(doc)
//
//	// Render JSON text
//	s, err := encode.JSONString(doc, encode.Pretty(true))
//
// All renderers share one pre-serialization pass over the tree; see
// PreSerialize.
//
// # Related Packages
//
//   - github.com/domfmt/go-xmldoc/dom - document tree and builder
//   - github.com/domfmt/go-xmldoc/ir - ordered serialized values
//   - github.com/domfmt/go-xmldoc/parse - parse map-form text to values
package encode
