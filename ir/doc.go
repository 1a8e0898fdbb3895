// Package ir is the serialized value representation produced by the
// map renderer: strings, arrays, and insertion-ordered objects.
//
// Objects keep parallel Fields and Values slices so that field order
// reproduces document order exactly. The plain-Go shape returned by
// Node.ToGo drops that guarantee.
//
// # Related Packages
//
//   - github.com/domfmt/go-xmldoc/dom - the document tree
//   - github.com/domfmt/go-xmldoc/encode - renderers producing ir values
//   - github.com/domfmt/go-xmldoc/parse - parse JSON/YAML text to ir values
package ir
