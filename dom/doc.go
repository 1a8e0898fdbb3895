// Package dom holds the document tree: a closed set of node kinds
// discriminated by NodeType on one Node struct, with exclusive child
// ownership and weak parent/document back references.
//
// The package also carries the tree-order utilities every other
// package depends on (preorder traversal, tree positions,
// preceding/following tests), qualified-name and namespace
// validation, the chainable builder, and conversion from ordered
// values (see FromValue).
//
// Trees are not safe for concurrent mutation; serializing a tree
// while another goroutine mutates it is undefined.
//
// # Related Packages
//
//   - github.com/domfmt/go-xmldoc/encode - serialize trees
//   - github.com/domfmt/go-xmldoc/ir - the ordered value form
package dom
