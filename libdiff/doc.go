// Package libdiff provides diff computation for serialized documents.
//
// # Usage
//
//	// Compute diff between two ordered values
//	d := libdiff.Diff(oldValue, newValue)
//	if d == nil {
//	    // equal
//	}
//
// Diffs are themselves ordered values, so they can be rendered with
// the encode package or fed back to callers as JSON.
//
// # Related Packages
//
//   - github.com/domfmt/go-xmldoc/ir - ordered serialized values
//   - github.com/domfmt/go-xmldoc/encode - render values and documents
package libdiff
