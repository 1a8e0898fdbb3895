// Package parse parses JSON and YAML text into ordered values.
//
// # Usage
//
//	// Parse JSON text
//	node, err := parse.Parse([]byte(`{"root": {"@id": "1", "a": "x"}}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`{"a": ["x", "y"]}`)
//
//	// Parse YAML
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// Parsed values feed dom.FromValue to build document trees.
//
// # Related Packages
//
//   - github.com/domfmt/go-xmldoc/ir - ordered serialized values
//   - github.com/domfmt/go-xmldoc/dom - document tree construction
//   - github.com/domfmt/go-xmldoc/encode - render trees back to text
package parse
