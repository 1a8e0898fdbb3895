package encode

import (
	"fmt"

	"github.com/domfmt/go-xmldoc/dom"
	"github.com/domfmt/go-xmldoc/format"
)

// Serialize renders node according to the format option: a string for
// the xml, json and yaml formats, an ordered *ir.Node for map, plain
// Go containers for object.
func Serialize(node *dom.Node, opts ...Option) (any, error) {
	es := newEncState(opts...)
	switch es.format {
	case format.XMLFormat:
		return String(node, opts...)
	case format.MapFormat:
		return Value(node, opts...)
	case format.ObjectFormat:
		return Object(node, opts...)
	case format.JSONFormat:
		return JSONString(node, opts...)
	case format.YAMLFormat:
		return YAMLString(node, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}
