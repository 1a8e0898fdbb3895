package encode

import (
	"io"
	"strings"

	"github.com/domfmt/go-xmldoc/dom"
	"github.com/domfmt/go-xmldoc/ir"
	"github.com/domfmt/go-xmldoc/token"
)

// EncodeJSON writes node as JSON text. The ordered map form is always
// used internally, whatever the caller-visible format option says, so
// entry order reproduces document order.
func EncodeJSON(node *dom.Node, w io.Writer, opts ...Option) error {
	es := newEncState(opts...)
	pre := preSerialize(node, es, es.level, rootScope())
	var b strings.Builder
	jsonValue(&b, valueOf(pre, es), es.level, es)
	_, err := io.WriteString(w, b.String())
	return err
}

// EncodeValue writes an ordered value as JSON text directly, without
// going through a document tree.
func EncodeValue(v *ir.Node, w io.Writer, opts ...Option) error {
	es := newEncState(opts...)
	var b strings.Builder
	jsonValue(&b, v, es.level, es)
	_, err := io.WriteString(w, b.String())
	return err
}

func jsonValue(b *strings.Builder, v *ir.Node, level int, es *EncState) {
	switch v.Type {
	case ir.StringType:
		b.WriteString(token.Quote(v.String))
	case ir.NullType:
		b.WriteString("null")
	case ir.ArrayType:
		b.WriteString("[")
		for i, vv := range v.Values {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(jsonNL(es, level+1))
			jsonValue(b, vv, level+1, es)
		}
		if len(v.Values) > 0 {
			b.WriteString(jsonNL(es, level))
		}
		b.WriteString("]")
	case ir.ObjectType:
		// a leaf object (at most one scalar descendant) renders
		// compact on one line even in pretty mode
		leaf := v.ScalarCount() <= 1
		b.WriteString("{")
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteString(",")
			}
			if leaf && es.pretty {
				b.WriteString(" ")
			} else {
				b.WriteString(jsonNL(es, level+1))
			}
			b.WriteString(token.Quote(f.String))
			b.WriteString(":")
			jsonValue(b, v.Values[i], level+1, es)
		}
		if len(v.Fields) > 0 {
			if leaf && es.pretty {
				b.WriteString(" ")
			} else {
				b.WriteString(jsonNL(es, level))
			}
		}
		b.WriteString("}")
	}
}

func jsonNL(es *EncState, level int) string {
	if !es.pretty {
		return ""
	}
	return es.newline + strings.Repeat(es.indent, es.offset+level)
}
