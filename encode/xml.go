package encode

import (
	"io"
	"strings"

	"github.com/domfmt/go-xmldoc/dom"
	"github.com/domfmt/go-xmldoc/token"
)

// Encode writes node and its subtree as XML text.
func Encode(node *dom.Node, w io.Writer, opts ...Option) error {
	es := newEncState(opts...)
	pre := preSerialize(node, es, es.level, rootScope())
	xw := &xmlWriter{w: w, es: es}
	xw.node(pre)
	return xw.err
}

type xmlWriter struct {
	w       io.Writer
	es      *EncState
	started bool
	err     error
}

func (xw *xmlWriter) write(s string) {
	if xw.err != nil || s == "" {
		return
	}
	_, xw.err = io.WriteString(xw.w, s)
}

// line emits one output line at the given level: the newline comes
// before every line but the first, so output never ends in a
// newline.
func (xw *xmlWriter) line(level int, s string) {
	if xw.es.pretty {
		if xw.started {
			xw.write(xw.es.newline)
		}
		xw.write(xw.indent(level))
	}
	xw.write(s)
	xw.started = true
}

func (xw *xmlWriter) indent(level int) string {
	if !xw.es.pretty {
		return ""
	}
	return strings.Repeat(xw.es.indent, xw.es.offset+level)
}

func (xw *xmlWriter) color(kind dom.NodeType, attr ColorAttr, v string) string {
	if xw.es.Color == nil {
		return v
	}
	return xw.es.Color(kind, attr, v)
}

func (xw *xmlWriter) sep(s string) string {
	return xw.color(dom.ElementNode, SepColor, s)
}

func (xw *xmlWriter) node(pre *PreNode) {
	es := xw.es
	n := pre.Node
	switch n.Type {
	case dom.DocumentNode:
		if !es.headless {
			xw.line(pre.Level, xw.declaration(n))
		}
		for _, c := range pre.Children {
			if es.headless && c.Node.Type == dom.DoctypeNode {
				continue
			}
			xw.node(c)
		}
	case dom.DocumentFragmentNode:
		for _, c := range pre.Children {
			xw.node(c)
		}
	case dom.ElementNode:
		xw.element(pre)
	case dom.TextNode:
		xw.line(pre.Level, xw.color(dom.TextNode, ValueColor, token.EscapeText(n.Data, es.noDoubleEncoding)))
	case dom.CDATANode:
		xw.line(pre.Level, xw.color(dom.CDATANode, ValueColor, "<![CDATA["+n.Data+"]]>"))
	case dom.CommentNode:
		xw.line(pre.Level, xw.color(dom.CommentNode, ValueColor, "<!--"+n.Data+"-->"))
	case dom.PINode:
		xw.line(pre.Level, xw.color(dom.PINode, ValueColor, piText(n)))
	case dom.DoctypeNode:
		if !es.headless {
			xw.line(pre.Level, xw.color(dom.DoctypeNode, ValueColor, doctypeText(pre.Name, n)))
		}
	default:
		// Unknown node kinds degrade to string coercion of their
		// data instead of failing.
		xw.line(pre.Level, token.EscapeText(n.Data, es.noDoubleEncoding))
	}
}

func (xw *xmlWriter) declaration(doc *dom.Node) string {
	version := doc.Version
	if version == "" {
		version = "1.0"
	}
	s := `<?xml version="` + version + `"`
	if doc.Encoding != "" {
		s += ` encoding="` + doc.Encoding + `"`
	}
	if doc.Standalone != nil {
		if *doc.Standalone {
			s += ` standalone="yes"`
		} else {
			s += ` standalone="no"`
		}
	}
	s += "?>"
	return xw.color(dom.DocumentNode, DeclColor, s)
}

// tagBuilder accumulates an element open tag, tracking the raw column
// so attribute wrapping decisions ignore color escapes.
type tagBuilder struct {
	xw         *xmlWriter
	b          strings.Builder
	col        int
	contIndent string
}

func (tb *tagBuilder) add(raw, colored string) {
	tb.b.WriteString(colored)
	tb.col += len(raw)
}

func (tb *tagBuilder) attr(raw, colored string) {
	es := tb.xw.es
	if es.pretty && es.width > 0 && tb.contIndent != "" && tb.col+1+len(raw) > es.width {
		tb.b.WriteString(es.newline + tb.contIndent)
		tb.col = len(tb.contIndent)
	} else {
		tb.b.WriteString(" ")
		tb.col++
	}
	tb.add(raw, colored)
}

func (xw *xmlWriter) attrPiece(tb *tagBuilder, r Rec) {
	quoted := `"` + token.EscapeAttr(r.Value, xw.es.noDoubleEncoding) + `"`
	raw := r.Name + "=" + quoted
	colored := xw.color(dom.AttributeNode, AttNameColor, r.Name) +
		xw.sep("=") +
		xw.color(dom.AttributeNode, AttValueColor, quoted)
	tb.attr(raw, colored)
}

func (xw *xmlWriter) element(pre *PreNode) {
	es := xw.es
	name := xw.color(dom.ElementNode, NameColor, pre.Name)
	tb := &tagBuilder{xw: xw, col: len(xw.indent(pre.Level))}
	if es.pretty {
		// continuation lines align under the first attribute
		tb.contIndent = xw.indent(pre.Level) + strings.Repeat(" ", len(pre.Name)+2)
	}
	tb.add("<"+pre.Name, xw.sep("<")+name)
	for _, r := range pre.Namespaces {
		xw.attrPiece(tb, r)
	}
	for _, r := range pre.Attributes {
		xw.attrPiece(tb, r)
	}
	open := tb.b.String()

	switch {
	case len(pre.Children) == 0:
		if es.allowEmptyTags {
			xw.line(pre.Level, open+xw.sep(">")+xw.sep("</")+name+xw.sep(">"))
			return
		}
		slash := "/>"
		if es.spaceBeforeSlash {
			slash = " />"
		}
		xw.line(pre.Level, open+xw.sep(slash))
	case xw.inlineContent(pre):
		var cb strings.Builder
		for _, c := range pre.Children {
			cb.WriteString(xw.inlineNode(c))
		}
		xw.line(pre.Level, open+xw.sep(">")+cb.String()+xw.sep("</")+name+xw.sep(">"))
	default:
		xw.line(pre.Level, open+xw.sep(">"))
		for _, c := range pre.Children {
			xw.node(c)
		}
		xw.line(pre.Level, xw.sep("</")+name+xw.sep(">"))
	}
}

// inlineContent decides whether an element's children stay on the open
// tag's line. Text-only content always does; InlineTextNodes extends
// that to mixed content so surrounding text is preserved exactly.
func (xw *xmlWriter) inlineContent(pre *PreNode) bool {
	if !xw.es.pretty {
		return false
	}
	hasText := false
	allText := len(pre.Children) > 0
	for _, c := range pre.Children {
		if c.Node.Type.IsTextual() {
			hasText = true
		} else {
			allText = false
		}
	}
	return allText || (xw.es.inlineTextNodes && hasText)
}

func (xw *xmlWriter) inlineNode(pre *PreNode) string {
	es := xw.es
	n := pre.Node
	switch n.Type {
	case dom.TextNode:
		return xw.color(dom.TextNode, ValueColor, token.EscapeText(n.Data, es.noDoubleEncoding))
	case dom.CDATANode:
		return xw.color(dom.CDATANode, ValueColor, "<![CDATA["+n.Data+"]]>")
	case dom.CommentNode:
		return xw.color(dom.CommentNode, ValueColor, "<!--"+n.Data+"-->")
	case dom.PINode:
		return xw.color(dom.PINode, ValueColor, piText(n))
	case dom.ElementNode:
		name := xw.color(dom.ElementNode, NameColor, pre.Name)
		tb := &tagBuilder{xw: xw}
		tb.add("<"+pre.Name, xw.sep("<")+name)
		for _, r := range pre.Namespaces {
			xw.attrPiece(tb, r)
		}
		for _, r := range pre.Attributes {
			xw.attrPiece(tb, r)
		}
		if len(pre.Children) == 0 {
			if es.allowEmptyTags {
				return tb.b.String() + xw.sep(">") + xw.sep("</") + name + xw.sep(">")
			}
			slash := "/>"
			if es.spaceBeforeSlash {
				slash = " />"
			}
			return tb.b.String() + xw.sep(slash)
		}
		var cb strings.Builder
		for _, c := range pre.Children {
			cb.WriteString(xw.inlineNode(c))
		}
		return tb.b.String() + xw.sep(">") + cb.String() + xw.sep("</") + name + xw.sep(">")
	default:
		return token.EscapeText(n.Data, es.noDoubleEncoding)
	}
}

func piText(n *dom.Node) string {
	if n.Data == "" {
		return "<?" + n.Target + "?>"
	}
	return "<?" + n.Target + " " + n.Data + "?>"
}

func doctypeText(name string, n *dom.Node) string {
	switch {
	case n.PubID != "" && n.SysID != "":
		return "<!DOCTYPE " + name + ` PUBLIC "` + n.PubID + `" "` + n.SysID + `">`
	case n.PubID != "":
		return "<!DOCTYPE " + name + ` PUBLIC "` + n.PubID + `">`
	case n.SysID != "":
		return "<!DOCTYPE " + name + ` SYSTEM "` + n.SysID + `">`
	default:
		return "<!DOCTYPE " + name + ">"
	}
}
