package encode

import (
	"github.com/domfmt/go-xmldoc/dom"
	"github.com/domfmt/go-xmldoc/format"
)

type EncState struct {
	level int

	pretty  bool
	indent  string
	newline string
	offset  int
	width   int

	headless         bool
	allowEmptyTags   bool
	spaceBeforeSlash bool
	inlineTextNodes  bool
	noDoubleEncoding bool

	keepNullNodes      bool
	keepNullAttributes bool

	format format.Format

	attMarker     string
	textMarker    string
	cdataMarker   string
	commentMarker string
	piMarker      string

	Color func(dom.NodeType, ColorAttr, string) string
}

func newEncState(opts ...Option) *EncState {
	es := &EncState{
		indent:        "  ",
		newline:       "\n",
		attMarker:     "@",
		textMarker:    "#",
		cdataMarker:   "$",
		commentMarker: "!",
		piMarker:      "?",
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

type Option func(*EncState)

// Pretty enables indentation and newlines across all renderers.
func Pretty(v bool) Option {
	return func(es *EncState) { es.pretty = v }
}

// Indent sets the indent unit string. The default is two spaces.
func Indent(s string) Option {
	return func(es *EncState) { es.indent = s }
}

// Newline sets the line terminator string. The default is "\n".
func Newline(s string) Option {
	return func(es *EncState) { es.newline = s }
}

// Offset adds extra indent levels to every line.
func Offset(n int) Option {
	return func(es *EncState) { es.offset = n }
}

// Width sets the maximum line width before attributes wrap onto
// continuation lines. Zero disables wrapping.
func Width(n int) Option {
	return func(es *EncState) { es.width = n }
}

// Headless suppresses the XML declaration and doctype.
func Headless(v bool) Option {
	return func(es *EncState) { es.headless = v }
}

// AllowEmptyTags forces an explicit closing tag instead of
// self-closing empty elements.
func AllowEmptyTags(v bool) Option {
	return func(es *EncState) { es.allowEmptyTags = v }
}

// SpaceBeforeSlash inserts a space before the closing slash of
// self-closed elements.
func SpaceBeforeSlash(v bool) Option {
	return func(es *EncState) { es.spaceBeforeSlash = v }
}

// InlineTextNodes keeps children of elements with text content
// inline, unindented, even when pretty printing.
func InlineTextNodes(v bool) Option {
	return func(es *EncState) { es.inlineTextNodes = v }
}

// NoDoubleEncoding leaves pre-existing character references in text
// and attribute values unescaped.
func NoDoubleEncoding(v bool) Option {
	return func(es *EncState) { es.noDoubleEncoding = v }
}

// KeepNullNodes retains null-valued nodes during pre-serialization
// instead of dropping them.
func KeepNullNodes(v bool) Option {
	return func(es *EncState) { es.keepNullNodes = v }
}

// KeepNullAttributes retains null-valued attributes during
// pre-serialization instead of dropping them.
func KeepNullAttributes(v bool) Option {
	return func(es *EncState) { es.keepNullAttributes = v }
}

// EncodeFormat selects the output shape used by Serialize.
func EncodeFormat(f format.Format) Option {
	return func(es *EncState) { es.format = f }
}

// Level sets the base nesting level for pre-serialization and
// rendering.
func Level(n int) Option {
	return func(es *EncState) { es.level = n }
}

// EncodeColors enables terminal color output for the XML text
// renderer.
func EncodeColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c.Color }
}

// AttMarker sets the key prefix marking attributes in the map form.
func AttMarker(s string) Option {
	return func(es *EncState) { es.attMarker = s }
}

// TextMarker sets the key marking text children in the map form.
func TextMarker(s string) Option {
	return func(es *EncState) { es.textMarker = s }
}

// CDataMarker sets the key marking CDATA children in the map form.
func CDataMarker(s string) Option {
	return func(es *EncState) { es.cdataMarker = s }
}

// CommentMarker sets the key marking comment children in the map
// form.
func CommentMarker(s string) Option {
	return func(es *EncState) { es.commentMarker = s }
}

// PIMarker sets the key prefix marking processing instructions in the
// map form.
func PIMarker(s string) Option {
	return func(es *EncState) { es.piMarker = s }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...Option) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
