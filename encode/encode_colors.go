package encode

import (
	"strings"

	"github.com/domfmt/go-xmldoc/dom"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind dom.NodeType
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	AttNameColor
	AttValueColor
	ValueColor
	SepColor
	DeclColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range dom.NodeTypes() {
		able := Colorable{
			Kind: t,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = AttNameColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = AttValueColor
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	}
	colors.Map[Colorable{Kind: dom.ElementNode, Attr: NameColor}] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[Colorable{Kind: dom.PINode, Attr: NameColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Kind: dom.DoctypeNode, Attr: NameColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Kind: dom.CommentNode, Attr: ValueColor}] = color.BlueString
	colors.Map[Colorable{Kind: dom.TextNode, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: dom.CDATANode, Attr: ValueColor}] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[Colorable{Kind: dom.PINode, Attr: ValueColor}] = color.CyanString
	colors.Map[Colorable{Kind: dom.DocumentNode, Attr: DeclColor}] = color.RGB(96, 96, 96).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t dom.NodeType, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t dom.NodeType, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
