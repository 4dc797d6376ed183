package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/stylemark-format/stylemark/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrKeyColor
	AttrValColor
	ValueColor
	CommentColor
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
	able := Colorable{Type: ir.ElementType, Attr: TagColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = AttrKeyColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = AttrValColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	colors.Map[Colorable{Type: ir.TextType, Attr: ValueColor}] = color.RGB(88, 158, 86).SprintfFunc()
	colors.Map[Colorable{Type: ir.CommentType, Attr: CommentColor}] = color.BlueString
	colors.Map[Colorable{Type: ir.DocumentType, Attr: TagColor}] = color.RGB(96, 96, 96).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
