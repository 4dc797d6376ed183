// Package encode renders ir trees as an indented outline, one node per
// line, for inspection and the CLI view command. Serialization back to
// markup lives in package markup, not here.
package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/stylemark-format/stylemark/ir"
)

type EncState struct {
	indent int
	Color  func(t ir.Type, a ColorAttr, s string) string
}

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func Encode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, Color: noColor}
	for _, o := range opts {
		o(es)
	}
	return es.encode(w, n, 0)
}

func noColor(_ ir.Type, _ ColorAttr, s string) string { return s }

func (es *EncState) encode(w io.Writer, n *ir.Node, depth int) error {
	pad := make([]byte, depth*es.indent)
	for i := range pad {
		pad[i] = ' '
	}
	if _, err := w.Write(pad); err != nil {
		return err
	}
	switch n.Type {
	case ir.DocumentType:
		if _, err := io.WriteString(w, es.Color(n.Type, TagColor, "#document")+"\n"); err != nil {
			return err
		}
	case ir.ElementType:
		line := es.Color(n.Type, TagColor, n.Tag)
		for _, a := range n.Attrs {
			line += " " + es.Color(n.Type, AttrKeyColor, a.Key) +
				"=" + es.Color(n.Type, AttrValColor, strconv.Quote(a.Value()))
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	case ir.TextType:
		if _, err := io.WriteString(w,
			es.Color(n.Type, ValueColor, strconv.Quote(n.Text))+"\n"); err != nil {
			return err
		}
	case ir.CommentType:
		if _, err := io.WriteString(w,
			es.Color(n.Type, CommentColor, "<!--"+n.Text+"-->")+"\n"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("encode: unknown node type %d", int(n.Type))
	}
	for _, c := range n.Children {
		if err := es.encode(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
