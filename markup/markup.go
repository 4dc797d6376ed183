// Package markup converts between HTML byte streams and ir trees. It is
// the boundary collaborator of the transform: parsing and serialization
// live here, the annotation semantics do not.
package markup

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/stylemark-format/stylemark/ir"
)

// Decode parses an HTML fragment, in body context, into an ir document
// node holding the fragment's top-level nodes in document order.
func Decode(r io.Reader) (*ir.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(r, ctx)
	if err != nil {
		return nil, fmt.Errorf("decode markup: %w", err)
	}
	doc := ir.Document()
	for _, hn := range nodes {
		if c := fromHTML(hn); c != nil {
			doc.AppendChild(c)
		}
	}
	return doc, nil
}

// Encode renders n as HTML. A document node renders its children in
// order with no wrapper.
func Encode(w io.Writer, n *ir.Node) error {
	if n.Type == ir.DocumentType {
		for _, c := range n.Children {
			if err := Encode(w, c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := html.Render(w, toHTML(n)); err != nil {
		return fmt.Errorf("encode markup: %w", err)
	}
	return nil
}

func fromHTML(hn *html.Node) *ir.Node {
	switch hn.Type {
	case html.ElementNode:
		el := ir.Element(hn.Data)
		for _, a := range hn.Attr {
			el.SetAttr(a.Key, a.Val)
		}
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if ic := fromHTML(c); ic != nil {
				el.AppendChild(ic)
			}
		}
		return el
	case html.TextNode:
		return ir.Text(hn.Data)
	case html.CommentNode:
		return ir.Comment(hn.Data)
	default:
		// doctype and friends have no place in a fragment
		return nil
	}
}

func toHTML(n *ir.Node) *html.Node {
	switch n.Type {
	case ir.ElementType:
		hn := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
		}
		for _, a := range n.Attrs {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Value()})
		}
		for _, c := range n.Children {
			hn.AppendChild(toHTML(c))
		}
		return hn
	case ir.TextType:
		return &html.Node{Type: html.TextNode, Data: n.Text}
	case ir.CommentType:
		return &html.Node{Type: html.CommentNode, Data: n.Text}
	default:
		hn := &html.Node{Type: html.DocumentNode}
		for _, c := range n.Children {
			hn.AppendChild(toHTML(c))
		}
		return hn
	}
}
