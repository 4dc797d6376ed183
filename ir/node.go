package ir

// Node is one node of a markup tree: a document root, an element with a
// tag and an ordered attribute bag, a text run, or a comment. Text and
// comment nodes never have children.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	Tag      string
	Attrs    []Attr
	Children []*Node

	Text string
}

func Document(children ...*Node) *Node {
	res := &Node{Type: DocumentType}
	for _, c := range children {
		res.AppendChild(c)
	}
	return res
}

func Element(tag string, children ...*Node) *Node {
	res := &Node{Type: ElementType, Tag: tag}
	for _, c := range children {
		res.AppendChild(c)
	}
	return res
}

func Text(v string) *Node {
	return &Node{Type: TextType, Text: v}
}

func Comment(v string) *Node {
	return &Node{Type: CommentType, Text: v}
}

func (n *Node) WithAttr(key, val string) *Node {
	n.SetAttr(key, val)
	return n
}

func (n *Node) WithAttrList(key string, vals ...string) *Node {
	n.SetAttrList(key, vals)
	return n
}

func (n *Node) AppendChild(c *Node) *Node {
	c.Parent = n
	c.ParentIndex = len(n.Children)
	n.Children = append(n.Children, c)
	return n
}

// RemoveChild splices the child at index i out of n's child list and
// reindexes the children after it. The removed node keeps its fields but
// is detached.
func (n *Node) RemoveChild(i int) *Node {
	c := n.Children[i]
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	for j := i; j < len(n.Children); j++ {
		n.Children[j].ParentIndex = j
	}
	c.Parent = nil
	c.ParentIndex = 0
	return c
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.Tag = n.Tag
	dst.Text = n.Text
	if n.Attrs != nil {
		dst.Attrs = make([]Attr, len(n.Attrs))
		for i := range n.Attrs {
			dst.Attrs[i] = n.Attrs[i].clone()
		}
	}
	if n.Children != nil {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cc := &Node{}
			c.CloneTo(cc)
			cc.Parent = dst
			cc.ParentIndex = i
			dst.Children[i] = cc
		}
	}
	return dst
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit calls f on n pre- and post-order; a false pre-order return skips
// n's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Depth is the number of element/document ancestors above n.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}
