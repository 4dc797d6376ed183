package ir

import "strings"

// Attr is one entry of an element's ordered attribute bag. Val holds the
// usual string form; List is set instead when the attribute was built
// programmatically as a token list (class bags, mostly). At most one of
// the two forms is populated.
type Attr struct {
	Key  string
	Val  string
	List []string
}

func (a Attr) clone() Attr {
	res := Attr{Key: a.Key, Val: a.Val}
	if a.List != nil {
		res.List = append([]string(nil), a.List...)
	}
	return res
}

// Value renders the attribute as a plain string, joining list form with
// single spaces.
func (a Attr) Value() string {
	if a.List != nil {
		return strings.Join(a.List, " ")
	}
	return a.Val
}

// Tokens renders the attribute as an ordered token list, splitting
// string form on whitespace and dropping empties.
func (a Attr) Tokens() []string {
	if a.List != nil {
		return a.List
	}
	return strings.Fields(a.Val)
}

func (n *Node) Attr(key string) (Attr, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			return n.Attrs[i], true
		}
	}
	return Attr{}, false
}

func (n *Node) AttrVal(key string) string {
	a, ok := n.Attr(key)
	if !ok {
		return ""
	}
	return a.Value()
}

// SetAttr stores key=val. An existing key is updated in place, keeping
// its position in the bag; otherwise the attribute is appended.
func (n *Node) SetAttr(key, val string) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			n.Attrs[i].List = nil
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
}

func (n *Node) SetAttrList(key string, vals []string) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = ""
			n.Attrs[i].List = vals
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, List: vals})
}

func (n *Node) DelAttr(key string) bool {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return true
		}
	}
	return false
}
