package ir

import "strconv"

// Path renders a debug locator for n, e.g. $/div[0]/#text[1].
func (n *Node) Path() string {
	if n.Parent == nil {
		if n.Type == DocumentType {
			return "$"
		}
		return "$/" + n.label() + "[0]"
	}
	return n.Parent.Path() + "/" + n.label() + "[" + strconv.Itoa(n.ParentIndex) + "]"
}

func (n *Node) label() string {
	switch n.Type {
	case ElementType:
		return n.Tag
	case TextType:
		return "#text"
	case CommentType:
		return "#comment"
	default:
		return "#document"
	}
}
