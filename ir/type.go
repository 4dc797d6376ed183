package ir

import "fmt"

type Type int

const (
	DocumentType Type = iota
	ElementType
	TextType
	CommentType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		DocumentType: "Document",
		ElementType:  "Element",
		TextType:     "Text",
		CommentType:  "Comment",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Document": DocumentType,
		"Element":  ElementType,
		"Text":     TextType,
		"Comment":  CommentType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		DocumentType,
		ElementType,
		TextType,
		CommentType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case TextType, CommentType:
		return true
	default:
		return false
	}
}
