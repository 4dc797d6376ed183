package stylemark

import (
	"github.com/stylemark-format/stylemark/ir"
	"github.com/stylemark-format/stylemark/parse"
)

type ApplyConfig struct {
	Open, Close rune
	StrictStyle bool
	// Match filters by the parent node of an annotated text node; nil
	// means no filtering. Returning false leaves the text node untouched.
	Match func(parent *ir.Node) bool
}

type Option func(*ApplyConfig)

// WithDelims sets the annotation sentinel pair; the default is '{','}'.
func WithDelims(open, close rune) Option {
	return func(c *ApplyConfig) { c.Open, c.Close = open, close }
}

// WithStrictStyle appends accumulated declarations to an explicit
// style= token instead of replacing it.
func WithStrictStyle(v bool) Option {
	return func(c *ApplyConfig) { c.StrictStyle = v }
}

func WithMatch(f func(parent *ir.Node) bool) Option {
	return func(c *ApplyConfig) { c.Match = f }
}

func (c *ApplyConfig) parseOpts() []parse.ParseOption {
	if !c.StrictStyle {
		return nil
	}
	return []parse.ParseOption{parse.StrictStyle(true)}
}
