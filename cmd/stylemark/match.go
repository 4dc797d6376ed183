package main

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/stylemark-format/stylemark/ir"
)

// compileMatch compiles an expr program evaluated against the parent
// element of each annotated text node. Env: tag (string), attrs
// (map[string]string), depth (int). A runtime failure counts as no
// match.
func compileMatch(src string) (func(parent *ir.Node) bool, error) {
	prg, err := expr.Compile(src, expr.Env(matchEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("match expression %q: %w", src, err)
	}
	return func(parent *ir.Node) bool {
		attrs := make(map[string]string, len(parent.Attrs))
		for _, a := range parent.Attrs {
			attrs[a.Key] = a.Value()
		}
		out, err := expr.Run(prg, matchEnv{
			"tag":   parent.Tag,
			"attrs": attrs,
			"depth": parent.Depth(),
		})
		if err != nil {
			return false
		}
		b, _ := out.(bool)
		return b
	}, nil
}

type matchEnv map[string]any
