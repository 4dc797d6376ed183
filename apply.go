package stylemark

import (
	"strings"

	"github.com/stylemark-format/stylemark/debug"
	"github.com/stylemark-format/stylemark/ir"
	"github.com/stylemark-format/stylemark/parse"
)

// Apply runs the annotation transform over the whole tree rooted at
// root, in place, and returns root. Text nodes are visited in document
// order; each visit's mutations (text trimming, pruning, attribute
// writes) are committed before the next visit, so consecutive sibling
// annotations observe one another's edits. Malformed or absent
// annotations are a no-op, never an error.
func Apply(root *ir.Node, opts ...Option) *ir.Node {
	cfg := &ApplyConfig{Open: parse.DefaultOpen, Close: parse.DefaultClose}
	for _, o := range opts {
		o(cfg)
	}
	applyChildren(cfg, root)
	return root
}

// applyChildren iterates a live child list by index: pruning the current
// text node shifts the next sibling into the current slot, so the index
// stays put for that case.
func applyChildren(cfg *ApplyConfig, n *ir.Node) {
	for i := 0; i < len(n.Children); i++ {
		c := n.Children[i]
		switch c.Type {
		case ir.ElementType:
			applyChildren(cfg, c)
		case ir.TextType:
			if applyText(cfg, n, i) {
				i--
			}
		}
	}
}

// applyText processes the text node at index i of parent and reports
// whether it was pruned.
func applyText(cfg *ApplyConfig, parent *ir.Node, i int) bool {
	tn := parent.Children[i]
	body, rest, ok := parse.Extract(tn.Text, cfg.Open, cfg.Close)
	if !ok {
		return false
	}
	if cfg.Match != nil && !cfg.Match(parent) {
		return false
	}
	ann := parse.Parse(body, cfg.parseOpts()...)
	if debug.Apply() {
		debug.Logf("apply %q at %s\n", body, tn.Path())
	}

	pruned := false
	tn.Text = strings.TrimSpace(rest)
	if tn.Text == "" {
		parent.RemoveChild(i)
		pruned = true
	}

	target := Resolve(parent, i)
	if target == nil {
		// parsing work is discarded; the strip above still stands
		return pruned
	}
	Merge(target, ann)
	return pruned
}
