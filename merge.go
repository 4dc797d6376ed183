package stylemark

import (
	"strings"

	"github.com/stylemark-format/stylemark/debug"
	"github.com/stylemark-format/stylemark/ir"
	"github.com/stylemark-format/stylemark/parse"
)

// Merge folds a parsed annotation into the target element's attribute
// bag. Per-key policy: classes are an insertion-order set union with
// whatever class value the target already carries (string or list form),
// id overwrites, style concatenates onto an existing style value, and
// every other attribute overwrites, in parse order. The
// empty-declaration sentinel forces style="" unconditionally.
func Merge(target *ir.Node, ann *parse.Annotation) {
	if debug.Merge() {
		debug.Logf("merge into %s: classes=%v id=%q attrs=%d empty=%v\n",
			target.Path(), ann.Classes, ann.ID, len(ann.Attrs), ann.Empty)
	}
	if ann.Empty {
		target.SetAttr("style", "")
		return
	}
	if len(ann.Classes) > 0 {
		var existing []string
		if a, ok := target.Attr("class"); ok {
			existing = a.Tokens()
		}
		merged := classUnion(existing, ann.Classes)
		target.SetAttr("class", strings.Join(merged, " "))
	}
	if ann.HasID {
		target.SetAttr("id", ann.ID)
	}
	for _, a := range ann.Attrs {
		if a.Key == "style" {
			target.SetAttr("style", joinStyle(target.AttrVal("style"), a.Val))
			continue
		}
		target.SetAttr(a.Key, a.Val)
	}
}

// classUnion concatenates and deduplicates, keeping each class at its
// first occurrence's position.
func classUnion(existing, added []string) []string {
	res := make([]string, 0, len(existing)+len(added))
	seen := make(map[string]bool, len(existing)+len(added))
	for _, lst := range [][]string{existing, added} {
		for _, c := range lst {
			if seen[c] {
				continue
			}
			seen[c] = true
			res = append(res, c)
		}
	}
	return res
}

// joinStyle appends a style value to an existing one: "; " when the
// existing value does not end in ';', a single space when it does, no
// separator when it is empty.
func joinStyle(existing, add string) string {
	switch {
	case existing == "":
		return add
	case strings.HasSuffix(existing, ";"):
		return existing + " " + add
	default:
		return existing + "; " + add
	}
}
