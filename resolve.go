package stylemark

import (
	"github.com/stylemark-format/stylemark/debug"
	"github.com/stylemark-format/stylemark/ir"
)

// Resolve selects the element that receives an annotation's data, given
// the parent and the original index the annotated text node occupied
// when it was visited. The parent's child list is inspected as it stands
// now, after the text node may already have been pruned; positions below
// originalIndex are unaffected by that removal. First rule wins:
//
//  1. the sibling at originalIndex-1, when it is an element
//     (post-element styling);
//  2. the sole remaining child, when it is an element (the annotation
//     was the parent's only leading content and got fully consumed);
//  3. the parent itself, when it is an element;
//  4. nobody.
func Resolve(parent *ir.Node, originalIndex int) *ir.Node {
	if originalIndex > 0 && originalIndex-1 < len(parent.Children) {
		if prev := parent.Children[originalIndex-1]; prev.Type == ir.ElementType {
			if debug.Resolve() {
				debug.Logf("resolve: previous sibling %s\n", prev.Path())
			}
			return prev
		}
	}
	if len(parent.Children) == 1 && parent.Children[0].Type == ir.ElementType {
		if debug.Resolve() {
			debug.Logf("resolve: sole remaining child %s\n", parent.Children[0].Path())
		}
		return parent.Children[0]
	}
	if parent.Type == ir.ElementType {
		if debug.Resolve() {
			debug.Logf("resolve: parent %s\n", parent.Path())
		}
		return parent
	}
	if debug.Resolve() {
		debug.Logf("resolve: no target under %s\n", parent.Path())
	}
	return nil
}
