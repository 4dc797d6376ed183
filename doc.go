// Package stylemark applies inline style annotations to markup trees.
//
// An annotation is a bracketed prefix of a text node, e.g.
//
//	<p>{color: red;} styled text</p>
//
// carrying CSS declarations, .class and #id selectors, and key=value
// attributes. Apply scans a tree in document order, strips each
// annotation from its text node, prunes the node if it becomes empty,
// and merges the parsed data into a nearby element: the element
// immediately preceding the text node if there is one, the sole
// remaining element sibling after pruning, or else the parent.
package stylemark
