// Package view provides a read-only, flattened projection of a tag tree for
// display.
package view

import (
	"iter"
	"slices"

	"github.com/signadot/nbt-format/tag"
	"github.com/signadot/nbt-format/tag/tpath"
)

// Entry is one node in depth-first order. Path addresses the node from the
// root and is what a front end should keep as its selection.
type Entry struct {
	Node  *tag.Node
	Depth int
	Path  *tpath.Path
}

// Flatten yields root and all its descendants in pre-order, children in
// stored order, with the root at depth 0. Each iteration walks the tree
// afresh, so the sequence can be restarted after edits.
func Flatten(root *tag.Node) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		walk(root, 0, nil, yield)
	}
}

func walk(n *tag.Node, depth int, p *tpath.Path, yield func(Entry) bool) bool {
	if !yield(Entry{Node: n, Depth: depth, Path: p}) {
		return false
	}
	switch n.Type {
	case tag.ListType:
		for i, e := range n.Elems {
			if !walk(e, depth+1, tpath.Join(p, tpath.Index(i)), yield) {
				return false
			}
		}
	case tag.CompoundType:
		for name, c := range n.Compound.All() {
			if !walk(c, depth+1, tpath.Join(p, tpath.Field(name)), yield) {
				return false
			}
		}
	}
	return true
}

// Collect returns the flattened entries of root as a slice.
func Collect(root *tag.Node) []Entry {
	return slices.Collect(Flatten(root))
}
