// Package libdiff compares two tag trees entry by entry.
//
// Each tree is flattened and every entry rendered as one line of the form
//
//	path: Kind value
//
// The two line sequences are then diffed, so a change deep in a tree shows
// up as the lines of the entries it touched.
package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/nbt-format/tag"
	"github.com/signadot/nbt-format/view"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// String is the prefix used for the op in unified output.
func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines renders the flattened entries of root.
func Lines(root *tag.Node) []string {
	var res []string
	for e := range view.Flatten(root) {
		res = append(res, lineText(e))
	}
	return res
}

func lineText(e view.Entry) string {
	n := e.Node
	p := "."
	if e.Path != nil {
		p = e.Path.String()
	}
	v := view.Summary(&n.Value)
	if n.Type.IsArray() {
		v = view.EditText(&n.Value)
	}
	return p + ": " + n.Type.String() + " " + v
}

// Diff returns the lines of from and to in diff order. Equal lines are
// kept for context; Changed tells whether there is anything else.
func Diff(from, to *tag.Node) []Line {
	fromLines := Lines(from)
	toLines := Lines(to)
	m := map[string]rune{}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(mapLines(m, fromLines), mapLines(m, toLines), false)

	res := make([]Line, 0, max(len(fromLines), len(toLines)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Line{Op: Delete, Text: fromLines[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Line{Op: Insert, Text: toLines[ti]})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, Line{Op: Equal, Text: fromLines[fi]})
				fi++
				ti++
			}
		}
	}
	return res
}

// each distinct line gets a rune; offset past the surrogate range so that
// every rune survives the round trip through a string.
func mapLines(m map[string]rune, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, l := range lines {
		r, ok := m[l]
		if !ok {
			r = rune(len(m))
			if r >= 0xd800 {
				r += 0x800
			}
			m[l] = r
		}
		rs[i] = r
	}
	return rs
}

// Changed reports whether any line is not Equal.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}
