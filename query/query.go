// Package query filters flattened tag trees with expr-lang boolean
// expressions.
//
// An expression sees one entry at a time through these variables:
//
//	name   the entry's name, "" for list elements
//	kind   the type name, for example "Short"
//	depth  0 for the root
//	path   the entry's path, for example "Level.Pos[0]"
//	value  the payload as int, float, string, or a list of ints for arrays;
//	       nil for lists and compounds
//	size   element or child count for containers, string length, else 0
//
// and the function getpath(p), which returns the value at path p from the
// root, or nil when p does not resolve. "." is the root. Unlike value,
// getpath gives lists as arrays and compounds as maps:
//
//	getpath(".").DataVersion > 3000
//	kind == "Double" && value == getpath("Pos")[1]
//
//	kind == "Short" && value > 100
//	name matches "^Pos" || depth > 3
package query

import (
	"fmt"
	"iter"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/nbt-format/debug"
	"github.com/signadot/nbt-format/tag"
	"github.com/signadot/nbt-format/view"
)

// Env is what a query sees for one entry.
type Env struct {
	Name  string `expr:"name"`
	Kind  string `expr:"kind"`
	Depth int    `expr:"depth"`
	Path  string `expr:"path"`
	Value any    `expr:"value"`
	Size  int    `expr:"size"`

	GetPath func(string) any `expr:"getpath"`
}

func getPath(root *tag.Node) func(string) any {
	return func(p string) any {
		if root == nil {
			return nil
		}
		n, err := root.GetPath(p)
		if err != nil {
			return nil
		}
		return deepValue(n)
	}
}

func deepValue(n *tag.Node) any {
	switch n.Type {
	case tag.ListType:
		res := make([]any, len(n.Elems))
		for i, el := range n.Elems {
			res[i] = deepValue(el)
		}
		return res
	case tag.CompoundType:
		res := make(map[string]any, n.Compound.Len())
		for name, c := range n.Compound.All() {
			res[name] = deepValue(c)
		}
		return res
	}
	return valueOf(&n.Value)
}

// Query is a compiled expression. It is safe for concurrent use.
type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src,
		expr.Env(Env{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("error compiling query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match reports whether e satisfies q. root, when not nil, is what getpath
// resolves against.
func (q *Query) Match(root *tag.Node, e view.Entry) (bool, error) {
	env := NewEnv(root, e)
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("error running query %q on %s: %w", q.src, env.Path, err)
	}
	ok, _ := res.(bool)
	if debug.Query() {
		debug.Logf("query %s on %v: %t\n", q.src, e, ok)
	}
	return ok, nil
}

// Find yields the entries of root that match q, in flatten order. The
// first evaluation error stops the sequence and is yielded with a zero
// Entry.
func Find(root *tag.Node, q *Query) iter.Seq2[view.Entry, error] {
	return func(yield func(view.Entry, error) bool) {
		for e := range view.Flatten(root) {
			ok, err := q.Match(root, e)
			if err != nil {
				yield(view.Entry{}, err)
				return
			}
			if ok && !yield(e, nil) {
				return
			}
		}
	}
}

// FindAll collects Find.
func FindAll(root *tag.Node, q *Query) ([]view.Entry, error) {
	var res []view.Entry
	for e, err := range Find(root, q) {
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

// NewEnv builds the expression environment for e.
func NewEnv(root *tag.Node, e view.Entry) Env {
	n := e.Node
	env := Env{
		Name:    n.Name,
		Kind:    n.Type.String(),
		Depth:   e.Depth,
		Value:   valueOf(&n.Value),
		Size:    n.Len(),
		GetPath: getPath(root),
	}
	if e.Path != nil {
		env.Path = e.Path.String()
	}
	return env
}

func valueOf(v *tag.Value) any {
	switch v.Type {
	case tag.ByteType, tag.ShortType, tag.IntType, tag.LongType:
		return int(v.Int)
	case tag.FloatType:
		return float64(v.Float32)
	case tag.DoubleType:
		return v.Float64
	case tag.StringType:
		return v.String
	case tag.ByteArrayType:
		return ints(v.Bytes)
	case tag.IntArrayType:
		return ints(v.Ints)
	case tag.LongArrayType:
		return ints(v.Longs)
	}
	return nil
}

func ints[T int8 | int32 | int64](vs []T) []any {
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = int(v)
	}
	return res
}
