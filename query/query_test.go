package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nbt-format/tag"
)

func queryTree() *tag.Node {
	root := tag.NewRoot("")
	root.Compound.Add(tag.NewNode("id", tag.FromShort(276)))
	root.Compound.Add(tag.NewNode("small", tag.FromShort(3)))
	pos, _ := tag.NewList(tag.DoubleType, tag.FromDouble(1.5), tag.FromDouble(-2))
	root.Compound.Add(tag.NewNode("Pos", pos))
	root.Compound.Add(tag.NewNode("name", tag.MustString("Steve")))
	root.Compound.Add(tag.NewNode("ints", tag.FromIntArray([]int32{4, 5, 6})))
	return root
}

func TestFind(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{expr: `kind == "Short" && value > 100`, want: []string{"id"}},
		{expr: `depth == 2`, want: []string{"Pos[0]", "Pos[1]"}},
		{expr: `kind == "Double" && value < 0`, want: []string{"Pos[1]"}},
		{expr: `name matches "^[a-z]+$" && kind == "String"`, want: []string{"name"}},
		{expr: `size == 3 && kind != "Compound"`, want: []string{"ints"}},
		{expr: `kind == "IntArray" && 5 in value`, want: []string{"ints"}},
		{expr: `path startsWith "Pos"`, want: []string{"Pos", "Pos[0]", "Pos[1]"}},
		{expr: `kind == "Short" && value == getpath("small")`, want: []string{"small"}},
		{expr: `getpath("nope") == nil && depth == 0`, want: []string{""}},
		{expr: `getpath(".") != nil && depth == 0`, want: []string{""}},
		{expr: `kind == "Short" && value == getpath(".").id`, want: []string{"id"}},
		{expr: `kind == "Double" && value == getpath("Pos")[1]`, want: []string{"Pos[1]"}},
		{expr: `len(getpath("ints")) == size && size > 0`, want: []string{"ints"}},
		{expr: `false`, want: nil},
	}
	root := queryTree()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			q, err := Compile(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			entries, err := FindAll(root, q)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, e := range entries {
				got = append(got, e.Path.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`value +`, `name`, `nosuchvar == 1`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) succeeded", src)
		}
	}
}

func TestFindStops(t *testing.T) {
	q, err := Compile(`true`)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for range Find(queryTree(), q) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("n = %d", n)
	}
}
