package view

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nbt-format/tag"
	"github.com/signadot/nbt-format/tag/tpath"
)

func viewTree() *tag.Node {
	root := tag.NewRoot("root")
	root.Compound.Add(tag.NewNode("id", tag.FromShort(276)))
	pos, _ := tag.NewList(tag.DoubleType, tag.FromDouble(1), tag.FromDouble(2), tag.FromDouble(3))
	root.Compound.Add(tag.NewNode("Pos", pos))
	inner := tag.NewNode("Data", tag.NewCompound())
	inner.Compound.Add(tag.NewNode("name", tag.MustString("Steve")))
	root.Compound.Add(inner)
	return root
}

func TestFlatten(t *testing.T) {
	type row struct {
		Name  string
		Depth int
		Path  string
	}
	var got []row
	for e := range Flatten(viewTree()) {
		got = append(got, row{e.Node.Name, e.Depth, e.Path.String()})
	}
	want := []row{
		{"root", 0, ""},
		{"id", 1, "id"},
		{"Pos", 1, "Pos"},
		{"", 2, "Pos[0]"},
		{"", 2, "Pos[1]"},
		{"", 2, "Pos[2]"},
		{"Data", 1, "Data"},
		{"name", 2, "Data.name"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFlattenPathsResolve(t *testing.T) {
	root := viewTree()
	for e := range Flatten(root) {
		n, err := root.Get(e.Path)
		if err != nil {
			t.Fatalf("%s: %v", e.Path, err)
		}
		if n != e.Node {
			t.Errorf("%s resolves to a different node", e.Path)
		}
	}
}

func TestFlattenRestart(t *testing.T) {
	root := viewTree()
	seq := Flatten(root)
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	root.Compound.Remove("Pos")
	if got := len(Collect(root)); got != 4 {
		t.Errorf("after edit got %d entries, want 4", got)
	}
	count := 0
	for range seq {
		count++
	}
	if count != 4 {
		t.Errorf("restarted sequence yielded %d entries, want 4", count)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		e    Entry
		opts []LineOption
		want string
	}{
		{
			name: "short",
			e:    Entry{Node: tag.NewNode("id", tag.FromShort(276)), Depth: 1},
			want: `Short("id"): 276`,
		},
		{
			name: "indent",
			e:    Entry{Node: tag.NewNode("id", tag.FromShort(276)), Depth: 2},
			opts: []LineOption{Indent(2)},
			want: `    Short("id"): 276`,
		},
		{
			name: "list element",
			e:    Entry{Node: tag.NewNode("", tag.FromDouble(0.5))},
			want: `Double: 0.5`,
		},
		{
			name: "path",
			e:    Entry{Node: tag.NewNode("", tag.FromLong(5)), Path: tpath.MustParse("Pos[0]")},
			opts: []LineOption{WithPath(true)},
			want: `Long(Pos[0]): 5L`,
		},
		{
			name: "nil colors",
			e:    Entry{Node: tag.NewNode("s", tag.MustString("hi"))},
			opts: []LineOption{WithColors(nil)},
			want: `String("s"): "hi"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.e, tt.opts...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	list, _ := tag.NewList(tag.IntType, tag.FromInt(1), tag.FromInt(2))
	compound := tag.NewCompound()
	compound.Compound.Add(tag.NewNode("a", tag.FromByte(1)))
	tests := []struct {
		v        tag.Value
		summary  string
		editText string
	}{
		{tag.FromByte(-3), "-3", "-3"},
		{tag.FromLong(1 << 40), "1099511627776L", "1099511627776"},
		{tag.FromFloat(0.1), "0.1f", "0.1"},
		{tag.FromFloat(float32(math.Inf(-1))), "-Inff", "-Inf"},
		{tag.FromDouble(2), "2", "2"},
		{tag.MustString(`say "hi"`), `"say \"hi\""`, `say "hi"`},
		{tag.FromByteArray([]int8{1, -1}), "[2 bytes]", "[1, -1]"},
		{tag.FromIntArray(nil), "[0 ints]", "[]"},
		{tag.FromLongArray([]int64{7}), "[1 longs]", "[7]"},
		{list, "[2 items]", ""},
		{compound, "{1 entries}", ""},
	}
	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			if got := Summary(&tt.v); got != tt.summary {
				t.Errorf("Summary = %q, want %q", got, tt.summary)
			}
			if got := EditText(&tt.v); got != tt.editText {
				t.Errorf("EditText = %q, want %q", got, tt.editText)
			}
		})
	}
}

func TestEditTextParses(t *testing.T) {
	for _, v := range []tag.Value{
		tag.FromByte(-3), tag.FromShort(9), tag.FromLong(-1 << 50),
		tag.FromFloat(0.1), tag.FromDouble(1e-300),
		tag.FromIntArray([]int32{1, 2, 3}), tag.FromLongArray([]int64{}),
	} {
		got, err := tag.ParseValue(v.Type, EditText(&v))
		if err != nil {
			t.Errorf("%s: %v", v.Type, err)
			continue
		}
		if !tag.EqualValues(&v, &got) {
			t.Errorf("%s: %q parsed to %+v", v.Type, EditText(&v), got)
		}
	}
}
