package edit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nbt-format/tag"
	"github.com/signadot/nbt-format/tag/tpath"
)

func testTree(t *testing.T) *tag.Node {
	t.Helper()
	root := tag.NewRoot("")
	for _, name := range []string{"A", "B", "C"} {
		if err := root.Compound.Add(tag.NewNode(name, tag.FromInt(1))); err != nil {
			t.Fatal(err)
		}
	}
	pos, _ := tag.NewList(tag.DoubleType, tag.FromDouble(1), tag.FromDouble(2))
	root.Compound.Add(tag.NewNode("Pos", pos))
	single, _ := tag.NewList(tag.IntType, tag.FromInt(7))
	root.Compound.Add(tag.NewNode("one", single))
	root.Compound.Add(tag.NewNode("id", tag.FromShort(276)))
	root.Compound.Add(tag.NewNode("b", tag.FromByte(5)))
	return root
}

func newEditor(t *testing.T) *Editor {
	t.Helper()
	e, err := New(testTree(t))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestNew(t *testing.T) {
	if _, err := New(tag.NewNode("", tag.FromInt(1))); !errors.Is(err, tag.ErrValidation) {
		t.Errorf("non compound root: %v", err)
	}
	if _, err := New(nil); !errors.Is(err, tag.ErrValidation) {
		t.Errorf("nil root: %v", err)
	}
}

func TestDeleteInsertOrder(t *testing.T) {
	e := newEditor(t)
	if err := e.Delete(tpath.Field("B")); err != nil {
		t.Fatal(err)
	}
	if err := e.Insert(nil, "D", tag.FromInt(4)); err != nil {
		t.Fatal(err)
	}
	want := []string{"A", "C", "Pos", "one", "id", "b", "D"}
	if diff := cmp.Diff(want, e.Root().Compound.Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !e.Modified() {
		t.Errorf("not modified")
	}
	e.MarkSaved()
	if e.Modified() {
		t.Errorf("modified after MarkSaved")
	}
}

func TestSetValue(t *testing.T) {
	e := newEditor(t)
	if err := e.SetValue(tpath.Field("b"), "300"); !errors.Is(err, tag.ErrValue) {
		t.Fatalf("byte 300: %v", err)
	}
	b, _ := e.Root().GetPath("b")
	if b.Int != 5 {
		t.Errorf("failed set changed value to %d", b.Int)
	}
	if e.Modified() {
		t.Errorf("failed set marked modified")
	}
	if err := e.SetValue(tpath.Field("b"), "5"); err != nil {
		t.Fatal(err)
	}
	if e.Modified() {
		t.Errorf("same value marked modified")
	}
	if err := e.SetValue(tpath.MustParse("Pos[1]"), "-0.5"); err != nil {
		t.Fatal(err)
	}
	d, _ := e.Root().GetPath("Pos[1]")
	if d.Float64 != -0.5 {
		t.Errorf("Pos[1] = %g", d.Float64)
	}
	if !e.Modified() {
		t.Errorf("not modified")
	}
	if err := e.SetValue(tpath.Field("Pos"), "1"); !errors.Is(err, tag.ErrValue) {
		t.Errorf("set on list: %v", err)
	}
}

func TestInsertErrors(t *testing.T) {
	tests := []struct {
		name   string
		parent *tpath.Path
		field  string
		v      tag.Value
		is     error
	}{
		{name: "duplicate", field: "A", v: tag.FromInt(1), is: tag.ErrValidation},
		{name: "parent is list", parent: tpath.Field("Pos"), field: "x", v: tag.FromInt(1), is: tag.ErrValidation},
		{name: "missing parent", parent: tpath.Field("nope"), field: "x", v: tag.FromInt(1), is: tag.ErrNotFound},
		{name: "end value", field: "x", v: tag.Value{Type: tag.EndType}, is: tag.ErrValidation},
		{name: "bad value", field: "x", v: tag.Value{Type: tag.ByteType, Int: 1000}, is: tag.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(t)
			before := e.Root().Clone()
			err := e.Insert(tt.parent, tt.field, tt.v)
			if !errors.Is(err, tt.is) {
				t.Fatalf("got %v, want %v", err, tt.is)
			}
			if !tag.Equal(before, e.Root()) {
				t.Errorf("tree changed")
			}
			if e.Modified() {
				t.Errorf("marked modified")
			}
		})
	}
}

func TestInsertCopies(t *testing.T) {
	e := newEditor(t)
	v := tag.FromIntArray([]int32{1, 2})
	if err := e.Insert(nil, "arr", v); err != nil {
		t.Fatal(err)
	}
	v.Ints[0] = 9
	n, _ := e.Root().GetPath("arr")
	if n.Ints[0] != 1 {
		t.Errorf("inserted value aliases caller's slice")
	}
}

func TestDelete(t *testing.T) {
	e := newEditor(t)
	if err := e.Delete(nil); !errors.Is(err, tag.ErrValidation) {
		t.Errorf("delete root: %v", err)
	}
	if err := e.Delete(tpath.Field("nope")); !errors.Is(err, tag.ErrNotFound) {
		t.Errorf("delete missing: %v", err)
	}
	if err := e.Delete(tpath.MustParse("Pos[5]")); !errors.Is(err, tag.ErrNotFound) {
		t.Errorf("delete out of range: %v", err)
	}
	if e.Modified() {
		t.Errorf("failed deletes marked modified")
	}
	if err := e.Delete(tpath.MustParse("Pos[0]")); err != nil {
		t.Fatal(err)
	}
	if err := e.Delete(tpath.MustParse("Pos[0]")); err != nil {
		t.Fatal(err)
	}
	pos, _ := e.Root().GetPath("Pos")
	if len(pos.Elems) != 0 || pos.ElemType != tag.DoubleType {
		t.Errorf("emptied list = %+v", pos.Value)
	}
}

func TestRename(t *testing.T) {
	e := newEditor(t)
	if err := e.Rename(nil, "B", "B"); err != nil {
		t.Fatal(err)
	}
	if e.Modified() {
		t.Errorf("rename to same name marked modified")
	}
	if err := e.Rename(nil, "B", "C"); !errors.Is(err, tag.ErrValidation) {
		t.Errorf("rename onto sibling: %v", err)
	}
	if err := e.Rename(nil, "B", "X"); err != nil {
		t.Fatal(err)
	}
	want := []string{"A", "X", "C", "Pos", "one", "id", "b"}
	if diff := cmp.Diff(want, e.Root().Compound.Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestInsertListElement(t *testing.T) {
	e := newEditor(t)
	err := e.InsertListElement(tpath.Field("Pos"), tag.FromInt(3))
	var ve *tag.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("heterogeneous append: %v", err)
	}
	if ve.Path != "Pos" {
		t.Errorf("error path %q", ve.Path)
	}
	pos, _ := e.Root().GetPath("Pos")
	if len(pos.Elems) != 2 {
		t.Errorf("list changed")
	}
	if err := e.InsertListElement(tpath.Field("Pos"), tag.FromDouble(3)); err != nil {
		t.Fatal(err)
	}
	if len(pos.Elems) != 3 {
		t.Errorf("len %d", len(pos.Elems))
	}

	if err := e.Insert(nil, "new", tag.Zero(tag.ListType)); err != nil {
		t.Fatal(err)
	}
	if err := e.InsertListElement(tpath.Field("new"), tag.MustString("x")); err != nil {
		t.Fatal(err)
	}
	l, _ := e.Root().GetPath("new")
	if l.ElemType != tag.StringType || len(l.Elems) != 1 {
		t.Errorf("new list = %+v", l.Value)
	}
	if err := e.InsertListElement(tpath.Field("A"), tag.FromInt(1)); !errors.Is(err, tag.ErrValidation) {
		t.Errorf("append to Int: %v", err)
	}
}

func TestChangeType(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		typ      tag.Type
		wantErr  bool
		modified bool
		check    func(t *testing.T, root *tag.Node)
	}{
		{name: "root to int", path: "", typ: tag.IntType, wantErr: true},
		{name: "root to compound", path: "", typ: tag.CompoundType},
		{name: "to end", path: "A", typ: tag.EndType, wantErr: true},
		{name: "invalid", path: "A", typ: tag.Type(20), wantErr: true},
		{name: "same type", path: "A", typ: tag.IntType},
		{
			name: "int to string", path: "A", typ: tag.StringType, modified: true,
			check: func(t *testing.T, root *tag.Node) {
				n, _ := root.GetPath("A")
				if n.Type != tag.StringType || n.String != "" || n.Name != "A" {
					t.Errorf("A = %+v", n)
				}
			},
		},
		{
			name: "to compound", path: "A", typ: tag.CompoundType, modified: true,
			check: func(t *testing.T, root *tag.Node) {
				if err := tag.Validate(root); err != nil {
					t.Error(err)
				}
			},
		},
		{name: "element of longer list", path: "Pos[0]", typ: tag.IntType, wantErr: true},
		{
			name: "only element", path: "one[0]", typ: tag.LongType, modified: true,
			check: func(t *testing.T, root *tag.Node) {
				l, _ := root.GetPath("one")
				if l.ElemType != tag.LongType || l.Elems[0].Type != tag.LongType {
					t.Errorf("one = %+v", l.Value)
				}
				if err := tag.Validate(root); err != nil {
					t.Error(err)
				}
			},
		},
		{name: "missing", path: "nope", typ: tag.IntType, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(t)
			before := e.Root().Clone()
			err := e.ChangeType(tpath.MustParse(tt.path), tt.typ)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ChangeType() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !tag.Equal(before, e.Root()) {
				t.Errorf("failed retype changed the tree")
			}
			if e.Modified() != tt.modified {
				t.Errorf("modified = %t", e.Modified())
			}
			if tt.check != nil {
				tt.check(t, e.Root())
			}
		})
	}
}

func TestChangeTypeKeepsListHomogeneous(t *testing.T) {
	e := newEditor(t)
	for _, typ := range []tag.Type{tag.ByteType, tag.CompoundType, tag.ListType} {
		err := e.ChangeType(tpath.MustParse("Pos[0]"), typ)
		if !errors.Is(err, tag.ErrValidation) {
			t.Errorf("retype Pos[0] to %s: %v", typ, err)
		}
	}
	pos, err := e.Root().GetPath("Pos")
	if err != nil {
		t.Fatal(err)
	}
	got := []tag.Type{pos.ElemType}
	for _, el := range pos.Elems {
		got = append(got, el.Type)
	}
	want := []tag.Type{tag.DoubleType, tag.DoubleType, tag.DoubleType}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pos types (-want +got):\n%s", diff)
	}
	if err := tag.Validate(e.Root()); err != nil {
		t.Error(err)
	}
	if e.Modified() {
		t.Error("modified after refused retype")
	}
}

func TestStaleSelection(t *testing.T) {
	e := newEditor(t)
	sel := tpath.MustParse("Pos[1]")
	if err := e.Delete(tpath.Field("Pos")); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Resolve(sel); !errors.Is(err, tag.ErrNotFound) {
		t.Errorf("stale selection resolved: %v", err)
	}
}
