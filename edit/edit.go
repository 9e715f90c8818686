// Package edit implements structural changes to tag trees.
//
// The functions in this file act on nodes directly. Editor wraps a root and
// addresses nodes by path, which is what interactive front ends should hold
// on to between edits.
//
// Every operation either applies completely or returns an error and leaves
// the tree as it was.
package edit

import (
	"github.com/signadot/nbt-format/tag"
)

// Insert adds a copy of v named name at the end of the compound parent.
func Insert(parent *tag.Node, name string, v tag.Value) error {
	if parent.Type != tag.CompoundType {
		return &tag.ValidationError{Op: "insert", Msg: "parent is " + parent.Type.String() + ", not Compound"}
	}
	n := &tag.Node{Name: name, Value: v.Clone()}
	if err := tag.ValidateNode(n); err != nil {
		return err
	}
	if parent.Compound == nil {
		parent.Compound = &tag.Compound{}
	}
	return parent.Compound.Add(n)
}

// DeleteField removes the child called name from the compound parent.
func DeleteField(parent *tag.Node, name string) error {
	if parent.Type != tag.CompoundType {
		return &tag.ValidationError{Op: "delete", Msg: "parent is " + parent.Type.String() + ", not Compound"}
	}
	if _, ok := parent.Compound.Remove(name); !ok {
		return &tag.ValidationError{Op: "delete", Path: name, Msg: "no such child", Err: tag.ErrNotFound}
	}
	return nil
}

// DeleteIndex removes element i of the list parent. The list keeps its
// declared element type when it becomes empty.
func DeleteIndex(parent *tag.Node, i int) error {
	if parent.Type != tag.ListType {
		return &tag.ValidationError{Op: "delete", Msg: "parent is " + parent.Type.String() + ", not List"}
	}
	if i < 0 || i >= len(parent.Elems) {
		return &tag.ValidationError{Op: "delete", Msg: "index out of bounds", Err: tag.ErrNotFound}
	}
	elems := parent.Elems
	copy(elems[i:], elems[i+1:])
	elems[len(elems)-1] = nil
	parent.Elems = elems[:len(elems)-1]
	return nil
}

// Rename renames a child of the compound parent in place.
func Rename(parent *tag.Node, oldName, newName string) error {
	if parent.Type != tag.CompoundType {
		return &tag.ValidationError{Op: "rename", Msg: "parent is " + parent.Type.String() + ", not Compound"}
	}
	return parent.Compound.Rename(oldName, newName)
}

// SetValue parses raw as n's current type and replaces n's payload.
// Numbers outside the type's range are refused, never truncated.
func SetValue(n *tag.Node, raw string) error {
	v, err := tag.ParseValue(n.Type, raw)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}

// AppendElem appends a copy of v to the list node. An empty list takes the
// type of its first element.
func AppendElem(list *tag.Node, v tag.Value) error {
	if list.Type != tag.ListType {
		return &tag.ValidationError{Op: "append", Msg: list.Type.String() + " is not a List"}
	}
	if len(list.Elems) != 0 && v.Type != list.ElemType {
		return &tag.ValidationError{Op: "append", Msg: "cannot add " + v.Type.String() + " to list of " + list.ElemType.String()}
	}
	n := &tag.Node{Value: v.Clone()}
	if err := tag.ValidateNode(n); err != nil {
		return err
	}
	list.ElemType = v.Type
	list.Elems = append(list.Elems, n)
	return nil
}

// changeType replaces n's payload with the zero value of t. The name is
// kept. Only Editor.ChangeType calls it, after checking the parent list.
func changeType(n *tag.Node, t tag.Type) error {
	if !t.Valid() || t == tag.EndType {
		return &tag.ValidationError{Op: "retype", Msg: "cannot change to " + t.String()}
	}
	n.Value = tag.Zero(t)
	return nil
}
