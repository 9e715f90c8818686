package edit

import (
	"errors"

	"github.com/signadot/nbt-format/tag"
	"github.com/signadot/nbt-format/tag/tpath"
)

// Editor applies edits to a tree addressed by paths from its root and
// records whether any edit changed the tree. An Editor is not safe for
// concurrent use.
type Editor struct {
	root     *tag.Node
	modified bool
}

func New(root *tag.Node) (*Editor, error) {
	if root == nil || root.Type != tag.CompoundType {
		return nil, &tag.ValidationError{Op: "edit", Msg: "root must be a Compound"}
	}
	return &Editor{root: root}, nil
}

func (e *Editor) Root() *tag.Node { return e.root }

// Modified reports whether an edit succeeded since New or the last
// MarkSaved.
func (e *Editor) Modified() bool { return e.modified }

func (e *Editor) MarkSaved() { e.modified = false }

// Resolve returns the node at p. The pointer is only valid until the next
// structural edit.
func (e *Editor) Resolve(p *tpath.Path) (*tag.Node, error) {
	return e.root.Get(p)
}

func (e *Editor) resolve(op string, p *tpath.Path) (*tag.Node, error) {
	n, err := e.root.Get(p)
	if err != nil {
		return nil, &tag.ValidationError{Op: op, Path: p.String(), Err: err}
	}
	return n, nil
}

// withPath sets the path of a validation error to the path the caller
// used, which the node level functions cannot know.
func withPath(err error, p *tpath.Path) error {
	var ve *tag.ValidationError
	if errors.As(err, &ve) {
		ve.Path = p.String()
	}
	return err
}

// Insert adds name with a copy of v to the compound at parent.
func (e *Editor) Insert(parent *tpath.Path, name string, v tag.Value) error {
	n, err := e.resolve("insert", parent)
	if err != nil {
		return err
	}
	if err := Insert(n, name, v); err != nil {
		return withPath(err, tpath.Join(parent, tpath.Field(name)))
	}
	e.modified = true
	return nil
}

// Delete removes the node at p and its subtree. The root cannot be
// deleted.
func (e *Editor) Delete(p *tpath.Path) error {
	parentPath, last := p.RSplit()
	if last == nil {
		return &tag.ValidationError{Op: "delete", Msg: "cannot delete the root"}
	}
	parent, err := e.resolve("delete", parentPath)
	if err != nil {
		return err
	}
	if last.Index != nil {
		err = DeleteIndex(parent, *last.Index)
	} else {
		err = DeleteField(parent, *last.Field)
	}
	if err != nil {
		return withPath(err, p)
	}
	e.modified = true
	return nil
}

// Rename renames child oldName of the compound at parent.
func (e *Editor) Rename(parent *tpath.Path, oldName, newName string) error {
	n, err := e.resolve("rename", parent)
	if err != nil {
		return err
	}
	if err := Rename(n, oldName, newName); err != nil {
		return withPath(err, tpath.Join(parent, tpath.Field(oldName)))
	}
	if oldName != newName {
		e.modified = true
	}
	return nil
}

// SetValue parses raw as the current type of the node at p and stores it.
func (e *Editor) SetValue(p *tpath.Path, raw string) error {
	n, err := e.resolve("set", p)
	if err != nil {
		return err
	}
	v, err := tag.ParseValue(n.Type, raw)
	if err != nil {
		return err
	}
	if tag.EqualValues(&n.Value, &v) {
		return nil
	}
	n.Value = v
	e.modified = true
	return nil
}

// InsertListElement appends a copy of v to the list at p.
func (e *Editor) InsertListElement(p *tpath.Path, v tag.Value) error {
	n, err := e.resolve("append", p)
	if err != nil {
		return err
	}
	if err := AppendElem(n, v); err != nil {
		return withPath(err, p)
	}
	e.modified = true
	return nil
}

// ChangeType resets the node at p to the zero value of t. The root must
// stay a Compound. A list element may only change type when it is the
// list's only element, in which case the list's declared type follows.
func (e *Editor) ChangeType(p *tpath.Path, t tag.Type) error {
	parentPath, last := p.RSplit()
	if last == nil && t != tag.CompoundType {
		return &tag.ValidationError{Op: "retype", Msg: "root must stay a Compound"}
	}
	n, err := e.resolve("retype", p)
	if err != nil {
		return err
	}
	var list *tag.Node
	if last != nil && last.Index != nil {
		list, err = e.resolve("retype", parentPath)
		if err != nil {
			return err
		}
		if len(list.Elems) > 1 && t != list.ElemType {
			return &tag.ValidationError{Op: "retype", Path: p.String(), Msg: "list holds other " + list.ElemType.String() + " elements"}
		}
	}
	if n.Type == t {
		return nil
	}
	if err := changeType(n, t); err != nil {
		return withPath(err, p)
	}
	if list != nil {
		list.ElemType = t
	}
	e.modified = true
	return nil
}
