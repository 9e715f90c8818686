package tag

import (
	"math"

	"github.com/signadot/nbt-format/tag/tpath"
)

// Validate checks that the tree under root is well formed: root is a
// compound, list elements share the declared type, compound names are
// unique, integers fit their width, strings and names fit the length
// limit and are valid UTF-8, and no node is reachable twice.
func Validate(root *Node) error {
	if root.Type != CompoundType {
		return &ValidationError{Op: "validate", Msg: "root is " + root.Type.String() + ", not Compound"}
	}
	if err := CheckName(root.Name); err != nil {
		return err
	}
	seen := map[*Node]bool{}
	return validate(root, nil, seen)
}

// ValidateNode is Validate for a subtree of any type, such as a value about
// to be inserted.
func ValidateNode(n *Node) error {
	return validate(n, nil, map[*Node]bool{})
}

func validate(n *Node, p *tpath.Path, seen map[*Node]bool) error {
	if seen[n] {
		return &ValidationError{Op: "validate", Path: p.String(), Msg: "node is shared"}
	}
	seen[n] = true
	if err := ValidateValue(&n.Value); err != nil {
		if ve, ok := err.(*ValidationError); ok && ve.Path == "" {
			ve.Path = p.String()
		}
		return err
	}
	switch n.Type {
	case ListType:
		for i, e := range n.Elems {
			if err := validate(e, tpath.Join(p, tpath.Index(i)), seen); err != nil {
				return err
			}
		}
	case CompoundType:
		names := map[string]bool{}
		for name, c := range n.Compound.All() {
			cp := tpath.Join(p, tpath.Field(name))
			if names[name] {
				return &ValidationError{Op: "validate", Path: cp.String(), Msg: "duplicate name"}
			}
			names[name] = true
			if err := CheckName(name); err != nil {
				return &ValidationError{Op: "validate", Path: cp.String(), Msg: err.(*ValidationError).Msg}
			}
			if err := validate(c, cp, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateValue checks the payload of v, without descending into children
// beyond their types.
func ValidateValue(v *Value) error {
	switch v.Type {
	case EndType:
		return invalidf("validate", "End is not a value")
	case ByteType, ShortType, IntType, LongType:
		lo, hi := IntRange(v.Type)
		if v.Int < lo || v.Int > hi {
			return invalidf("validate", "%d overflows %s", v.Int, v.Type)
		}
	case StringType:
		return checkString("validate", v.String)
	case ByteArrayType, IntArrayType, LongArrayType:
		if v.Len() > math.MaxInt32 {
			return invalidf("validate", "%s of %d elements overflows the count", v.Type, v.Len())
		}
	case ListType:
		if !v.ElemType.Valid() {
			return invalidf("validate", "invalid list element type %d", byte(v.ElemType))
		}
		if v.ElemType == EndType && len(v.Elems) != 0 {
			return invalidf("validate", "list of End holds %d elements", len(v.Elems))
		}
		if len(v.Elems) > math.MaxInt32 {
			return invalidf("validate", "list of %d elements overflows the count", len(v.Elems))
		}
		for i, e := range v.Elems {
			if e.Type != v.ElemType {
				return invalidf("validate", "element %d is %s, list holds %s", i, e.Type, v.ElemType)
			}
		}
	case CompoundType:
	default:
		return invalidf("validate", "invalid type %d", byte(v.Type))
	}
	return nil
}
