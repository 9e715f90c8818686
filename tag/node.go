package tag

import (
	"math"
	"unicode/utf8"
)

// MaxStringLen is the largest encoded length of a string or name.
const MaxStringLen = math.MaxUint16

// Value is the payload of a tag. Only the fields belonging to Type are
// meaningful; the others stay at their zero value.
type Value struct {
	Type Type

	Int     int64   // ByteType, ShortType, IntType, LongType
	Float32 float32 // FloatType
	Float64 float64 // DoubleType
	String  string  // StringType
	Bytes   []int8  // ByteArrayType
	Ints    []int32 // IntArrayType
	Longs   []int64 // LongArrayType

	ElemType Type    // ListType
	Elems    []*Node // ListType, unnamed

	Compound *Compound // CompoundType
}

// Node is a named value. List elements and the synthetic wrapper of a bare
// value have an empty name. The name of a compound child should change
// only through Compound.Rename, which keeps sibling names unique.
type Node struct {
	Name string
	Value
}

func NewNode(name string, v Value) *Node {
	return &Node{Name: name, Value: v}
}

// NewRoot returns an empty root compound.
func NewRoot(name string) *Node {
	return &Node{Name: name, Value: NewCompound()}
}

func FromByte(v int8) Value   { return Value{Type: ByteType, Int: int64(v)} }
func FromShort(v int16) Value { return Value{Type: ShortType, Int: int64(v)} }
func FromInt(v int32) Value   { return Value{Type: IntType, Int: int64(v)} }
func FromLong(v int64) Value  { return Value{Type: LongType, Int: v} }

func FromFloat(v float32) Value  { return Value{Type: FloatType, Float32: v} }
func FromDouble(v float64) Value { return Value{Type: DoubleType, Float64: v} }

// FromString fails for strings that are not valid UTF-8 or whose encoding
// does not fit the 16 bit length prefix.
func FromString(v string) (Value, error) {
	if err := checkString("string", v); err != nil {
		return Value{}, err
	}
	return Value{Type: StringType, String: v}, nil
}

// MustString is FromString for literals known to be valid.
func MustString(v string) Value {
	res, err := FromString(v)
	if err != nil {
		panic(err)
	}
	return res
}

func FromByteArray(v []int8) Value {
	return Value{Type: ByteArrayType, Bytes: v}
}

func FromIntArray(v []int32) Value {
	return Value{Type: IntArrayType, Ints: v}
}

func FromLongArray(v []int64) Value {
	return Value{Type: LongArrayType, Longs: v}
}

// NewList builds a list of elemType from vals, which must all be of that
// type. The values are copied.
func NewList(elemType Type, vals ...Value) (Value, error) {
	if !elemType.Valid() {
		return Value{}, invalidf("list", "invalid element type %d", byte(elemType))
	}
	if elemType == EndType && len(vals) != 0 {
		return Value{}, invalidf("list", "list of End cannot hold elements")
	}
	res := Value{Type: ListType, ElemType: elemType}
	for i := range vals {
		if vals[i].Type != elemType {
			return Value{}, invalidf("list", "element %d is %s, list holds %s", i, vals[i].Type, elemType)
		}
		res.Elems = append(res.Elems, &Node{Value: vals[i].Clone()})
	}
	return res, nil
}

func NewCompound() Value {
	return Value{Type: CompoundType, Compound: &Compound{}}
}

// Zero returns the default value of t: zero numbers, empty string, empty
// arrays, an empty list declared as End and an empty compound.
func Zero(t Type) Value {
	switch t {
	case ByteArrayType:
		return Value{Type: t, Bytes: []int8{}}
	case IntArrayType:
		return Value{Type: t, Ints: []int32{}}
	case LongArrayType:
		return Value{Type: t, Longs: []int64{}}
	case ListType:
		return Value{Type: t, ElemType: EndType}
	case CompoundType:
		return NewCompound()
	default:
		return Value{Type: t}
	}
}

// Len is the number of elements of an array, list or compound and the byte
// length of a string.
func (v *Value) Len() int {
	switch v.Type {
	case StringType:
		return len(v.String)
	case ByteArrayType:
		return len(v.Bytes)
	case IntArrayType:
		return len(v.Ints)
	case LongArrayType:
		return len(v.Longs)
	case ListType:
		return len(v.Elems)
	case CompoundType:
		return v.Compound.Len()
	default:
		return 0
	}
}

// Children returns the child nodes of a list or compound in stored order.
func (v *Value) Children() []*Node {
	switch v.Type {
	case ListType:
		return v.Elems
	case CompoundType:
		if v.Compound == nil {
			return nil
		}
		return v.Compound.nodes
	default:
		return nil
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	res := v
	switch v.Type {
	case ByteArrayType:
		res.Bytes = append([]int8{}, v.Bytes...)
	case IntArrayType:
		res.Ints = append([]int32{}, v.Ints...)
	case LongArrayType:
		res.Longs = append([]int64{}, v.Longs...)
	case ListType:
		res.Elems = nil
		if v.Elems != nil {
			res.Elems = make([]*Node, len(v.Elems))
			for i, e := range v.Elems {
				res.Elems[i] = e.Clone()
			}
		}
	case CompoundType:
		res.Compound = v.Compound.Clone()
	}
	return res
}

func (n *Node) Clone() *Node {
	return &Node{Name: n.Name, Value: n.Value.Clone()}
}

// IntRange returns the bounds of an integer type.
func IntRange(t Type) (lo, hi int64) {
	switch t {
	case ByteType:
		return math.MinInt8, math.MaxInt8
	case ShortType:
		return math.MinInt16, math.MaxInt16
	case IntType:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func checkString(op, v string) error {
	if len(v) > MaxStringLen {
		return invalidf(op, "%d bytes exceeds the %d byte limit", len(v), MaxStringLen)
	}
	if !utf8.ValidString(v) {
		return invalidf(op, "invalid UTF-8")
	}
	return nil
}

// CheckName reports whether v can be used as a tag name.
func CheckName(v string) error {
	return checkString("name", v)
}
