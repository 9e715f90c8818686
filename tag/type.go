package tag

import (
	"fmt"
	"strings"
)

// Type is the kind of a tag. Its numeric value is the wire id.
type Type byte

const (
	EndType Type = iota
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	ByteArrayType
	StringType
	ListType
	CompoundType
	IntArrayType
	LongArrayType
)

var typeNames = [...]string{
	EndType:       "End",
	ByteType:      "Byte",
	ShortType:     "Short",
	IntType:       "Int",
	LongType:      "Long",
	FloatType:     "Float",
	DoubleType:    "Double",
	ByteArrayType: "ByteArray",
	StringType:    "String",
	ListType:      "List",
	CompoundType:  "Compound",
	IntArrayType:  "IntArray",
	LongArrayType: "LongArray",
}

func (t Type) String() string {
	if !t.Valid() {
		return "<unknown type>"
	}
	return typeNames[t]
}

// Valid reports whether t is one of the 13 wire kinds.
func (t Type) Valid() bool {
	return t <= LongArrayType
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid type %d", byte(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// ParseType accepts the names produced by String, case-insensitively, with
// or without underscores ("byte_array", "BYTE_ARRAY", "bytearray") and the
// TAG_ prefix used by most NBT documentation.
func ParseType(v string) (Type, error) {
	k := strings.ToLower(strings.ReplaceAll(v, "_", ""))
	k = strings.TrimPrefix(k, "tag")
	for i, name := range typeNames {
		if strings.ToLower(name) == k {
			return Type(i), nil
		}
	}
	return EndType, fmt.Errorf("unrecognized type %q", v)
}

func Types() []Type {
	return []Type{
		EndType,
		ByteType,
		ShortType,
		IntType,
		LongType,
		FloatType,
		DoubleType,
		ByteArrayType,
		StringType,
		ListType,
		CompoundType,
		IntArrayType,
		LongArrayType,
	}
}

// IsLeaf reports whether a value of type t has no child nodes.
func (t Type) IsLeaf() bool {
	switch t {
	case ListType, CompoundType:
		return false
	default:
		return true
	}
}

func (t Type) IsArray() bool {
	switch t {
	case ByteArrayType, IntArrayType, LongArrayType:
		return true
	default:
		return false
	}
}

// IsInteger reports whether values of type t are stored in Value.Int.
func (t Type) IsInteger() bool {
	switch t {
	case ByteType, ShortType, IntType, LongType:
		return true
	default:
		return false
	}
}

func (t Type) IsNumeric() bool {
	return t.IsInteger() || t == FloatType || t == DoubleType
}

// BitSize is the width of an integer or floating point type, 0 otherwise.
func (t Type) BitSize() int {
	switch t {
	case ByteType:
		return 8
	case ShortType:
		return 16
	case IntType, FloatType:
		return 32
	case LongType, DoubleType:
		return 64
	default:
		return 0
	}
}
