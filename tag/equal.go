package tag

import (
	"math"
	"slices"
)

// Equal reports whether a and b have the same names, types, values and
// child order. Floating point values are compared by bit pattern so NaN
// payloads count.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Name == b.Name && EqualValues(&a.Value, &b.Value)
}

func EqualValues(a, b *Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ByteType, ShortType, IntType, LongType:
		return a.Int == b.Int
	case FloatType:
		return math.Float32bits(a.Float32) == math.Float32bits(b.Float32)
	case DoubleType:
		return math.Float64bits(a.Float64) == math.Float64bits(b.Float64)
	case StringType:
		return a.String == b.String
	case ByteArrayType:
		return slices.Equal(a.Bytes, b.Bytes)
	case IntArrayType:
		return slices.Equal(a.Ints, b.Ints)
	case LongArrayType:
		return slices.Equal(a.Longs, b.Longs)
	case ListType:
		if a.ElemType != b.ElemType {
			return false
		}
		return slices.EqualFunc(a.Elems, b.Elems, Equal)
	case CompoundType:
		return slices.EqualFunc(a.Children(), b.Children(), Equal)
	}
	return true
}
