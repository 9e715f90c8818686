package decode

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/signadot/nbt-format/tag"
)

// Decode reads one root compound tag from the start of d and returns it
// together with the number of bytes it occupied. d must already be
// decompressed.
//
// Malformed input yields a *FormatError, input that ends early a *IOError.
// No tree is returned with an error.
func Decode(d []byte, opts ...Option) (*tag.Node, int, error) {
	dOpts := &decodeOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(dOpts)
	}
	r := &reader{d: d, opts: dOpts}
	t, err := r.u8()
	if err != nil {
		return nil, 0, err
	}
	if tag.Type(t) != tag.CompoundType {
		return nil, 0, r.formatErr(0, "root tag is %s, not Compound", typeName(t))
	}
	name, err := r.str("name")
	if err != nil {
		return nil, 0, err
	}
	v, err := r.payload(tag.CompoundType, 1)
	if err != nil {
		return nil, 0, err
	}
	return &tag.Node{Name: name, Value: v}, r.off, nil
}

type reader struct {
	d    []byte
	off  int
	opts *decodeOpts
}

func (r *reader) formatErr(off int, format string, args ...any) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...), Offset: off}
}

func (r *reader) take(n int) ([]byte, error) {
	if rem := len(r.d) - r.off; n > rem {
		return nil, &IOError{Offset: r.off, Need: n - rem}
	}
	res := r.d[r.off : r.off+n]
	r.off += n
	return res, nil
}

func (r *reader) u8() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) u16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) u64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// str reads a length prefixed UTF-8 string.
func (r *reader) str(what string) (string, error) {
	n, err := r.u16()
	if err != nil {
		return "", err
	}
	start := r.off
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", r.formatErr(start, "invalid UTF-8 in %s", what)
	}
	return string(b), nil
}

// count reads an int32 element count and checks that the remaining input
// can hold count elements of at least elemSize bytes each.
func (r *reader) count(what string, elemSize int) (int, error) {
	start := r.off
	u, err := r.u32()
	if err != nil {
		return 0, err
	}
	n := int32(u)
	if n < 0 {
		return 0, r.formatErr(start, "negative %s count %d", what, n)
	}
	need := int64(n) * int64(elemSize)
	if rem := int64(len(r.d) - r.off); need > rem {
		return 0, &IOError{Offset: r.off, Need: int(need - rem)}
	}
	return int(n), nil
}

func (r *reader) payload(t tag.Type, depth int) (tag.Value, error) {
	switch t {
	case tag.ByteType:
		b, err := r.u8()
		return tag.Value{Type: t, Int: int64(int8(b))}, err
	case tag.ShortType:
		u, err := r.u16()
		return tag.Value{Type: t, Int: int64(int16(u))}, err
	case tag.IntType:
		u, err := r.u32()
		return tag.Value{Type: t, Int: int64(int32(u))}, err
	case tag.LongType:
		u, err := r.u64()
		return tag.Value{Type: t, Int: int64(u)}, err
	case tag.FloatType:
		u, err := r.u32()
		return tag.Value{Type: t, Float32: math.Float32frombits(u)}, err
	case tag.DoubleType:
		u, err := r.u64()
		return tag.Value{Type: t, Float64: math.Float64frombits(u)}, err
	case tag.StringType:
		s, err := r.str("string")
		return tag.Value{Type: t, String: s}, err
	case tag.ByteArrayType:
		n, err := r.count("byte array", 1)
		if err != nil {
			return tag.Value{}, err
		}
		b, _ := r.take(n)
		res := make([]int8, n)
		for i := range b {
			res[i] = int8(b[i])
		}
		return tag.FromByteArray(res), nil
	case tag.IntArrayType:
		n, err := r.count("int array", 4)
		if err != nil {
			return tag.Value{}, err
		}
		res := make([]int32, n)
		for i := range res {
			u, _ := r.u32()
			res[i] = int32(u)
		}
		return tag.FromIntArray(res), nil
	case tag.LongArrayType:
		n, err := r.count("long array", 8)
		if err != nil {
			return tag.Value{}, err
		}
		res := make([]int64, n)
		for i := range res {
			u, _ := r.u64()
			res[i] = int64(u)
		}
		return tag.FromLongArray(res), nil
	case tag.ListType:
		return r.list(depth)
	case tag.CompoundType:
		return r.compound(depth)
	}
	return tag.Value{}, r.formatErr(r.off, "no payload for %s", t)
}

func (r *reader) list(depth int) (tag.Value, error) {
	if depth > r.opts.maxDepth {
		return tag.Value{}, r.formatErr(r.off, "nesting exceeds depth limit %d", r.opts.maxDepth)
	}
	typeOff := r.off
	b, err := r.u8()
	if err != nil {
		return tag.Value{}, err
	}
	et := tag.Type(b)
	if !et.Valid() {
		return tag.Value{}, r.formatErr(typeOff, "invalid list element type %d", b)
	}
	n, err := r.count("list", minSize(et))
	if err != nil {
		return tag.Value{}, err
	}
	if et == tag.EndType && n > 0 {
		return tag.Value{}, r.formatErr(typeOff, "list of End with %d elements", n)
	}
	res := tag.Value{Type: tag.ListType, ElemType: et}
	if n > 0 {
		res.Elems = make([]*tag.Node, 0, n)
	}
	for range n {
		v, err := r.payload(et, depth+1)
		if err != nil {
			return tag.Value{}, err
		}
		res.Elems = append(res.Elems, &tag.Node{Value: v})
	}
	return res, nil
}

func (r *reader) compound(depth int) (tag.Value, error) {
	if depth > r.opts.maxDepth {
		return tag.Value{}, r.formatErr(r.off, "nesting exceeds depth limit %d", r.opts.maxDepth)
	}
	res := tag.NewCompound()
	for {
		typeOff := r.off
		b, err := r.u8()
		if err != nil {
			return tag.Value{}, err
		}
		t := tag.Type(b)
		if t == tag.EndType {
			return res, nil
		}
		if !t.Valid() {
			return tag.Value{}, r.formatErr(typeOff, "invalid tag type %d", b)
		}
		nameOff := r.off
		name, err := r.str("name")
		if err != nil {
			return tag.Value{}, err
		}
		if res.Compound.Index(name) >= 0 {
			return tag.Value{}, r.formatErr(nameOff, "duplicate name %q", name)
		}
		v, err := r.payload(t, depth+1)
		if err != nil {
			return tag.Value{}, err
		}
		if err := res.Compound.Add(&tag.Node{Name: name, Value: v}); err != nil {
			return tag.Value{}, r.formatErr(nameOff, "%v", err)
		}
	}
}

// minSize is the smallest encoded payload of a value of type t.
func minSize(t tag.Type) int {
	switch t {
	case tag.ByteType, tag.CompoundType:
		return 1
	case tag.ShortType, tag.StringType:
		return 2
	case tag.IntType, tag.FloatType, tag.ByteArrayType, tag.IntArrayType, tag.LongArrayType:
		return 4
	case tag.LongType, tag.DoubleType:
		return 8
	case tag.ListType:
		return 5
	default:
		return 0
	}
}

func typeName(b byte) string {
	if t := tag.Type(b); t.Valid() {
		return t.String()
	}
	return fmt.Sprintf("invalid type %d", b)
}
