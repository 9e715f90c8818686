package encode

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/signadot/nbt-format/decode"
	"github.com/signadot/nbt-format/tag"
	"github.com/signadot/nbt-format/tag/tpath"
)

type EncState struct {
	buf      []byte
	maxDepth int
	sizeHint int

	path []*tpath.Path
}

// Encode writes node as a root tag to w. Nothing is written unless the
// whole tree encodes.
func Encode(node *tag.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Marshal returns the encoding of node, which must be a compound.
func Marshal(node *tag.Node, opts ...EncodeOption) ([]byte, error) {
	es := &EncState{maxDepth: decode.DefaultMaxDepth}
	for _, opt := range opts {
		opt(es)
	}
	if node.Type != tag.CompoundType {
		return nil, es.errorf("root is %s, not Compound", node.Type)
	}
	es.buf = make([]byte, 0, max(es.sizeHint, 64))
	es.buf = append(es.buf, byte(tag.CompoundType))
	if err := es.str("name", node.Name); err != nil {
		return nil, err
	}
	if err := es.payload(&node.Value, 1); err != nil {
		return nil, err
	}
	return es.buf, nil
}

func (es *EncState) errorf(format string, args ...any) error {
	var p *tpath.Path
	for _, seg := range es.path {
		p = tpath.Join(p, seg)
	}
	return &tag.ValidationError{Op: "encode", Path: p.String(), Msg: fmt.Sprintf(format, args...)}
}

func (es *EncState) str(what, v string) error {
	if len(v) > tag.MaxStringLen {
		return es.errorf("%s of %d bytes exceeds the %d byte limit", what, len(v), tag.MaxStringLen)
	}
	if !utf8.ValidString(v) {
		return es.errorf("invalid UTF-8 in %s", what)
	}
	es.buf = binary.BigEndian.AppendUint16(es.buf, uint16(len(v)))
	es.buf = append(es.buf, v...)
	return nil
}

func (es *EncState) count(t tag.Type, n int) error {
	if n > math.MaxInt32 {
		return es.errorf("%s of %d elements overflows the count", t, n)
	}
	es.buf = binary.BigEndian.AppendUint32(es.buf, uint32(n))
	return nil
}

func (es *EncState) payload(v *tag.Value, depth int) error {
	switch v.Type {
	case tag.ByteType, tag.ShortType, tag.IntType, tag.LongType:
		lo, hi := tag.IntRange(v.Type)
		if v.Int < lo || v.Int > hi {
			return es.errorf("%d overflows %s", v.Int, v.Type)
		}
		switch v.Type {
		case tag.ByteType:
			es.buf = append(es.buf, byte(v.Int))
		case tag.ShortType:
			es.buf = binary.BigEndian.AppendUint16(es.buf, uint16(v.Int))
		case tag.IntType:
			es.buf = binary.BigEndian.AppendUint32(es.buf, uint32(v.Int))
		default:
			es.buf = binary.BigEndian.AppendUint64(es.buf, uint64(v.Int))
		}
	case tag.FloatType:
		es.buf = binary.BigEndian.AppendUint32(es.buf, math.Float32bits(v.Float32))
	case tag.DoubleType:
		es.buf = binary.BigEndian.AppendUint64(es.buf, math.Float64bits(v.Float64))
	case tag.StringType:
		return es.str("string", v.String)
	case tag.ByteArrayType:
		if err := es.count(v.Type, len(v.Bytes)); err != nil {
			return err
		}
		for _, b := range v.Bytes {
			es.buf = append(es.buf, byte(b))
		}
	case tag.IntArrayType:
		if err := es.count(v.Type, len(v.Ints)); err != nil {
			return err
		}
		for _, i := range v.Ints {
			es.buf = binary.BigEndian.AppendUint32(es.buf, uint32(i))
		}
	case tag.LongArrayType:
		if err := es.count(v.Type, len(v.Longs)); err != nil {
			return err
		}
		for _, i := range v.Longs {
			es.buf = binary.BigEndian.AppendUint64(es.buf, uint64(i))
		}
	case tag.ListType:
		return es.list(v, depth)
	case tag.CompoundType:
		return es.compound(v, depth)
	default:
		return es.errorf("cannot encode %s value", v.Type)
	}
	return nil
}

func (es *EncState) list(v *tag.Value, depth int) error {
	if depth > es.maxDepth {
		return es.errorf("nesting exceeds depth limit %d", es.maxDepth)
	}
	if !v.ElemType.Valid() {
		return es.errorf("invalid list element type %d", byte(v.ElemType))
	}
	if v.ElemType == tag.EndType && len(v.Elems) != 0 {
		return es.errorf("list of End holds %d elements", len(v.Elems))
	}
	es.buf = append(es.buf, byte(v.ElemType))
	if err := es.count(v.Type, len(v.Elems)); err != nil {
		return err
	}
	for i, e := range v.Elems {
		es.path = append(es.path, tpath.Index(i))
		if e.Type != v.ElemType {
			return es.errorf("element is %s, list holds %s", e.Type, v.ElemType)
		}
		if err := es.payload(&e.Value, depth+1); err != nil {
			return err
		}
		es.path = es.path[:len(es.path)-1]
	}
	return nil
}

func (es *EncState) compound(v *tag.Value, depth int) error {
	if depth > es.maxDepth {
		return es.errorf("nesting exceeds depth limit %d", es.maxDepth)
	}
	seen := make(map[string]struct{}, v.Compound.Len())
	for name, c := range v.Compound.All() {
		es.path = append(es.path, tpath.Field(name))
		if _, dup := seen[name]; dup {
			return es.errorf("duplicate name")
		}
		seen[name] = struct{}{}
		if c.Type == tag.EndType || !c.Type.Valid() {
			return es.errorf("cannot encode %s value", c.Type)
		}
		es.buf = append(es.buf, byte(c.Type))
		if err := es.str("name", name); err != nil {
			return err
		}
		if err := es.payload(&c.Value, depth+1); err != nil {
			return err
		}
		es.path = es.path[:len(es.path)-1]
	}
	es.buf = append(es.buf, byte(tag.EndType))
	return nil
}
