// Package export projects tag trees onto generic YAML or JSON documents for
// reading and piping into other tools. The projection is one way: numeric
// widths are lost unless Typed is used, and nothing reads it back.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/nbt-format/format"
	"github.com/signadot/nbt-format/tag"
)

type exportOpts struct {
	typed bool
}

type Option func(*exportOpts)

// Typed wraps every value as a mapping of its type and value.
func Typed(v bool) Option {
	return func(o *exportOpts) { o.typed = v }
}

// ToAny converts n's value to generic data. Compounds become
// yaml.MapSlice so that child order survives.
func ToAny(n *tag.Node, opts ...Option) any {
	eo := &exportOpts{}
	for _, opt := range opts {
		opt(eo)
	}
	return toAny(&n.Value, eo)
}

func toAny(v *tag.Value, eo *exportOpts) any {
	var res any
	switch v.Type {
	case tag.ByteType, tag.ShortType, tag.IntType, tag.LongType:
		res = v.Int
	case tag.FloatType:
		// shortest decimal that reads back as the same float32
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v.Float32), 'g', -1, 32), 64)
		res = f
	case tag.DoubleType:
		res = v.Float64
	case tag.StringType:
		res = v.String
	case tag.ByteArrayType:
		res = ints(v.Bytes)
	case tag.IntArrayType:
		res = ints(v.Ints)
	case tag.LongArrayType:
		res = ints(v.Longs)
	case tag.ListType:
		elems := make([]any, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = toAny(&e.Value, eo)
		}
		res = elems
	case tag.CompoundType:
		m := make(yaml.MapSlice, 0, v.Compound.Len())
		for name, c := range v.Compound.All() {
			m = append(m, yaml.MapItem{Key: name, Value: toAny(&c.Value, eo)})
		}
		res = m
	}
	if !eo.typed {
		return res
	}
	typed := yaml.MapSlice{{Key: "type", Value: v.Type.String()}}
	if v.Type == tag.ListType {
		typed = append(typed, yaml.MapItem{Key: "elemType", Value: v.ElemType.String()})
	}
	return append(typed, yaml.MapItem{Key: "value", Value: res})
}

func ints[T int8 | int32 | int64](vs []T) []any {
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = int64(v)
	}
	return res
}

// Marshal renders n, including its name, as YAML or JSON.
func Marshal(n *tag.Node, f format.Format, opts ...Option) ([]byte, error) {
	doc := yaml.MapSlice{{Key: n.Name, Value: ToAny(n, opts...)}}
	switch f {
	case format.YAMLFormat:
		return yaml.Marshal(doc)
	case format.JSONFormat:
		return yaml.MarshalWithOptions(doc, yaml.JSON())
	default:
		return nil, fmt.Errorf("%w: cannot export as %s", format.ErrBadFormat, f)
	}
}

func Encode(n *tag.Node, w io.Writer, f format.Format, opts ...Option) error {
	d, err := Marshal(n, f, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
