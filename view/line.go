package view

import (
	"strconv"
	"strings"

	"github.com/signadot/nbt-format/tag"
)

type lineOpts struct {
	indent int
	colors *Colors
	path   bool
}

type LineOption func(*lineOpts)

// Indent prefixes each line with n spaces per depth level.
func Indent(n int) LineOption {
	return func(o *lineOpts) { o.indent = n }
}

func WithColors(c *Colors) LineOption {
	return func(o *lineOpts) { o.colors = c }
}

// WithPath renders the entry's path instead of its bare name.
func WithPath(v bool) LineOption {
	return func(o *lineOpts) { o.path = v }
}

// Line renders e on one line, for example
//
//	Short("id"): 276
//	List("Pos"): [3 items]
func Line(e Entry, opts ...LineOption) string {
	lo := &lineOpts{}
	for _, opt := range opts {
		opt(lo)
	}
	n := e.Node
	c := lo.colors
	buf := &strings.Builder{}
	buf.WriteString(strings.Repeat(" ", lo.indent*e.Depth))
	buf.WriteString(c.color(n.Type, TypeColor, n.Type.String()))
	label := ""
	switch {
	case lo.path && e.Path != nil:
		label = e.Path.String()
	case !lo.path && n.Name != "":
		label = strconv.Quote(n.Name)
	}
	if label != "" {
		buf.WriteString(c.color(n.Type, SepColor, "("))
		buf.WriteString(c.color(n.Type, NameColor, label))
		buf.WriteString(c.color(n.Type, SepColor, ")"))
	}
	buf.WriteString(c.color(n.Type, SepColor, ":"))
	buf.WriteByte(' ')
	buf.WriteString(c.color(n.Type, ValueColor, Summary(&n.Value)))
	return buf.String()
}

// Summary renders a value the way it is shown and edited: integers in
// decimal with L marking Long and f marking Float, strings quoted, and
// containers as their size.
func Summary(v *tag.Value) string {
	switch v.Type {
	case tag.ByteType, tag.ShortType, tag.IntType:
		return strconv.FormatInt(v.Int, 10)
	case tag.LongType:
		return strconv.FormatInt(v.Int, 10) + "L"
	case tag.FloatType:
		return strconv.FormatFloat(float64(v.Float32), 'g', -1, 32) + "f"
	case tag.DoubleType:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case tag.StringType:
		return strconv.Quote(v.String)
	case tag.ByteArrayType:
		return "[" + strconv.Itoa(len(v.Bytes)) + " bytes]"
	case tag.IntArrayType:
		return "[" + strconv.Itoa(len(v.Ints)) + " ints]"
	case tag.LongArrayType:
		return "[" + strconv.Itoa(len(v.Longs)) + " longs]"
	case tag.ListType:
		return "[" + strconv.Itoa(len(v.Elems)) + " items]"
	case tag.CompoundType:
		return "{" + strconv.Itoa(v.Compound.Len()) + " entries}"
	}
	return ""
}

// EditText is the text offered when editing v: Summary without quotes and
// type suffixes, and arrays spelled out. Lists and compounds have none.
func EditText(v *tag.Value) string {
	switch v.Type {
	case tag.LongType:
		return strconv.FormatInt(v.Int, 10)
	case tag.FloatType:
		return strconv.FormatFloat(float64(v.Float32), 'g', -1, 32)
	case tag.StringType:
		return v.String
	case tag.ByteArrayType:
		return joinInts(v.Bytes)
	case tag.IntArrayType:
		return joinInts(v.Ints)
	case tag.LongArrayType:
		return joinInts(v.Longs)
	case tag.ListType, tag.CompoundType:
		return ""
	}
	return Summary(v)
}

func joinInts[T int8 | int32 | int64](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
