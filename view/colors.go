package view

import (
	"fmt"

	"github.com/signadot/nbt-format/tag"

	"github.com/fatih/color"
)

type Colorable struct {
	Type tag.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TypeColor ColorAttr = iota
	NameColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range tag.Types() {
		able := Colorable{Type: t, Attr: TypeColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = NameColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	for _, t := range []tag.Type{tag.ByteType, tag.ShortType, tag.IntType, tag.LongType, tag.FloatType, tag.DoubleType} {
		able.Type = t
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able.Type = tag.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	for _, t := range []tag.Type{tag.ByteArrayType, tag.IntArrayType, tag.LongArrayType, tag.ListType} {
		able.Type = t
		colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	}
	able.Type = tag.CompoundType
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	return colors
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// color is safe on a nil receiver, which renders plain text.
func (c *Colors) color(t tag.Type, attr ColorAttr, v string) string {
	if c == nil {
		return v
	}
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", v)
}
