// Package format names the textual renderings a tag tree can be printed
// in. The binary format itself is not among them; it is the only format
// trees are read from and saved to.
package format

import (
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	// ViewFormat is one line per tag, as the view package renders it.
	ViewFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// names are indexed by Format; each entry is the long name then the short one.
var names = [...][2]string{
	ViewFormat: {"view", "v"},
	YAMLFormat: {"yaml", "y"},
	JSONFormat: {"json", "j"},
}

// Formats lists the formats in option order.
func Formats() []Format {
	return []Format{ViewFormat, YAMLFormat, JSONFormat}
}

// Help lists the accepted names, for option descriptions.
func Help() string {
	parts := make([]string, 0, len(names))
	for _, f := range Formats() {
		parts = append(parts, names[f][0]+"/"+names[f][1])
	}
	return strings.Join(parts, ", ")
}

func ParseFormat(v string) (Format, error) {
	for _, f := range Formats() {
		if v == names[f][0] || v == names[f][1] {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(names) {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(names[f][0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsExport reports whether f is rendered from the generic value tree of
// package export rather than line by line.
func (f Format) IsExport() bool { return f == YAMLFormat || f == JSONFormat }

func (f Format) IsJSON() bool { return f == JSONFormat }
