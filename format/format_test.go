package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"v": ViewFormat, "view": ViewFormat,
		"y": YAMLFormat, "yaml": YAMLFormat,
		"j": JSONFormat, "json": JSONFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %s, want %s", in, got, want)
		}
		var u Format
		if err := u.UnmarshalText([]byte(got.String())); err != nil || u != got {
			t.Errorf("%s: text round trip gave %v, %v", in, u, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestFormatKinds(t *testing.T) {
	if got, want := Help(), "view/v, yaml/y, json/j"; got != want {
		t.Errorf("Help() = %q, want %q", got, want)
	}
	for _, f := range Formats() {
		if got, want := f.IsExport(), f != ViewFormat; got != want {
			t.Errorf("%s.IsExport() = %t", f, got)
		}
	}
	if _, err := Format(7).MarshalText(); err == nil {
		t.Errorf("Format(7) marshalled")
	}
}
