package tpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: ".", want: ""},
		{in: "a", want: "a"},
		{in: "a.b", want: "a.b"},
		{in: "a[0].b", want: "a[0].b"},
		{in: "[3]", want: "[3]"},
		{in: `"a.b".c`, want: `"a.b".c`},
		{in: `'x y'`, want: `"x y"`},
		{in: `""`, want: `""`},
		{in: `a."été"`, want: "a.été"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			q, err := Parse(p.String())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(p, q); diff != "" {
				t.Errorf("reparse (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{".a", "a.", "a..b", "a[", "a[x]", "a[-1]", `"abc`, "a b[0]x", "'abc"} {
		t.Run(in, func(t *testing.T) {
			if p, err := Parse(in); err == nil {
				t.Errorf("Parse(%q) = %v, want error", in, p)
			}
		})
	}
}

func TestJoinRSplit(t *testing.T) {
	a := MustParse("a.b")
	b := MustParse("[1].c")
	j := Join(a, b)
	if got := j.String(); got != "a.b[1].c" {
		t.Errorf("Join = %q", got)
	}
	if got := a.String(); got != "a.b" {
		t.Errorf("Join modified its input: %q", got)
	}
	parent, last := j.RSplit()
	if got := parent.String(); got != "a.b[1]" {
		t.Errorf("parent = %q", got)
	}
	if last.Field == nil || *last.Field != "c" || last.Next != nil {
		t.Errorf("last = %+v", last)
	}
	if j.Len() != 4 {
		t.Errorf("Len = %d", j.Len())
	}
	var root *Path
	if p, l := root.RSplit(); p != nil || l != nil {
		t.Errorf("root RSplit = %v, %v", p, l)
	}
}
