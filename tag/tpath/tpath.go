// Package tpath implements the path syntax used to select a node in a tag
// tree.
//
// A path is a chain of segments starting below the root compound:
//   - "a.b" selects child "b" of compound child "a"
//   - "a[0]" selects element 0 of list "a"
//   - "[0]" is only valid below a list, so never first under a root
//   - "" is the root itself
//
// Field names containing '.', '[', ']', quotes, whitespace or control
// characters, and the empty name, are written as Go double quoted strings:
// `"my field".x`, `""`. Single quoted names are accepted on input.
package tpath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Path is one segment of a path; exactly one of Field and Index is set.
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

// Field returns a single field segment.
func Field(name string) *Path {
	return &Path{Field: &name}
}

// Index returns a single list index segment.
func Index(i int) *Path {
	return &Path{Index: &i}
}

// Join returns a new path of p's segments followed by q's. Neither input is
// modified.
func Join(p, q *Path) *Path {
	segs := append(p.Segments(), q.Segments()...)
	return fromSegments(segs)
}

// Segments returns copies of the segments of p, each with a nil Next.
func (p *Path) Segments() []*Path {
	var res []*Path
	for x := p; x != nil; x = x.Next {
		res = append(res, x.segment())
	}
	return res
}

// Len is the number of segments.
func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// RSplit splits p into its parent path and its last segment. The parent of
// a single segment path is nil, the root.
func (p *Path) RSplit() (parent, last *Path) {
	segs := p.Segments()
	if len(segs) == 0 {
		return nil, nil
	}
	return fromSegments(segs[:len(segs)-1]), segs[len(segs)-1]
}

func (p *Path) segment() *Path {
	res := &Path{}
	if p.Field != nil {
		f := *p.Field
		res.Field = &f
	}
	if p.Index != nil {
		i := *p.Index
		res.Index = &i
	}
	return res
}

func fromSegments(segs []*Path) *Path {
	var res *Path
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i].segment()
		s.Next = res
		res = s
	}
	return res
}

func (p *Path) String() string {
	if p == nil {
		return ""
	}
	buf := &strings.Builder{}
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(QuoteField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString renders only the first segment of p.
func (p *Path) SegmentString() string {
	if p == nil {
		return ""
	}
	return p.segment().String()
}

// QuoteField returns name as it appears in a path.
func QuoteField(name string) string {
	if NeedsQuote(name) {
		return strconv.Quote(name)
	}
	return name
}

func NeedsQuote(name string) bool {
	if name == "" {
		return true
	}
	for _, r := range name {
		switch r {
		case '.', '[', ']', '"', '\'', '\\':
			return true
		}
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

// Parse parses a path. The empty string and "." are the root and parse to
// nil.
func Parse(s string) (*Path, error) {
	if s == "" || s == "." {
		return nil, nil
	}
	var segs []*Path
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("unterminated index at offset %d in %q", i, s)
			}
			n, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("bad index %q at offset %d in %q", s[i+1:i+j], i, s)
			}
			segs = append(segs, Index(n))
			i += j + 1
			continue
		case c == '.':
			if len(segs) == 0 || i == len(s)-1 {
				return nil, fmt.Errorf("misplaced '.' at offset %d in %q", i, s)
			}
			i++
		case len(segs) != 0:
			return nil, fmt.Errorf("expected '.' or '[' at offset %d in %q", i, s)
		}
		name, n, err := parseField(s[i:])
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d in %q", err, i, s)
		}
		segs = append(segs, Field(name))
		i += n
	}
	return fromSegments(segs), nil
}

// MustParse is Parse for paths known to be valid.
func MustParse(s string) *Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseField(s string) (string, int, error) {
	switch s[0] {
	case '"':
		q, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", 0, fmt.Errorf("bad quoted field")
		}
		name, err := strconv.Unquote(q)
		if err != nil {
			return "", 0, err
		}
		return name, len(q), nil
	case '\'':
		buf := &strings.Builder{}
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '\\':
				if i+1 < len(s) {
					i++
					buf.WriteByte(s[i])
				}
			case '\'':
				return buf.String(), i + 1, nil
			default:
				buf.WriteByte(s[i])
			}
		}
		return "", 0, fmt.Errorf("unterminated quoted field")
	}
	end := strings.IndexAny(s, ".[")
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return "", 0, fmt.Errorf("empty field")
	}
	return s[:end], end, nil
}
