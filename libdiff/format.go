package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type formatOpts struct {
	context int
	color   bool
}

type FormatOption func(*formatOpts)

// Context keeps n equal lines around each change; negative keeps all.
func Context(n int) FormatOption {
	return func(o *formatOpts) { o.context = n }
}

func Color(v bool) FormatOption {
	return func(o *formatOpts) { o.color = v }
}

// Format writes lines prefixed by their op, eliding equal lines further
// than the context from a change with "...".
func Format(w io.Writer, lines []Line, opts ...FormatOption) error {
	fo := &formatOpts{context: 3}
	for _, opt := range opts {
		opt(fo)
	}
	keep := make([]bool, len(lines))
	for i := range lines {
		if lines[i].Op == Equal && fo.context >= 0 {
			continue
		}
		keep[i] = true
		if lines[i].Op == Equal {
			continue
		}
		for j := max(0, i-fo.context); j < min(len(lines), i+fo.context+1); j++ {
			keep[j] = true
		}
	}
	ins := color.New(color.FgGreen).SprintfFunc()
	del := color.New(color.FgRed).SprintfFunc()
	elided := false
	for i := range lines {
		if !keep[i] {
			if !elided {
				if _, err := fmt.Fprintln(w, "..."); err != nil {
					return err
				}
			}
			elided = true
			continue
		}
		elided = false
		l := lines[i].Op.String() + " " + lines[i].Text
		if fo.color {
			switch lines[i].Op {
			case Insert:
				l = ins("%s", l)
			case Delete:
				l = del("%s", l)
			}
		}
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
