package debug

import (
	"fmt"
	"os"

	"github.com/signadot/nbt-format/tag"
	"github.com/signadot/nbt-format/tag/tpath"
	"github.com/signadot/nbt-format/view"
)

// Logf prints to stderr, rendering tag nodes and paths readably.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *tag.Node:
			args[i] = view.Line(view.Entry{Node: x})
		case *tpath.Path:
			if x == nil {
				args[i] = "<root>"
				continue
			}
			args[i] = x.String()
		case view.Entry:
			args[i] = view.Line(x, view.WithPath(true))
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
