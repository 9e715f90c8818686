package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbt-format/export"
	"github.com/signadot/nbt-format/nbtfile"
	"github.com/signadot/nbt-format/tag"
	"github.com/signadot/nbt-format/view"
)

func viewMain(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args, func(i int, nf *nbtfile.File) error {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n---\n"); err != nil {
				return err
			}
		}
		return writeTree(cfg.MainConfig, cc.Out, nf.Root)
	})
}

// writeTree writes n and its descendants in the configured output format.
func writeTree(cfg *MainConfig, w io.Writer, n *tag.Node) error {
	f := cfg.format()
	if f.IsExport() {
		return export.Encode(n, w, f, cfg.exportOpts()...)
	}
	opts := cfg.lineOpts(w)
	for e := range view.Flatten(n) {
		if _, err := fmt.Fprintln(w, view.Line(e, opts...)); err != nil {
			return err
		}
	}
	return nil
}
