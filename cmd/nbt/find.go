package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbt-format/nbtfile"
	"github.com/signadot/nbt-format/query"
	"github.com/signadot/nbt-format/view"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := append(cfg.lineOpts(cc.Out), view.WithPath(true), view.Indent(0))
	total := 0
	err = eachFile(cfg.MainConfig, cc, args[1:], func(_ int, nf *nbtfile.File) error {
		for e, err := range query.Find(nf.Root, q) {
			if err != nil {
				return err
			}
			total++
			if cfg.Count {
				continue
			}
			if _, err := fmt.Fprintln(cc.Out, view.Line(e, opts...)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if cfg.Count {
		_, err = fmt.Fprintln(cc.Out, total)
	}
	return err
}
