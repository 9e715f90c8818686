package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbt-format/libdiff"
	"github.com/signadot/nbt-format/tag"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := loadFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := loadFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	if cfg.format().IsJSON() {
		return diffPatch(cfg, cc, from.Root, to.Root)
	}
	lines := libdiff.Diff(from.Root, to.Root)
	if !libdiff.Changed(lines) {
		return nil
	}
	err = libdiff.Format(cc.Out, lines,
		libdiff.Context(cfg.Context),
		libdiff.Color(cfg.useColor(cc.Out)))
	if err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// diffPatch prints a JSON merge patch instead of a line diff.
func diffPatch(cfg *DiffConfig, cc *cli.Context, from, to *tag.Node) error {
	p, err := libdiff.MergePatch(from, to, cfg.exportOpts()...)
	if err != nil {
		return err
	}
	if libdiff.EmptyPatch(p) {
		return nil
	}
	if _, err := fmt.Fprintf(cc.Out, "%s\n", p); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
