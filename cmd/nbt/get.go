package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbt-format/nbtfile"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args[1:], func(_ int, nf *nbtfile.File) error {
		n, err := nf.Root.Get(p)
		if err != nil {
			return err
		}
		return writeTree(cfg.MainConfig, cc.Out, n)
	})
}
