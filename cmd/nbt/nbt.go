package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbt-format/nbtfile"
	"github.com/signadot/nbt-format/tag/tpath"
)

func nbtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: -indent must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadFile loads file, or stdin for "-".
func loadFile(cfg *MainConfig, cc *cli.Context, file string) (*nbtfile.File, error) {
	if file == "-" {
		return nbtfile.Read(cc.In, cfg.loadOpts()...)
	}
	return nbtfile.Load(file, cfg.loadOpts()...)
}

// eachFile calls f on each loaded file, or on stdin when there are none.
func eachFile(cfg *MainConfig, cc *cli.Context, files []string, f func(i int, nf *nbtfile.File) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		nf, err := loadFile(cfg, cc, file)
		if err != nil {
			return err
		}
		if err := f(i, nf); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

// parsePath parses a path argument, where "." names the root.
func parsePath(arg string) (*tpath.Path, error) {
	p, err := tpath.Parse(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, nil
}
