package main

import (
	"encoding/hex"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbt-format/encode"
	"github.com/signadot/nbt-format/nbtfile"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args, func(_ int, nf *nbtfile.File) error {
		d, err := encode.Marshal(nf.Root)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "# %s, %d bytes\n", nf.Compression, len(d))
		w := hex.Dumper(cc.Out)
		if _, err := w.Write(d); err != nil {
			return err
		}
		return w.Close()
	})
}
