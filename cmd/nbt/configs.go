package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/nbt-format/export"
	"github.com/signadot/nbt-format/format"
	"github.com/signadot/nbt-format/nbtfile"
	"github.com/signadot/nbt-format/view"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='output with color'"`
	Indent int  `cli:"name=indent desc='spaces of indentation per level'"`
	Paths  bool `cli:"name=p aliases=paths desc='show paths instead of names'"`
	Typed  bool `cli:"name=typed desc='include types in yaml and json output'"`

	Compression nbtfile.Compression
	OutFormat   *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) compressionOpt(_ *cli.Context, v string) (any, error) {
	c, err := nbtfile.ParseCompression(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Compression = c
	return c, nil
}

func (cfg *MainConfig) loadOpts() []nbtfile.LoadOption {
	return []nbtfile.LoadOption{nbtfile.WithCompression(cfg.Compression)}
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.ViewFormat
}

func (cfg *MainConfig) exportOpts() []export.Option {
	return []export.Option{export.Typed(cfg.Typed)}
}

func (cfg *MainConfig) lineOpts(w io.Writer) []view.LineOption {
	res := []view.LineOption{
		view.Indent(cfg.Indent),
		view.WithPath(cfg.Paths),
	}
	if cfg.useColor(w) {
		res = append(res, view.WithColors(view.NewColors()))
	}
	return res
}

// useColor is -color if given, otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type FindConfig struct {
	*MainConfig
	Count bool `cli:"name=c aliases=count desc='only print the number of matches'"`

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context int  `cli:"name=U aliases=context desc='lines of context, -1 for all'"`

	Diff *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

// EditConfig is shared by the commands that change a file.
type EditConfig struct {
	*MainConfig
	Out    string `cli:"name=o desc='write the result here instead of in place'"`
	DryRun bool   `cli:"name=n desc='do not write, only report whether the file would change'"`

	op   string
	Edit *cli.Command
}
