package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbt-format/format"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "z",
			Aliases:     []string{"compression"},
			Description: "file compression: auto, none, gzip, zlib",
			Type:        cli.NamedFuncOpt(cfg.compressionOpt, "(compression)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: " + format.Help(),
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nbt").
		WithSynopsis("nbt [opts] command [opts]").
		WithDescription("nbt is a tool for viewing and editing NBT files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbtMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			FindCommand(cfg),
			DiffCommand(cfg),
			DumpCommand(cfg),
			SetCommand(cfg),
			AddCommand(cfg),
			AppendCommand(cfg),
			RmCommand(cfg),
			MvCommand(cfg),
			RetypeCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view nbt files one tag per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return viewMain(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithOpts(opts...).
		WithSynopsis("get <path> [files]").
		WithDescription("get the tag at a path, for example Level.Pos[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("find <expr> [files]").
		WithDescription(findDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find lists the tags for which <expr> is true.

<expr> is an expr-lang expression over the variables

  name   tag name, "" for list elements
  kind   tag type, for example "Short"
  depth  0 for the root
  path   path of the tag
  value  payload of scalars, strings and arrays
  size   element count of containers, length of strings

and getpath(p), the value at path p.

Example:

  nbt find 'kind == "Short" && value > 100' level.dat`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff nbt files, exiting 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithOpts(opts...).
		WithSynopsis("dump [files]").
		WithDescription("hex dump the uncompressed tag stream").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg, op: "set"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "set").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("set <path> <value> file").
		WithDescription("set the value of a scalar, string or array tag").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg, op: "add"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "add").
		WithAliases("a").
		WithOpts(opts...).
		WithSynopsis("add <compound-path> <name> <type> [value] file").
		WithDescription("add a named tag at the end of a compound; '.' is the root").
		WithRun(func(cc *cli.Context, args []string) error {
			return add(cfg, cc, args)
		})
}

func AppendCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg, op: "append"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "append").
		WithOpts(opts...).
		WithSynopsis("append <list-path> <type> [value] file").
		WithDescription("append an element to a list").
		WithRun(func(cc *cli.Context, args []string) error {
			return appendElem(cfg, cc, args)
		})
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg, op: "rm"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "rm").
		WithOpts(opts...).
		WithSynopsis("rm <path> file").
		WithDescription("remove a tag").
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
}

func MvCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg, op: "mv"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "mv").
		WithOpts(opts...).
		WithSynopsis("mv <path> <new-name> file").
		WithDescription("rename a compound member in place").
		WithRun(func(cc *cli.Context, args []string) error {
			return mv(cfg, cc, args)
		})
}

func RetypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg, op: "retype"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "retype").
		WithOpts(opts...).
		WithSynopsis("retype <path> <type> file").
		WithDescription("change the type of a tag, resetting its value").
		WithRun(func(cc *cli.Context, args []string) error {
			return retype(cfg, cc, args)
		})
}
