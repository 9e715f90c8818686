package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbt-format/debug"
	"github.com/signadot/nbt-format/edit"
	"github.com/signadot/nbt-format/tag"
)

// editFile loads file, applies f and saves the result when f changed
// anything, then reports "modified" or "unchanged".
func editFile(cfg *EditConfig, cc *cli.Context, file string, f func(ed *edit.Editor) error) error {
	out := cfg.Out
	if out == "" {
		out = file
	}
	if file == "-" && out == "-" && !cfg.DryRun {
		return fmt.Errorf("%w: editing stdin requires -o", cli.ErrUsage)
	}
	nf, err := loadFile(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	ed, err := edit.New(nf.Root)
	if err != nil {
		return err
	}
	if err := f(ed); err != nil {
		return err
	}
	if debug.Edit() {
		debug.Logf("%s %s: modified=%t\n", cfg.op, file, ed.Modified())
	}
	if !ed.Modified() {
		_, err = fmt.Fprintln(cc.Out, "unchanged")
		return err
	}
	if cfg.DryRun {
		_, err = fmt.Fprintln(cc.Out, "modified")
		return err
	}
	if out == "-" {
		return nf.Write(cc.Out)
	}
	if err := nf.SaveAs(out); err != nil {
		return fmt.Errorf("error saving %s: %w", out, err)
	}
	ed.MarkSaved()
	_, err = fmt.Fprintln(cc.Out, "modified")
	return err
}

func editArgs(cfg *EditConfig, cc *cli.Context, args []string, lo, hi int) ([]string, error) {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		return nil, err
	}
	if len(args) < lo || len(args) > hi {
		return nil, fmt.Errorf("%w: %s: wrong number of arguments", cli.ErrUsage, cfg.op)
	}
	return args, nil
}

// newValue builds a value of type t from an optional raw argument. Lists
// and compounds start empty.
func newValue(t tag.Type, raw []string) (tag.Value, error) {
	if len(raw) == 0 || t == tag.ListType || t == tag.CompoundType {
		if len(raw) != 0 {
			return tag.Value{}, fmt.Errorf("%w: %s takes no value", cli.ErrUsage, t)
		}
		return tag.Zero(t), nil
	}
	return tag.ParseValue(t, raw[0])
}

func parseType(arg string) (tag.Type, error) {
	t, err := tag.ParseType(arg)
	if err != nil {
		return t, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return t, nil
}

func set(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := editArgs(cfg, cc, args, 3, 3)
	if err != nil {
		return err
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	return editFile(cfg, cc, args[2], func(ed *edit.Editor) error {
		return ed.SetValue(p, args[1])
	})
}

func add(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := editArgs(cfg, cc, args, 4, 5)
	if err != nil {
		return err
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	t, err := parseType(args[2])
	if err != nil {
		return err
	}
	v, err := newValue(t, args[3:len(args)-1])
	if err != nil {
		return err
	}
	return editFile(cfg, cc, args[len(args)-1], func(ed *edit.Editor) error {
		return ed.Insert(p, args[1], v)
	})
}

func appendElem(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := editArgs(cfg, cc, args, 3, 4)
	if err != nil {
		return err
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	t, err := parseType(args[1])
	if err != nil {
		return err
	}
	v, err := newValue(t, args[2:len(args)-1])
	if err != nil {
		return err
	}
	return editFile(cfg, cc, args[len(args)-1], func(ed *edit.Editor) error {
		return ed.InsertListElement(p, v)
	})
}

func rm(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := editArgs(cfg, cc, args, 2, 2)
	if err != nil {
		return err
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	return editFile(cfg, cc, args[1], func(ed *edit.Editor) error {
		return ed.Delete(p)
	})
}

func mv(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := editArgs(cfg, cc, args, 3, 3)
	if err != nil {
		return err
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	parent, last := p.RSplit()
	if last == nil || last.Field == nil {
		return fmt.Errorf("%w: mv: %q is not a compound member", cli.ErrUsage, args[0])
	}
	return editFile(cfg, cc, args[2], func(ed *edit.Editor) error {
		return ed.Rename(parent, *last.Field, args[1])
	})
}

func retype(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := editArgs(cfg, cc, args, 3, 3)
	if err != nil {
		return err
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	t, err := parseType(args[1])
	if err != nil {
		return err
	}
	return editFile(cfg, cc, args[2], func(ed *edit.Editor) error {
		return ed.ChangeType(p, t)
	})
}
