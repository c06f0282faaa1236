package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jsonplan/go-jsonplan/ir"
	"github.com/jsonplan/go-jsonplan/parse"
	"github.com/jsonplan/go-jsonplan/patch"
	"github.com/jsonplan/go-jsonplan/pointer"
)

// edit runs the single-pointer commands set, add and remove.
func edit(op patch.Op, cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: %s requires exactly one file", cli.ErrUsage, op)
	}
	p, err := pointer.Parse(cfg.Ptr)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	var value *ir.Node
	if op != patch.OpRemove {
		if cfg.Value == "" {
			return fmt.Errorf("%w: %s requires -v <value>", cli.ErrUsage, op)
		}
		value, err = parse.Parse([]byte(cfg.Value))
		if err != nil {
			return fmt.Errorf("%w: bad -v value: %v", cli.ErrUsage, err)
		}
	}
	path := args[0]
	doc, before, err := loadDoc(cfg.MainConfig, path)
	if err != nil {
		return err
	}
	switch op {
	case patch.OpAdd:
		doc, err = pointer.Add(doc, p, value)
	case patch.OpReplace:
		doc, err = pointer.Replace(doc, p, value)
	case patch.OpRemove:
		doc, err = pointer.Remove(doc, p)
	}
	if err != nil {
		return err
	}
	return finish(cfg.MainConfig, cc, path, doc, before, cfg.DryRun)
}
