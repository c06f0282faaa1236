package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jsonplan "github.com/jsonplan/go-jsonplan"
)

func clone(cfg *CloneConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Clone.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: clone requires exactly one file", cli.ErrUsage)
	}
	if cfg.From == "" || cfg.To == "" {
		return fmt.Errorf("%w: clone requires -from and -to pointers", cli.ErrUsage)
	}
	path := args[0]
	doc, before, err := loadDoc(cfg.MainConfig, path)
	if err != nil {
		return err
	}
	doc, err = jsonplan.Clone(doc, cfg.From, cfg.To, cfg.Name)
	if err != nil {
		return err
	}
	return finish(cfg.MainConfig, cc, path, doc, before, cfg.DryRun)
}
