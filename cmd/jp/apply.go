package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jsonplan/go-jsonplan/patch"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: apply requires exactly one file", cli.ErrUsage)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: apply requires -patch <patchfile>", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return err
	}
	ops, err := patch.DecodeBytes(pd, cfg.parseOpts(cfg.PatchFile)...)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.PatchFile, err)
	}
	path := args[0]
	doc, before, err := loadDoc(cfg.MainConfig, path)
	if err != nil {
		return err
	}
	// a failing patch leaves the in-memory document partially edited;
	// nothing reaches storage unless every operation succeeds
	doc, err = patch.Apply(doc, ops, patch.Upsert(cfg.Upsert))
	if err != nil {
		return err
	}
	return finish(cfg.MainConfig, cc, path, doc, before, cfg.DryRun)
}
