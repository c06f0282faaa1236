package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jsonplan/go-jsonplan/encode"
	"github.com/jsonplan/go-jsonplan/pointer"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires at least one file", cli.ErrUsage)
	}
	p, err := pointer.Parse(cfg.Ptr)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, arg := range args {
		doc, _, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := pointer.Get(doc, p)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
