package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/jsonplan/go-jsonplan/encode"
	"github.com/jsonplan/go-jsonplan/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	var encOpts []encode.EncodeOption
	if cfg.Canon {
		encOpts = append(encOpts, encode.SortKeys(true))
	}
	sides := make([][]byte, 2)
	for i, arg := range args {
		doc, _, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(doc, buf, encOpts...); err != nil {
			return err
		}
		sides[i] = buf.Bytes()
	}
	d := libdiff.Unified(sides[0], sides[1], args[0], args[1])
	_, err = io.WriteString(cc.Out, d)
	return err
}
