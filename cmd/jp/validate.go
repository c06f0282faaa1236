package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jsonplan/go-jsonplan/encode"
	"github.com/jsonplan/go-jsonplan/ir"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: validate requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		doc, _, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		// the digest of the bytes a commit of this document would write
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(doc, buf); err != nil {
			return err
		}
		sum := sha256.Sum256(buf.Bytes())
		if _, err := fmt.Fprintf(cc.Out, "%s %s\n", hex.EncodeToString(sum[:]), arg); err != nil {
			return err
		}
		if !cfg.Keys || doc.Type != ir.ObjectType {
			continue
		}
		for _, f := range doc.Fields {
			if _, err := fmt.Fprintf(cc.Out, "  %s\n", f.String); err != nil {
				return err
			}
		}
	}
	return nil
}
