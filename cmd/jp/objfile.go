package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jsonplan/go-jsonplan/encode"
	"github.com/jsonplan/go-jsonplan/ir"
	"github.com/jsonplan/go-jsonplan/libdiff"
	"github.com/jsonplan/go-jsonplan/parse"
	"github.com/jsonplan/go-jsonplan/store"
)

// loadDoc reads a document from a file path or, for "-", stdin. The
// returned raw bytes are the pre-edit on-disk bytes used for dry-run
// diffs.
func loadDoc(cfg *MainConfig, path string) (*ir.Node, []byte, error) {
	if path == "-" || cfg.Y {
		var d []byte
		var err error
		if path == "-" {
			d, err = io.ReadAll(os.Stdin)
		} else {
			d, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, nil, err
		}
		node, err := parse.Parse(d, cfg.parseOpts(path)...)
		if err != nil {
			return nil, nil, &store.ParseError{Path: path, Err: err}
		}
		return node, d, nil
	}
	return cfg.store().Load(path)
}

// finish commits doc onto path, or in dry-run mode prints the unified
// diff against the pre-edit bytes instead.
func finish(cfg *MainConfig, cc *cli.Context, path string, doc *ir.Node, before []byte, dryRun bool) error {
	if dryRun {
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(doc, buf); err != nil {
			return err
		}
		d := libdiff.Unified(before, buf.Bytes(), "a/"+path, "b/"+path)
		_, err := io.WriteString(cc.Out, d)
		return err
	}
	if path == "-" {
		return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...)
	}
	_, digest, err := cfg.store().Commit(path, doc, store.WithBackup(!cfg.NoBackup))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s %s\n", digest, path)
	return err
}
