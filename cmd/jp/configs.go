package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/jsonplan/go-jsonplan/encode"
	"github.com/jsonplan/go-jsonplan/format"
	"github.com/jsonplan/go-jsonplan/parse"
	"github.com/jsonplan/go-jsonplan/store"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='force colored output'"`
	Y        bool `cli:"name=y aliases=yaml desc='read documents as yaml regardless of extension'"`
	NoBackup bool `cli:"name=no-backup desc='do not keep a backup revision on commit'"`
	Quiet    bool `cli:"name=q desc='log errors only'"`
	Verbose  bool `cli:"name=v desc='log debug detail'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat := format.Detect(path)
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) store() *store.Store {
	return store.New(newLogger(cfg))
}

type ValidateConfig struct {
	*MainConfig
	Keys bool `cli:"name=keys desc='also print top level keys'"`

	Validate *cli.Command
}

type GetConfig struct {
	*MainConfig
	Ptr string `cli:"name=p aliases=pointer desc='pointer to the fragment'"`

	Get *cli.Command
}

type EditConfig struct {
	*MainConfig
	Ptr    string `cli:"name=p aliases=pointer desc='pointer to the target location'"`
	Value  string `cli:"name=v aliases=value desc='value as a JSON fragment'"`
	DryRun bool   `cli:"name=n aliases=dry-run desc='print the diff instead of committing'"`

	Edit *cli.Command
}

type ApplyConfig struct {
	*MainConfig
	PatchFile string `cli:"name=patch desc='patch file to apply'"`
	Upsert    bool   `cli:"name=upsert desc='add overwrites existing object keys'"`
	DryRun    bool   `cli:"name=n aliases=dry-run desc='print the diff instead of committing'"`

	Apply *cli.Command
}

type CloneConfig struct {
	*MainConfig
	From   string `cli:"name=from desc='pointer to the fragment to copy'"`
	To     string `cli:"name=to desc='pointer to the insertion location'"`
	Name   string `cli:"name=name desc='override the name field on the copy'"`
	DryRun bool   `cli:"name=n aliases=dry-run desc='print the diff instead of committing'"`

	Clone *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Canon bool `cli:"name=canon desc='compare with sorted keys'"`

	Diff *cli.Command
}

type BackupsConfig struct {
	*MainConfig

	Backups *cli.Command
}
