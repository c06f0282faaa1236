package main

import (
	"github.com/scott-cotton/cli"

	"github.com/jsonplan/go-jsonplan/patch"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jp").
		WithSynopsis("jp [opts] command [opts]").
		WithDescription("jp edits structured documents with pointers, patches and atomic commits.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jpMain(cfg, cc, args)
		}).
		WithSubs(
			ValidateCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			AddCommand(cfg),
			RemoveCommand(cfg),
			ApplyCommand(cfg),
			CloneCommand(cfg),
			DiffCommand(cfg),
			BackupsCommand(cfg))
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("val", "v").
		WithSynopsis("validate [files]").
		WithDescription("parse documents and print their revision digests").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
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
		WithSynopsis("get -p <pointer> [files]").
		WithDescription("print the document fragment at a pointer").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "set").
		WithSynopsis("set -p <pointer> -v <value> [-n] <file>").
		WithDescription("replace the value at a pointer and commit").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(patch.OpReplace, cfg, cc, args)
		})
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "add").
		WithAliases("a").
		WithSynopsis("add -p <pointer> -v <value> [-n] <file>").
		WithDescription("insert a value at a pointer and commit").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(patch.OpAdd, cfg, cc, args)
		})
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "remove").
		WithAliases("rm").
		WithSynopsis("remove -p <pointer> [-n] <file>").
		WithDescription("remove the value at a pointer and commit").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(patch.OpRemove, cfg, cc, args)
		})
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("ap").
		WithSynopsis("apply -patch <patchfile> [-upsert] [-n] <file>").
		WithDescription("apply a patch file to a document and commit").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func CloneCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CloneConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Clone, "clone").
		WithAliases("cl").
		WithSynopsis("clone -from <pointer> -to <pointer> [-name <s>] [-n] <file>").
		WithDescription("deep copy a fragment to another location and commit").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return clone(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-canon] <a> <b>").
		WithDescription("print a unified diff of two documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func BackupsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BackupsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Backups, "backups").
		WithAliases("bk").
		WithSynopsis("backups <file>").
		WithDescription("list backup revisions of a document path").
		WithRun(func(cc *cli.Context, args []string) error {
			return backups(cfg, cc, args)
		})
}
