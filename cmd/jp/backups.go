package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func backups(cfg *BackupsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Backups.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: backups requires exactly one file", cli.ErrUsage)
	}
	list, err := cfg.store().ListBackups(args[0])
	if err != nil {
		return err
	}
	for _, b := range list {
		if _, err := fmt.Fprintf(cc.Out, "%s %s %s\n",
			b.Time.Format("2006-01-02 15:04:05"), b.Digest, b.Path); err != nil {
			return err
		}
	}
	return nil
}
