package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func newLogger(cfg *MainConfig) *slog.Logger {
	ll := &slog.LevelVar{}
	ll.Set(slog.LevelInfo)
	if cfg.Quiet {
		ll.Set(slog.LevelError)
	}
	if cfg.Verbose {
		ll.Set(slog.LevelDebug)
	}
	return slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()) && !cfg.Color,
	}))
}
