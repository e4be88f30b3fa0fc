// Command fpinfo inspects the fixed-point math library.
//
// Usage:
//
//	fpinfo [global flags] command [arguments...]
//
// Examples:
//
//	fpinfo accuracy
//	fpinfo --samples 50000 accuracy sin cos exp
//	fpinfo tables
//	fpinfo thd --freq 997 --rate 48000
//	fpinfo windows --size 4096
//	fpinfo eval atan2 1 -1
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/urfave/cli.v1"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	samplesFlag = cli.IntFlag{
		Name:  "samples",
		Usage: "grid points per accuracy sweep (overrides config)",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "concurrent accuracy sweeps (overrides config)",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug",
		Value: 2,
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "fpinfo"
	app.Usage = "inspect Q31.32 fixed-point math accuracy and tables"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		configFileFlag,
		samplesFlag,
		workersFlag,
		verbosityFlag,
	}
	app.Commands = []cli.Command{
		accuracyCommand,
		tablesCommand,
		thdCommand,
		windowsCommand,
		evalCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		setupLogging(ctx.GlobalInt(verbosityFlag.Name))
		return nil
	}
	return app
}

func setupLogging(verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity <= 0:
		level = slog.LevelError + 4
	case verbosity == 1:
		level = slog.LevelError
	case verbosity == 3:
		level = slog.LevelInfo
	case verbosity >= 4:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
