package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gamlab/stepdiag/config"
	"github.com/gamlab/stepdiag/logging"
)

var (
	version = "v0.1.0-default"
	commit  = ""

	conf = config.Default()

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Print verbose logs (optional, default: false)",
	}
)

func main() {
	logging.SetDefaultCLILogger(conf.LogLevel)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "stepdiag",
		Version:         fmt.Sprintf("%s (commit: %s)", version, commit),
		Compiled:        time.Now(),
		HideHelpCommand: true,
		Usage:           "Term-importance diagnostics for additive step-function models",
		Flags: []cli.Flag{
			debugFlag,
		},
		Commands: []*cli.Command{
			diagnoseCmd,
			inspectCmd,
		},
		Before: func(c *cli.Context) error {
			loaded, err := config.ReadOrCreate(config.HomeDir())
			if err != nil {
				slog.Warn("settings unavailable, using defaults", "error", err)
			} else {
				conf = loaded
			}

			level := conf.LogLevel
			if c.Bool(debugFlag.Name) {
				level = "debug"
			}
			logging.SetDefaultCLILogger(level)
			return nil
		},
	}
}
