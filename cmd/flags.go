package cmd

import (
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"ztask/system/command"
)

const categoryTools = "Tool overrides: "

func debugFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "Enable debug mode",
		EnvVars: []string{"ZTASK_DEBUG"},
		Action: func(c *cli.Context, debugMode bool) error {
			if debugMode {
				pterm.DefaultLogger.Level = pterm.LogLevelDebug
				slog.Debug("Debug mode enabled")
			}
			return nil
		},
	}
}

func dryRunFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "dry-run",
		Aliases: []string{"n"},
		Usage:   "Print the commands that would run without running them",
		Action: func(c *cli.Context, dryRun bool) error {
			if dryRun {
				command.NewShellCommand = command.NewDryRunCommand
			}
			return nil
		},
	}
}

func noColorFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "no-color",
		Usage:   "Disable colored output",
		EnvVars: []string{"NO_COLOR"},
		Action: func(c *cli.Context, noColor bool) error {
			if noColor {
				pterm.DisableColor()
			}
			return nil
		},
	}
}

func projectDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "project-dir",
		Aliases: []string{"C"},
		Usage:   "Path to the Rust project, searched upward from the working directory if not provided",
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "config",
		Usage:       "Path to the ztask config file",
		DefaultText: "<project-dir>/.ztask.yaml",
	}
}

func fmtToolchainFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "fmt-toolchain",
		Usage:    "Toolchain used for rustfmt",
		EnvVars:  []string{"ZTASK_FMT_TOOLCHAIN"},
		Category: categoryTools,
	}
}

func cargoFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "cargo",
		Usage:    "Path to the cargo binary",
		EnvVars:  []string{"ZTASK_CARGO"},
		Category: categoryTools,
	}
}

func rustupFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "rustup",
		Usage:    "Path to the rustup binary",
		EnvVars:  []string{"ZTASK_RUSTUP"},
		Category: categoryTools,
	}
}
