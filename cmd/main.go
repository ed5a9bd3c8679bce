package cmd

import (
	"github.com/urfave/cli/v2"
)

func Cli() *cli.App {
	commands := targetCommands()
	commands = append(commands,
		&cli.Command{
			Name:      "run",
			Usage:     "Run one or more targets in dependency order",
			ArgsUsage: "<target>...",
			Action:    RunTargets,
		},
		&cli.Command{
			Name:   "list",
			Usage:  "List the available targets",
			Action: ListTargets,
		},
		&cli.Command{
			Name:   "info",
			Usage:  "Show the host, project and effective configuration",
			Action: Info,
		},
		&cli.Command{
			Name:  "toolchain",
			Usage: "Manage the pinned formatter toolchain",
			Subcommands: []*cli.Command{
				{
					Name:   "status",
					Usage:  "Report whether the formatter toolchain is installed",
					Action: ToolchainStatus,
				},
				{
					Name:   "install",
					Usage:  "Install the formatter toolchain and its components",
					Action: ToolchainInstall,
				},
				{
					Name:   "update",
					Usage:  "Update the formatter toolchain",
					Action: ToolchainUpdate,
				},
				{
					Name:   "remove",
					Usage:  "Uninstall the formatter toolchain",
					Action: ToolchainRemove,
				},
			},
		},
	)

	app := &cli.App{
		Name:        "ztask",
		Usage:       "zcached workspace task runner",
		Description: "Format, lint and test the zcached Rust workspace with pinned cargo and rustup invocations",
		ArgsUsage:   "[target...]",
		Flags: []cli.Flag{
			debugFlag(),
			dryRunFlag(),
			noColorFlag(),
			projectDirFlag(),
			configFlag(),
			fmtToolchainFlag(),
			cargoFlag(),
			rustupFlag(),
		},
		Action:   RunTargets,
		Commands: commands,
	}
	return app
}
