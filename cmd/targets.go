package cmd

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"ztask/config"
	"ztask/tasks"
	"ztask/tools/cargo"
	"ztask/tools/rustup"
)

// defaultRegistry describes the targets before any project is loaded, for
// building the command list and for `list`. Its actions never run, so the
// formatter skips resolving the rustup home and host.
func defaultRegistry() *tasks.Registry {
	cfg := config.Default()
	env := &environment{
		Config: cfg,
		Cargo:  cargo.NewManager(cfg.CargoBin, cfg.Env),
		Formatter: &rustup.Toolchain{
			Name:       cfg.FmtToolchain,
			Profile:    cfg.ToolchainProfile,
			Components: cfg.FmtComponents,
			BinPath:    cfg.RustupBin,
		},
	}
	r, err := env.registry()
	if err != nil {
		panic("invalid built-in recipes: " + err.Error())
	}
	return r
}

func targetCommands() []*cli.Command {
	var cmds []*cli.Command
	for _, t := range defaultRegistry().List() {
		name := t.Name
		cmds = append(cmds, &cli.Command{
			Name:      name,
			Usage:     t.Usage,
			Category:  "targets",
			ArgsUsage: "[target...]",
			Action: func(cCtx *cli.Context) error {
				return runTargets(cCtx, append([]string{name}, cCtx.Args().Slice()...))
			},
		})
	}
	return cmds
}

// RunTargets runs the targets named on the command line, or the default.
func RunTargets(cCtx *cli.Context) error {
	return runTargets(cCtx, cCtx.Args().Slice())
}

func runTargets(cCtx *cli.Context, names []string) error {
	if len(names) == 0 {
		names = []string{tasks.DefaultTask}
	}

	env, err := loadEnvironment(cCtx)
	if err != nil {
		return err
	}
	r, err := env.registry()
	if err != nil {
		return err
	}

	return tasks.NewRunner(r).Run(cCtx.Context, names...)
}

func ListTargets(cCtx *cli.Context) error {
	data := pterm.TableData{{"Target", "Depends on", "Description"}}
	for _, t := range defaultRegistry().List() {
		name := t.Name
		if name == tasks.DefaultTask {
			name += " (default)"
		}
		data = append(data, []string{name, strings.Join(t.Deps, ", "), t.Usage})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
