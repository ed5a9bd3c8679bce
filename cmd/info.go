package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"ztask/system"
)

var getLocalSystem = system.GetLocalSystem

func Info(cCtx *cli.Context) error {
	env, err := loadEnvironment(cCtx)
	if err != nil {
		return err
	}

	host := "unknown"
	triple := ""
	l, err := getLocalSystem()
	if err != nil {
		slog.Warn("Failed to detect host system: " + err.Error())
	} else {
		host = l.String()
		triple = l.HostTriple()
	}

	installed, err := env.Formatter.Installed()
	status := strconv.FormatBool(installed)
	if err != nil {
		slog.Warn("Failed to check formatter toolchain: " + err.Error())
		status = "unknown"
	}

	data := pterm.TableData{
		{"Host", host},
		{"Host triple", triple},
		{"Project root", env.Root},
		{"Cargo", env.Config.CargoBin},
		{"Rustup", env.Config.RustupBin},
		{"Rustup home", env.Formatter.Home},
		{"Formatter toolchain", env.Config.FmtToolchain},
		{"Toolchain profile", env.Config.ToolchainProfile},
		{"Formatter components", strings.Join(env.Config.FmtComponents, ", ")},
		{"Formatter installed", status},
		{"Doc test threads", fmt.Sprint(env.Config.DocTestThreads)},
		{"Extra env", strings.Join(env.Config.Env, " ")},
	}
	return pterm.DefaultTable.WithData(data).Render()
}
