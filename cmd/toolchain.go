package cmd

import (
	"log/slog"

	"github.com/urfave/cli/v2"
)

func ToolchainStatus(cCtx *cli.Context) error {
	env, err := loadEnvironment(cCtx)
	if err != nil {
		return err
	}

	installed, err := env.Formatter.Installed()
	if err != nil {
		return err
	}
	if installed {
		slog.Info("Toolchain " + env.Formatter.Name + " is installed")
	} else {
		slog.Warn("Toolchain " + env.Formatter.Name + " is not installed, run `ztask update-nightly-fmt`")
	}
	return nil
}

func ToolchainInstall(cCtx *cli.Context) error {
	env, err := loadEnvironment(cCtx)
	if err != nil {
		return err
	}
	return env.Formatter.Install()
}

func ToolchainUpdate(cCtx *cli.Context) error {
	env, err := loadEnvironment(cCtx)
	if err != nil {
		return err
	}
	return env.Formatter.Update()
}

func ToolchainRemove(cCtx *cli.Context) error {
	env, err := loadEnvironment(cCtx)
	if err != nil {
		return err
	}
	return env.Formatter.Remove()
}
