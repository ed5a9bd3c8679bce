package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"ztask/config"
	"ztask/errors"
	"ztask/system/file"
	"ztask/tasks"
	"ztask/tools/cargo"
	"ztask/tools/rustup"
)

var (
	getwd = os.Getwd
	chdir = os.Chdir
)

type environment struct {
	Root      string
	Config    *config.Config
	Cargo     *cargo.Manager
	Formatter *rustup.Toolchain
}

func projectRoot(cCtx *cli.Context) (string, error) {
	if dir := cCtx.String("project-dir"); dir != "" {
		exists, err := file.HasCargoManifest(dir)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", &errors.ProjectNotFoundError{Start: dir}
		}
		return dir, nil
	}

	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return file.FindProjectRoot(wd)
}

// loadEnvironment resolves the project, merges config with flags and moves
// into the project root so cargo sees the workspace.
func loadEnvironment(cCtx *cli.Context) (*environment, error) {
	root, err := projectRoot(cCtx)
	if err != nil {
		return nil, err
	}
	slog.Debug("Project root: " + root)

	cfg, err := config.Load(root, cCtx.String("config"))
	if err != nil {
		return nil, err
	}
	if v := cCtx.String("fmt-toolchain"); v != "" {
		cfg.FmtToolchain = v
	}
	if v := cCtx.String("cargo"); v != "" {
		cfg.CargoBin = v
	}
	if v := cCtx.String("rustup"); v != "" {
		cfg.RustupBin = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := chdir(root); err != nil {
		return nil, fmt.Errorf("failed to change to project root %s: %w", root, err)
	}

	return newEnvironment(root, cfg), nil
}

func newEnvironment(root string, cfg *config.Config) *environment {
	return &environment{
		Root:      root,
		Config:    cfg,
		Cargo:     cargo.NewManager(cfg.CargoBin, cfg.Env),
		Formatter: rustup.NewToolchain(cfg.FmtToolchain, cfg.ToolchainProfile, cfg.FmtComponents, cfg.RustupBin),
	}
}

func (e *environment) registry() (*tasks.Registry, error) {
	return tasks.Recipes(&tasks.RecipeOptions{
		Cargo:          e.Cargo,
		Formatter:      e.Formatter,
		FmtToolchain:   e.Config.FmtToolchain,
		DocTestThreads: e.Config.DocTestThreads,
	})
}
