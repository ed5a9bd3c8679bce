package rustup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ztask/errors"
	"ztask/system"
	"ztask/system/command"
	"ztask/system/file"
)

const DefaultBinPath = "rustup"

var userHomeDir = os.UserHomeDir

var hostTriple = func() string {
	ls, err := system.GetLocalSystem()
	if err != nil {
		slog.Debug("Could not detect host triple: " + err.Error())
		return ""
	}
	return ls.HostTriple()
}

// Toolchain manages one pinned rustup toolchain and the components it needs.
// Host is the target triple rustup appends to installed toolchain names.
type Toolchain struct {
	Name       string
	Profile    string
	Components []string
	BinPath    string
	Home       string
	Host       string
}

// DefaultHome resolves RUSTUP_HOME the way rustup does, falling back to ~/.rustup.
func DefaultHome() (string, error) {
	if h := os.Getenv("RUSTUP_HOME"); h != "" {
		return h, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".rustup"), nil
}

func NewToolchain(name, profile string, components []string, binPath string) *Toolchain {
	if binPath == "" {
		binPath = DefaultBinPath
	}

	home, err := DefaultHome()
	if err != nil {
		slog.Warn("Could not resolve rustup home: " + err.Error())
	}

	return &Toolchain{
		Name:       name,
		Profile:    profile,
		Components: components,
		BinPath:    binPath,
		Home:       home,
		Host:       hostTriple(),
	}
}

func (t *Toolchain) validate() error {
	if t.Name == "" {
		return fmt.Errorf("toolchain name is required")
	}
	if t.Profile == "" {
		return fmt.Errorf("toolchain profile is required")
	}
	return nil
}

// toolchainDir finds the installed directory for the toolchain. rustup stores
// toolchains either under the bare name or suffixed with the host triple.
func (t *Toolchain) toolchainDir() (string, error) {
	dir := filepath.Join(t.Home, "toolchains")
	exists, err := file.IsDir(dir)
	if err != nil || !exists {
		return "", err
	}

	names, err := file.ReadDirNames(dir)
	if err != nil {
		return "", err
	}
	for _, n := range names {
		if n == t.Name || (t.Host != "" && n == t.Name+"-"+t.Host) {
			return filepath.Join(dir, n), nil
		}
	}
	return "", nil
}

// Installed reports whether the toolchain and every component binary are on disk.
func (t *Toolchain) Installed() (bool, error) {
	if t.Home == "" {
		return false, fmt.Errorf("rustup home is unknown")
	}

	dir, err := t.toolchainDir()
	if err != nil {
		return false, fmt.Errorf("failed to check for toolchain %s in %s: %w", t.Name, t.Home, err)
	}
	if dir == "" {
		slog.Debug("Toolchain " + t.Name + " not found in " + t.Home)
		return false, nil
	}

	for _, c := range t.Components {
		bin := filepath.Join(dir, "bin", c)
		exists, err := file.IsFile(bin)
		if err != nil {
			return false, fmt.Errorf("failed to check for component %s: %w", c, err)
		}
		if !exists {
			slog.Debug("Component " + c + " missing from " + dir)
			return false, nil
		}
	}
	return true, nil
}

// Install installs the toolchain and adds each component. rustup skips work
// already done, so calling it repeatedly is safe.
func (t *Toolchain) Install() error {
	if err := t.validate(); err != nil {
		return fmt.Errorf(errors.ToolInstallFailedErrorTpl, "toolchain", err)
	}

	slog.Info("Installing toolchain " + t.Name)
	args := []string{"toolchain", "install", "--profile", t.Profile, t.Name, "--no-self-update"}
	s := command.NewShellCommand(t.BinPath, args, nil, true)
	if err := s.Run(); err != nil {
		return fmt.Errorf(errors.ToolInstallFailedErrorTpl, t.Name, err)
	}

	for _, c := range t.Components {
		if err := t.AddComponent(c); err != nil {
			return err
		}
	}

	return nil
}

func (t *Toolchain) AddComponent(name string) error {
	slog.Info(fmt.Sprintf("Adding %s to toolchain %s", name, t.Name))
	args := []string{"component", "add", name, "--toolchain", t.Name}
	s := command.NewShellCommand(t.BinPath, args, nil, true)
	if err := s.Run(); err != nil {
		return fmt.Errorf(errors.ToolComponentAddFailedErrorTpl, name, t.Name, err)
	}
	return nil
}

func (t *Toolchain) Update() error {
	if err := t.validate(); err != nil {
		return fmt.Errorf(errors.ToolUpdateFailedErrorTpl, "toolchain", err)
	}

	slog.Info("Updating toolchain " + t.Name)
	s := command.NewShellCommand(t.BinPath, []string{"update", t.Name, "--no-self-update"}, nil, true)
	if err := s.Run(); err != nil {
		return fmt.Errorf(errors.ToolUpdateFailedErrorTpl, t.Name, err)
	}
	return nil
}

func (t *Toolchain) Remove() error {
	if err := t.validate(); err != nil {
		return fmt.Errorf(errors.ToolRemovalFailedErrorTpl, "toolchain", err)
	}

	slog.Info("Removing toolchain " + t.Name)
	s := command.NewShellCommand(t.BinPath, []string{"toolchain", "uninstall", t.Name}, nil, true)
	if err := s.Run(); err != nil {
		return fmt.Errorf(errors.ToolRemovalFailedErrorTpl, t.Name, err)
	}
	return nil
}
