package cargo

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"ztask/errors"
	"ztask/system/command"
)

const DefaultBinPath = "cargo"

type Manager struct {
	BinPath string
	EnvVars []string
}

func NewManager(binPath string, envVars []string) *Manager {
	if binPath == "" {
		binPath = DefaultBinPath
	}
	return &Manager{
		BinPath: binPath,
		EnvVars: envVars,
	}
}

func (m *Manager) run(op string, args []string) error {
	slog.Debug("Running cargo " + strings.Join(args, " "))
	s := command.NewShellCommand(m.BinPath, args, m.EnvVars, true)
	if err := s.Run(); err != nil {
		return fmt.Errorf(errors.CargoCommandFailedErrorTpl, op, err)
	}
	return nil
}

// Clippy lints every target with all features, failing on any warning.
func (m *Manager) Clippy() error {
	slog.Info("Linting with clippy")
	return m.run("clippy", []string{"clippy", "--all-targets", "--all-features", "--", "-D", "warnings"})
}

// Fmt formats the workspace with the given toolchain. With check set it only
// reports unformatted files.
func (m *Manager) Fmt(toolchain string, check bool) error {
	if toolchain == "" {
		return fmt.Errorf("a toolchain is required for cargo fmt")
	}

	args := []string{"+" + toolchain, "fmt", "--all"}
	op := "fmt"
	if check {
		slog.Info("Checking formatting with " + toolchain)
		args = append(args, "--", "--check")
		op = "fmt --check"
	} else {
		slog.Info("Formatting with " + toolchain)
	}
	return m.run(op, args)
}

func (m *Manager) Test() error {
	slog.Info("Running library, binary and integration tests")
	return m.run("test", []string{"test", "--lib", "--bins", "--tests"})
}

func (m *Manager) DocTest(threads int) error {
	if threads < 1 {
		return fmt.Errorf("doc test threads must be at least 1, got %d", threads)
	}
	slog.Info("Running documentation tests")
	return m.run("test --doc", []string{"test", "--doc", "--", "--test-threads", strconv.Itoa(threads)})
}

func (m *Manager) Bench() error {
	slog.Info("Running benchmarks")
	return m.run("bench", []string{"bench", "--all-features"})
}
