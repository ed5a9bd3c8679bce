package cmd

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ztask/errors"
	"ztask/system/command"
	"ztask/system/file"
	"ztask/ztasktest"
)

const testRoot = "/src/zcached"

func setupProject(t *testing.T, configContent string) *[]string {
	require := require.New(t)

	file.AppFs = afero.NewMemMapFs()
	require.NoError(file.AppFs.MkdirAll(testRoot+"/zcached/src", 0o755))
	require.NoError(afero.WriteFile(file.AppFs, testRoot+"/Cargo.toml", []byte("[workspace]\nmembers = [\"zcached\", \"zcached-server\", \"zcached-client\"]\n"), 0o644))
	require.NoError(afero.WriteFile(file.AppFs, testRoot+"/zcached/Cargo.toml", []byte("[package]\nname = \"zcached\"\n"), 0o644))
	if configContent != "" {
		require.NoError(afero.WriteFile(file.AppFs, testRoot+"/.ztask.yaml", []byte(configContent), 0o644))
	}

	var dirs []string
	oldGetwd, oldChdir := getwd, chdir
	getwd = func() (string, error) { return testRoot + "/zcached/src", nil }
	chdir = func(dir string) error {
		dirs = append(dirs, dir)
		return nil
	}
	t.Cleanup(func() {
		getwd, chdir = oldGetwd, oldChdir
		ztasktest.ResetAppFs()
	})
	return &dirs
}

func TestCli_Commands(t *testing.T) {
	assert := assert.New(t)

	app := Cli()
	names := []string{}
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal([]string{
		"all", "check", "c-clippy", "c-fmt", "format", "test", "update-nightly-fmt", "bench",
		"run", "list", "info", "toolchain",
	}, names)
}

func TestCli_RunTargets(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	calls := ztasktest.CommonShellCalls

	tests := []struct {
		name                  string
		args                  []string
		config                string
		expectedNewShellCalls []*ztasktest.ShellCall
		callErr               *ztasktest.FakeShellCallError
		wantErrMessage        string
	}{
		{
			name: "no target runs all from a member directory",
			args: []string{"ztask"},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["rustupInstall"],
				calls["rustupAddRustfmt"],
				calls["cargoFmt"],
				calls["cargoClippy"],
				calls["cargoFmtCheck"],
			},
		},
		{
			name: "target subcommand with extra targets",
			args: []string{"ztask", "test", "c-clippy"},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["cargoTest"],
				calls["cargoDocTest"],
				calls["cargoClippy"],
			},
		},
		{
			name: "run subcommand",
			args: []string{"ztask", "run", "c-clippy", "test"},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["cargoClippy"],
				calls["cargoTest"],
				calls["cargoDocTest"],
			},
		},
		{
			name:   "config file overrides defaults",
			args:   []string{"ztask", "format"},
			config: "fmt_toolchain: nightly-2024-02-01\ncargo_bin: /opt/cargo/bin/cargo\n",
			expectedNewShellCalls: []*ztasktest.ShellCall{
				{Binary: "rustup", Args: []string{"toolchain", "install", "--profile", "minimal", "nightly-2024-02-01", "--no-self-update"}, InheritEnvVars: true},
				{Binary: "rustup", Args: []string{"component", "add", "rustfmt", "--toolchain", "nightly-2024-02-01"}, InheritEnvVars: true},
				{Binary: "/opt/cargo/bin/cargo", Args: []string{"+nightly-2024-02-01", "fmt", "--all"}, InheritEnvVars: true},
			},
		},
		{
			name:   "flags override config file",
			args:   []string{"ztask", "--fmt-toolchain", "nightly-2023-10-16", "--rustup", "/usr/local/bin/rustup", "update-nightly-fmt"},
			config: "fmt_toolchain: nightly-2024-02-01\n",
			expectedNewShellCalls: []*ztasktest.ShellCall{
				{Binary: "/usr/local/bin/rustup", Args: calls["rustupInstall"].Args, InheritEnvVars: true},
				{Binary: "/usr/local/bin/rustup", Args: calls["rustupAddRustfmt"].Args, InheritEnvVars: true},
			},
		},
		{
			name:   "config env is passed to cargo",
			args:   []string{"ztask", "c-clippy"},
			config: "env:\n  - RUSTFLAGS=-Dwarnings\n",
			expectedNewShellCalls: []*ztasktest.ShellCall{
				{Binary: "cargo", Args: calls["cargoClippy"].Args, EnvVars: []string{"RUSTFLAGS=-Dwarnings"}, InheritEnvVars: true},
			},
		},
		{
			name: "failure propagates",
			args: []string{"ztask", "check"},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["cargoClippy"],
			},
			callErr:        &ztasktest.FakeShellCallError{OnCall: 0, Err: fmt.Errorf("exit status 101")},
			wantErrMessage: `task "c-clippy" failed: cargo clippy failed: exit status 101`,
		},
		{
			name:           "unknown target",
			args:           []string{"ztask", "deploy"},
			wantErrMessage: `unknown task "deploy"`,
		},
		{
			name:           "invalid config",
			args:           []string{"ztask", "test"},
			config:         "doc_test_threads: 0\n",
			wantErrMessage: "invalid config value for doc_test_threads",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dirs := setupProject(t, tt.config)
			n := ztasktest.ExpectShellCalls(t, tt.expectedNewShellCalls, tt.callErr)

			err := Cli().Run(tt.args)
			if tt.wantErrMessage != "" {
				require.Error(err)
				assert.ErrorContains(err, tt.wantErrMessage)
			} else {
				require.NoError(err)
				assert.Equal([]string{testRoot}, *dirs)
			}
			assert.Equal(len(tt.expectedNewShellCalls), *n)
		})
	}
}

func TestCli_ProjectDir(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dirs := setupProject(t, "")
	ztasktest.ExpectShellCalls(t, []*ztasktest.ShellCall{ztasktest.CommonShellCalls["cargoBench"]}, nil)

	require.NoError(Cli().Run([]string{"ztask", "-C", testRoot + "/zcached", "bench"}))
	assert.Equal([]string{testRoot + "/zcached"}, *dirs)

	err := Cli().Run([]string{"ztask", "--project-dir", "/src/elsewhere", "bench"})
	var notFound *errors.ProjectNotFoundError
	assert.ErrorAs(err, &notFound)
}

func TestCli_NoProject(t *testing.T) {
	setupProject(t, "")
	getwd = func() (string, error) { return "/tmp", nil }

	err := Cli().Run([]string{"ztask", "test"})
	assert.ErrorContains(t, err, "no Cargo.toml found in /tmp")
}

func TestCli_DryRun(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("RUSTUP_HOME", "/home/dev/.rustup")
	setupProject(t, "")
	oldNSC := command.NewShellCommand
	t.Cleanup(func() { command.NewShellCommand = oldNSC })
	logs := ztasktest.CaptureLogs(t)

	require.NoError(t, Cli().Run([]string{"ztask", "--dry-run", "all"}))

	out := logs.String()
	last := -1
	for _, line := range []string{
		"rustup toolchain install --profile minimal nightly-2023-10-16 --no-self-update",
		"rustup component add rustfmt --toolchain nightly-2023-10-16",
		"cargo +nightly-2023-10-16 fmt --all",
		"cargo clippy --all-targets --all-features -- -D warnings",
		"cargo +nightly-2023-10-16 fmt --all -- --check",
	} {
		i := strings.Index(out, "[dry-run] "+line)
		if assert.GreaterOrEqual(i, 0, "missing %q", line) {
			assert.Greater(i, last, "%q printed out of order", line)
			last = i
		}
	}
	assert.Equal(5, strings.Count(out, "[dry-run] "))
	assert.NotContains(out, "cargo test")
}

func TestCli_NoWarningsWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("RUSTUP_HOME", "")
	logs := ztasktest.CaptureLogs(t)

	app := Cli()
	assert.NotEmpty(t, app.Commands)
	assert.NotContains(t, logs.String(), "level=WARN")
}

func TestCli_Toolchain(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tests := []struct {
		name                  string
		args                  []string
		expectedNewShellCalls []*ztasktest.ShellCall
	}{
		{
			name: "install",
			args: []string{"ztask", "toolchain", "install"},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				ztasktest.CommonShellCalls["rustupInstall"],
				ztasktest.CommonShellCalls["rustupAddRustfmt"],
			},
		},
		{
			name: "update",
			args: []string{"ztask", "toolchain", "update"},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				{Binary: "rustup", Args: []string{"update", "nightly-2023-10-16", "--no-self-update"}, InheritEnvVars: true},
			},
		},
		{
			name: "remove",
			args: []string{"ztask", "toolchain", "remove"},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				{Binary: "rustup", Args: []string{"toolchain", "uninstall", "nightly-2023-10-16"}, InheritEnvVars: true},
			},
		},
		{
			name: "status runs nothing",
			args: []string{"ztask", "toolchain", "status"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RUSTUP_HOME", "/home/dev/.rustup")
			setupProject(t, "")
			n := ztasktest.ExpectShellCalls(t, tt.expectedNewShellCalls, nil)

			require.NoError(Cli().Run(tt.args))
			assert.Equal(len(tt.expectedNewShellCalls), *n)
		})
	}
}

func TestCli_ListAndInfo(t *testing.T) {
	t.Setenv("RUSTUP_HOME", "/home/dev/.rustup")
	setupProject(t, "")
	n := ztasktest.ExpectShellCalls(t, nil, nil)

	require.NoError(t, Cli().Run([]string{"ztask", "list"}))
	require.NoError(t, Cli().Run([]string{"ztask", "info"}))
	assert.Equal(t, 0, *n)
}

func TestExitCode(t *testing.T) {
	assert := assert.New(t)

	exitErr := exec.Command("sh", "-c", "exit 3").Run()
	require.Error(t, exitErr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "generic failure", err: fmt.Errorf("unknown task"), want: 1},
		{name: "tool exit status", err: fmt.Errorf(`task "test" failed: %w`, exitErr), want: 3},
		{name: "interrupted", err: fmt.Errorf("task failed: %w", context.Canceled), want: 130},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(tt.want, ExitCode(tt.err))
		})
	}
}
