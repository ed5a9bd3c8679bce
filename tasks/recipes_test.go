package tasks

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ztask/tools/cargo"
	"ztask/tools/rustup"
	"ztask/ztasktest"
)

func newTestRecipes(t *testing.T) *Registry {
	r, err := Recipes(&RecipeOptions{
		Cargo: cargo.NewManager("cargo", nil),
		Formatter: &rustup.Toolchain{
			Name:       "nightly-2023-10-16",
			Profile:    "minimal",
			Components: []string{"rustfmt"},
			BinPath:    "rustup",
		},
		FmtToolchain:   "nightly-2023-10-16",
		DocTestThreads: 1,
	})
	require.NoError(t, err)
	return r
}

func TestRecipes_Registered(t *testing.T) {
	assert := assert.New(t)

	r := newTestRecipes(t)

	names := []string{}
	for _, task := range r.List() {
		names = append(names, task.Name)
		assert.NotEmpty(task.Usage, task.Name)
	}
	assert.Equal([]string{
		TaskAll, TaskCheck, TaskClippy, TaskFmtCheck, TaskFormat, TaskTest, TaskUpdateNightlyFmt, TaskBench,
	}, names)
	assert.Equal(TaskAll, DefaultTask)
}

func TestRecipes_MissingOptions(t *testing.T) {
	_, err := Recipes(&RecipeOptions{Cargo: cargo.NewManager("", nil)})
	assert.ErrorContains(t, err, "cargo and formatter toolchain are required")

	_, err = Recipes(nil)
	assert.Error(t, err)
}

func TestRecipes_Run(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	calls := ztasktest.CommonShellCalls

	tests := []struct {
		name                  string
		targets               []string
		expectedNewShellCalls []*ztasktest.ShellCall
		callErr               *ztasktest.FakeShellCallError
		wantErrMessage        string
	}{
		{
			name:    "all installs the formatter once",
			targets: []string{TaskAll},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["rustupInstall"],
				calls["rustupAddRustfmt"],
				calls["cargoFmt"],
				calls["cargoClippy"],
				calls["cargoFmtCheck"],
			},
		},
		{
			name:    "check",
			targets: []string{TaskCheck},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["cargoClippy"],
				calls["rustupInstall"],
				calls["rustupAddRustfmt"],
				calls["cargoFmtCheck"],
			},
		},
		{
			name:    "c-clippy",
			targets: []string{TaskClippy},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["cargoClippy"],
			},
		},
		{
			name:    "c-fmt",
			targets: []string{TaskFmtCheck},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["rustupInstall"],
				calls["rustupAddRustfmt"],
				calls["cargoFmtCheck"],
			},
		},
		{
			name:    "format",
			targets: []string{TaskFormat},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["rustupInstall"],
				calls["rustupAddRustfmt"],
				calls["cargoFmt"],
			},
		},
		{
			name:    "test runs doc tests serially after the others",
			targets: []string{TaskTest},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["cargoTest"],
				calls["cargoDocTest"],
			},
		},
		{
			name:    "update-nightly-fmt",
			targets: []string{TaskUpdateNightlyFmt},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["rustupInstall"],
				calls["rustupAddRustfmt"],
			},
		},
		{
			name:    "bench",
			targets: []string{TaskBench},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["cargoBench"],
			},
		},
		{
			name:    "unit test failure skips doc tests",
			targets: []string{TaskTest},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["cargoTest"],
			},
			callErr:        &ztasktest.FakeShellCallError{OnCall: 0, Err: fmt.Errorf("exit status 101")},
			wantErrMessage: `task "test" failed: cargo test failed: exit status 101`,
		},
		{
			name:    "format failure stops all before check",
			targets: []string{TaskAll},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["rustupInstall"],
				calls["rustupAddRustfmt"],
				calls["cargoFmt"],
			},
			callErr:        &ztasktest.FakeShellCallError{OnCall: 2, Err: fmt.Errorf("exit status 1")},
			wantErrMessage: `task "format" failed`,
		},
		{
			name:    "toolchain failure stops c-fmt",
			targets: []string{TaskFmtCheck},
			expectedNewShellCalls: []*ztasktest.ShellCall{
				calls["rustupInstall"],
			},
			callErr:        &ztasktest.FakeShellCallError{OnCall: 0, Err: fmt.Errorf("exit status 1")},
			wantErrMessage: `task "update-nightly-fmt" failed`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ztasktest.ExpectShellCalls(t, tt.expectedNewShellCalls, tt.callErr)

			err := NewRunner(newTestRecipes(t)).Run(context.Background(), tt.targets...)
			if tt.wantErrMessage != "" {
				require.Error(err)
				assert.ErrorContains(err, tt.wantErrMessage)
			} else {
				require.NoError(err)
			}
			assert.Equal(len(tt.expectedNewShellCalls), *n)
		})
	}
}
