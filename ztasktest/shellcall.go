package ztasktest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	commandMock "ztask/mocks/ztask/system/command"
	"ztask/system/command"
)

type FakeShellCallError struct {
	OnCall int
	Err    error
}

type ShellCall struct {
	Binary         string
	Args           []string
	EnvVars        []string
	InheritEnvVars bool
}

// Equal checks the call against the expectation. Args must match exactly
// and in order, since flag position matters to cargo and rustup.
func (s *ShellCall) Equal(t *testing.T, name string, args []string, envVars []string, inheritEnvVars bool) {
	assert := assert.New(t)
	assert.Equal(s.Binary, name)
	assert.Equal(s.Args, args)
	for _, v := range s.EnvVars {
		assert.Contains(envVars, v)
	}
	assert.Equal(s.InheritEnvVars, inheritEnvVars)
}

var CommonShellCalls = map[string]*ShellCall{
	"cargoClippy": {
		Binary:         "cargo",
		Args:           []string{"clippy", "--all-targets", "--all-features", "--", "-D", "warnings"},
		InheritEnvVars: true,
	},
	"cargoFmtCheck": {
		Binary:         "cargo",
		Args:           []string{"+nightly-2023-10-16", "fmt", "--all", "--", "--check"},
		InheritEnvVars: true,
	},
	"cargoFmt": {
		Binary:         "cargo",
		Args:           []string{"+nightly-2023-10-16", "fmt", "--all"},
		InheritEnvVars: true,
	},
	"cargoTest": {
		Binary:         "cargo",
		Args:           []string{"test", "--lib", "--bins", "--tests"},
		InheritEnvVars: true,
	},
	"cargoDocTest": {
		Binary:         "cargo",
		Args:           []string{"test", "--doc", "--", "--test-threads", "1"},
		InheritEnvVars: true,
	},
	"cargoBench": {
		Binary:         "cargo",
		Args:           []string{"bench", "--all-features"},
		InheritEnvVars: true,
	},
	"rustupInstall": {
		Binary:         "rustup",
		Args:           []string{"toolchain", "install", "--profile", "minimal", "nightly-2023-10-16", "--no-self-update"},
		InheritEnvVars: true,
	},
	"rustupAddRustfmt": {
		Binary:         "rustup",
		Args:           []string{"component", "add", "rustfmt", "--toolchain", "nightly-2023-10-16"},
		InheritEnvVars: true,
	},
}

// ExpectShellCalls replaces command.NewShellCommand for the duration of the
// test. Each created command is checked against the next expected call in
// order, and the call at callErr.OnCall fails with callErr.Err. It returns a
// pointer to the number of commands created.
func ExpectShellCalls(t *testing.T, expected []*ShellCall, callErr *FakeShellCallError) *int {
	oldNSC := command.NewShellCommand
	t.Cleanup(func() {
		command.NewShellCommand = oldNSC
	})

	iShellCalls := 0
	command.NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) command.ShellCommandRunner {
		mockShellCommand := commandMock.NewMockShellCommandRunner(t)
		if iShellCalls >= len(expected) {
			t.Errorf("unexpected shell call %d: %s %v", iShellCalls, name, args)
		} else {
			expected[iShellCalls].Equal(t, name, args, envVars, inheritEnvVars)
		}
		if callErr != nil && callErr.OnCall == iShellCalls {
			mockShellCommand.EXPECT().Run().Return(callErr.Err)
		} else {
			mockShellCommand.EXPECT().Run().Return(nil)
		}
		iShellCalls++

		return mockShellCommand
	}

	return &iShellCalls
}
