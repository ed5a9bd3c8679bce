//go:build mage

package main

import (
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the ztask binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/ztask", ".")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}

// Mocks regenerates the mockery mocks
func Mocks() error {
	return sh.RunV("mockery")
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() {
	mg.SerialDeps(Lint.Vet, Lint.Format)
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Format checks code formatting
func (Lint) Format() error {
	dirs, err := sh.Output("go", "list", "-f", "{{.Dir}}", "./...")
	if err != nil {
		return err
	}
	out, err := sh.Output("gofmt", append([]string{"-l"}, strings.Fields(dirs)...)...)
	if err != nil {
		return err
	}
	if out != "" {
		return mg.Fatalf(1, "unformatted files:\n%s", out)
	}
	return nil
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}
