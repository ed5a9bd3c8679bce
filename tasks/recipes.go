package tasks

import (
	"context"
	"fmt"

	"ztask/tools"
)

const (
	TaskAll              = "all"
	TaskCheck            = "check"
	TaskClippy           = "c-clippy"
	TaskFmtCheck         = "c-fmt"
	TaskFormat           = "format"
	TaskTest             = "test"
	TaskUpdateNightlyFmt = "update-nightly-fmt"
	TaskBench            = "bench"

	// DefaultTask runs when no target is named.
	DefaultTask = TaskAll
)

type Cargo interface {
	Clippy() error
	Fmt(toolchain string, check bool) error
	Test() error
	DocTest(threads int) error
	Bench() error
}

type RecipeOptions struct {
	Cargo          Cargo
	Formatter      tools.ToolManager
	FmtToolchain   string
	DocTestThreads int
}

// Recipes registers the workspace targets.
func Recipes(o *RecipeOptions) (*Registry, error) {
	if o == nil || o.Cargo == nil || o.Formatter == nil {
		return nil, fmt.Errorf("cargo and formatter toolchain are required")
	}

	r := NewRegistry()
	list := []*Task{
		{
			Name:  TaskAll,
			Usage: "Format the code, then run every check",
			Deps:  []string{TaskFormat, TaskCheck},
		},
		{
			Name:  TaskCheck,
			Usage: "Run clippy and the formatting check",
			Deps:  []string{TaskClippy, TaskFmtCheck},
		},
		{
			Name:  TaskClippy,
			Usage: "Lint all targets and features, denying warnings",
			Action: func(context.Context) error {
				return o.Cargo.Clippy()
			},
		},
		{
			Name:  TaskFmtCheck,
			Usage: "Check formatting with the pinned nightly rustfmt",
			Deps:  []string{TaskUpdateNightlyFmt},
			Action: func(context.Context) error {
				return o.Cargo.Fmt(o.FmtToolchain, true)
			},
		},
		{
			Name:  TaskFormat,
			Usage: "Format the workspace with the pinned nightly rustfmt",
			Deps:  []string{TaskUpdateNightlyFmt},
			Action: func(context.Context) error {
				return o.Cargo.Fmt(o.FmtToolchain, false)
			},
		},
		{
			Name:  TaskTest,
			Usage: "Run library, binary and integration tests, then doc tests",
			Action: func(ctx context.Context) error {
				if err := o.Cargo.Test(); err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				return o.Cargo.DocTest(o.DocTestThreads)
			},
		},
		{
			Name:  TaskUpdateNightlyFmt,
			Usage: "Install the pinned nightly toolchain with rustfmt",
			Action: func(context.Context) error {
				return o.Formatter.Install()
			},
		},
		{
			Name:  TaskBench,
			Usage: "Run the benchmarks",
			Action: func(context.Context) error {
				return o.Cargo.Bench()
			},
		},
	}
	for _, t := range list {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
