// Package tasks declares named tasks with dependencies and runs them in
// dependency order, each at most once per invocation.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
	"ztask/errors"
)

// Action is the body of a task. Aggregate tasks have none.
type Action func(ctx context.Context) error

type Task struct {
	Name   string
	Usage  string
	Deps   []string
	Action Action
}

type Registry struct {
	tasks map[string]*Task
	order []string
}

func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]*Task)}
}

func (r *Registry) Register(t *Task) error {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name is required")
	}
	if _, ok := r.tasks[t.Name]; ok {
		return &errors.DuplicateTaskError{Name: t.Name}
	}
	r.tasks[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

func (r *Registry) Get(name string) (*Task, error) {
	t, ok := r.tasks[name]
	if !ok {
		return nil, &errors.UnknownTaskError{Name: name}
	}
	return t, nil
}

// List returns tasks in registration order.
func (r *Registry) List() []*Task {
	list := make([]*Task, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tasks[name])
	}
	return list
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Validate checks every task's dependencies exist and that there are no cycles.
func (r *Registry) Validate() error {
	_, err := r.Plan(r.order...)
	return err
}

// Plan returns the order tasks run in for the given targets: dependencies
// first, in declared order, and no task twice.
func (r *Registry) Plan(names ...string) ([]string, error) {
	state := make(map[string]visitState, len(r.tasks))
	var plan []string
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		t, err := r.Get(name)
		if err != nil {
			if len(path) > 0 {
				return fmt.Errorf("task %q depends on %w", path[len(path)-1], err)
			}
			return err
		}

		switch state[name] {
		case visited:
			return nil
		case visiting:
			cycle := append([]string{}, path[indexOf(path, name):]...)
			return &errors.DependencyCycleError{Path: append(cycle, name)}
		}

		state[name] = visiting
		path = append(path, name)
		for _, dep := range t.Deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = visited
		plan = append(plan, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

func indexOf(s []string, v string) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}

type Runner struct {
	*Registry
}

func NewRunner(r *Registry) *Runner {
	return &Runner{Registry: r}
}

// Run executes the planned tasks one after another and stops at the first
// failure.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	plan, err := r.Plan(names...)
	if err != nil {
		return fmt.Errorf(errors.TaskPlanErrorTpl, err)
	}
	slog.Debug("Task plan: " + strings.Join(plan, ", "))

	for _, name := range plan {
		if err := ctx.Err(); err != nil {
			return err
		}

		t := r.tasks[name]
		if t.Action == nil {
			slog.Debug("Task " + name + " has no body")
			continue
		}

		pterm.DefaultSection.Println(name)
		if err := t.Action(ctx); err != nil {
			return fmt.Errorf(errors.TaskFailedErrorTpl, name, err)
		}
	}
	return nil
}
