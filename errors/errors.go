package errors

import (
	"fmt"
	"strings"
)

// Generic errors

var FileStatErrorTpl = "failed to stat %s: %w"
var FileReadErrorTpl = "failed to read %s: %w"

// Task errors

var TaskFailedErrorTpl = "task %q failed: %w"
var TaskPlanErrorTpl = "failed to plan tasks: %w"

// Tool errors

var ToolInstallFailedErrorTpl = "failed to install %s: %w"
var ToolUpdateFailedErrorTpl = "failed to update %s: %w"
var ToolRemovalFailedErrorTpl = "failed to remove %s: %w"
var ToolComponentAddFailedErrorTpl = "failed to add component %s to %s: %w"
var CargoCommandFailedErrorTpl = "cargo %s failed: %w"

// Config errors

var ConfigParseErrorTpl = "failed to parse config %s: %w"

type UnknownTaskError struct {
	Name string
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task %q", e.Name)
}

type DuplicateTaskError struct {
	Name string
}

func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("task %q is already registered", e.Name)
}

type DependencyCycleError struct {
	Path []string
}

func (e *DependencyCycleError) Error() string {
	return "dependency cycle detected: " + strings.Join(e.Path, " -> ")
}

type ProjectNotFoundError struct {
	Start string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("no Cargo.toml found in %s or any parent directory", e.Start)
}

type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config value for %s: %s", e.Field, e.Reason)
}
