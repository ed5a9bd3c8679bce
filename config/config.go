// Package config loads ztask settings from .ztask.yaml in the project root.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"ztask/errors"
	"ztask/system/file"
)

const (
	FileName = ".ztask.yaml"

	DefaultFmtToolchain     = "nightly-2023-10-16"
	DefaultToolchainProfile = "minimal"
	DefaultCargoBin         = "cargo"
	DefaultRustupBin        = "rustup"
	DefaultDocTestThreads   = 1
)

var DefaultFmtComponents = []string{"rustfmt"}

type Config struct {
	FmtToolchain     string   `yaml:"fmt_toolchain"`
	ToolchainProfile string   `yaml:"toolchain_profile"`
	FmtComponents    []string `yaml:"fmt_components"`
	CargoBin         string   `yaml:"cargo_bin"`
	RustupBin        string   `yaml:"rustup_bin"`
	DocTestThreads   int      `yaml:"doc_test_threads"`
	Env              []string `yaml:"env,omitempty"`
}

func Default() *Config {
	return &Config{
		FmtToolchain:     DefaultFmtToolchain,
		ToolchainProfile: DefaultToolchainProfile,
		FmtComponents:    append([]string{}, DefaultFmtComponents...),
		CargoBin:         DefaultCargoBin,
		RustupBin:        DefaultRustupBin,
		DocTestThreads:   DefaultDocTestThreads,
	}
}

// Load reads path on top of the defaults. An empty path means
// <projectRoot>/.ztask.yaml, which is optional; an explicit path must exist.
func Load(projectRoot, path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(projectRoot, FileName)
	}

	exists, err := file.IsFile(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		if explicit {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		slog.Debug("No config file at " + path + ", using defaults")
		return cfg, nil
	}

	b, err := file.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf(errors.ConfigParseErrorTpl, path, err)
	}
	slog.Debug("Loaded config from " + path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"fmt_toolchain", c.FmtToolchain},
		{"toolchain_profile", c.ToolchainProfile},
		{"cargo_bin", c.CargoBin},
		{"rustup_bin", c.RustupBin},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &errors.InvalidConfigError{Field: r.field, Reason: "must not be empty"}
		}
	}
	if len(c.FmtComponents) == 0 {
		return &errors.InvalidConfigError{Field: "fmt_components", Reason: "must list at least one component"}
	}
	for _, comp := range c.FmtComponents {
		if strings.TrimSpace(comp) == "" {
			return &errors.InvalidConfigError{Field: "fmt_components", Reason: "component names must not be empty"}
		}
	}
	if c.DocTestThreads < 1 {
		return &errors.InvalidConfigError{Field: "doc_test_threads", Reason: fmt.Sprintf("must be at least 1, got %d", c.DocTestThreads)}
	}
	for _, kv := range c.Env {
		if !strings.Contains(kv, "=") || strings.HasPrefix(kv, "=") {
			return &errors.InvalidConfigError{Field: "env", Reason: fmt.Sprintf("%q is not KEY=VALUE", kv)}
		}
	}
	return nil
}
