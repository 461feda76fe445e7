package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config captures pipeline options sourced from config files or flags.
type Config struct {
	RepoURL   string `yaml:"repo_url"`
	Workspace string `yaml:"workspace"`
	DeployDir string `yaml:"deploy_dir"`
	Format    string `yaml:"format"`
	Verbose   bool   `yaml:"verbose"`
}

const (
	// DefaultRepoURL is the repository the pipeline builds when none is configured.
	DefaultRepoURL = "https://github.com/Asad-Khurshid1585/SSD-Final.git"
	// DefaultWorkspace is the clone target, relative to the working directory.
	DefaultWorkspace = "jenkins_workspace"
	// DefaultDeployDir is the deployment target, relative to the working directory.
	DefaultDeployDir = "simulated_deployment"

	// FormatPretty renders human readable output.
	FormatPretty = "pretty"
	// FormatJSON renders machine readable output.
	FormatJSON = "json"
)

// Default returns the baseline configuration used when no flags or
// config file specify values.
func Default() Config {
	return Config{
		RepoURL:   DefaultRepoURL,
		Workspace: DefaultWorkspace,
		DeployDir: DefaultDeployDir,
		Format:    FormatPretty,
	}
}

// Load reads .pipesim.yml from root when present. Missing files are ignored.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, ".pipesim.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	return merge(cfg, fileCfg), nil
}

func merge(base, override Config) Config {
	out := base

	if override.RepoURL != "" {
		out.RepoURL = override.RepoURL
	}
	if override.Workspace != "" {
		out.Workspace = override.Workspace
	}
	if override.DeployDir != "" {
		out.DeployDir = override.DeployDir
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Verbose {
		out.Verbose = true
	}

	return out
}

// ApplyFlags mutates cfg by applying values from CLI flags when they
// were set explicitly.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.RepoURL.Set {
		cfg.RepoURL = flags.RepoURL.Value
	}
	if flags.Workspace.Set {
		cfg.Workspace = flags.Workspace.Value
	}
	if flags.DeployDir.Set {
		cfg.DeployDir = flags.DeployDir.Value
	}
	if flags.Format.Set {
		cfg.Format = flags.Format.Value
	}
	if flags.Verbose.Set {
		cfg.Verbose = flags.Verbose.Value
	}
}

// FlagValues captures CLI flag state with knowledge of whether each
// flag was set explicitly.
type FlagValues struct {
	RepoURL   StringFlag
	Workspace StringFlag
	DeployDir StringFlag
	Format    StringFlag
	Verbose   BoolFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}
