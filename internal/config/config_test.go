package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.RepoURL != DefaultRepoURL {
		t.Fatalf("repo url = %q", cfg.RepoURL)
	}
	if cfg.Workspace != "jenkins_workspace" {
		t.Fatalf("workspace = %q", cfg.Workspace)
	}
	if cfg.DeployDir != "simulated_deployment" {
		t.Fatalf("deploy dir = %q", cfg.DeployDir)
	}
	if cfg.Format != FormatPretty {
		t.Fatalf("format = %q", cfg.Format)
	}
	if cfg.Verbose {
		t.Fatal("verbose should default off")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	root := t.TempDir()
	content := "repo_url: https://example.com/other.git\nformat: json\nverbose: true\n"
	if err := os.WriteFile(filepath.Join(root, ".pipesim.yml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RepoURL != "https://example.com/other.git" {
		t.Fatalf("repo url = %q", cfg.RepoURL)
	}
	if cfg.Format != FormatJSON {
		t.Fatalf("format = %q", cfg.Format)
	}
	if !cfg.Verbose {
		t.Fatal("verbose not merged")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Workspace != DefaultWorkspace || cfg.DeployDir != DefaultDeployDir {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".pipesim.yml"), []byte("repo_url: [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(root)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), ".pipesim.yml") {
		t.Fatalf("error does not name the config file: %v", err)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := Default()
	cfg.Format = FormatJSON

	ApplyFlags(&cfg, FlagValues{
		RepoURL:   StringFlag{Value: "https://example.com/flag.git", Set: true},
		Workspace: StringFlag{Value: "ws", Set: true},
		Verbose:   BoolFlag{Value: true, Set: true},
	})

	if cfg.RepoURL != "https://example.com/flag.git" {
		t.Fatalf("repo url = %q", cfg.RepoURL)
	}
	if cfg.Workspace != "ws" {
		t.Fatalf("workspace = %q", cfg.Workspace)
	}
	if !cfg.Verbose {
		t.Fatal("verbose flag not applied")
	}
	// Unset flags leave existing values alone.
	if cfg.Format != FormatJSON {
		t.Fatalf("format = %q", cfg.Format)
	}
	if cfg.DeployDir != DefaultDeployDir {
		t.Fatalf("deploy dir = %q", cfg.DeployDir)
	}
}

func TestApplyFlagsCanDisableVerbose(t *testing.T) {
	cfg := Default()
	cfg.Verbose = true

	ApplyFlags(&cfg, FlagValues{Verbose: BoolFlag{Value: false, Set: true}})
	if cfg.Verbose {
		t.Fatal("explicit --verbose=false should win over config")
	}
}
