package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bgricker/pipesim/internal/output"
	"github.com/bgricker/pipesim/internal/report"
)

// failingRunArgs points the clone stage at a repository that does not
// exist, so every stage fails for its own reason without touching the
// network: the clone errors out, no artifacts appear in the workspace,
// and the later stages find nothing to install, test, verify, or copy.
func failingRunArgs(tmp string) []string {
	return []string{
		"run",
		"--repo-url", filepath.Join(tmp, "no-such-repo.git"),
		"--workspace", "ws",
		"--deploy-dir", "deploy",
	}
}

func TestRunCommandAllStagesFailPretty(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execution test relies on a POSIX shell")
	}

	tmp := t.TempDir()
	chdir(t, tmp)

	cmd := newRootCmd()
	cmd.SetArgs(failingRunArgs(tmp))

	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errBuf)

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error for failing pipeline")
	}
	if !strings.Contains(err.Error(), "one or more stages failed") {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "PIPELINE SIMULATOR - no-such-repo") {
		t.Fatalf("expected banner, got %q", got)
	}
	if !strings.Contains(got, "PIPELINE EXECUTION SUMMARY") {
		t.Fatalf("expected summary header, got %q", got)
	}
	for _, name := range []string{"Clone Repository", "Install Dependencies", "Run Unit Tests", "Build Application", "Deploy Application"} {
		if !strings.Contains(got, name) {
			t.Fatalf("expected stage %q in summary, got %q", name, got)
		}
	}
	if strings.Contains(got, "✓ PASSED") {
		t.Fatalf("no stage should pass, got %q", got)
	}
	if !strings.Contains(got, "✗ FAILED") {
		t.Fatalf("expected failure marker, got %q", got)
	}
	if !strings.Contains(got, "Overall Status: ✗ FAILURE") {
		t.Fatalf("expected failure verdict, got %q", got)
	}
	if !strings.Contains(got, "0 passed, 5 failed") {
		t.Fatalf("expected failure counts, got %q", got)
	}
	if strings.Contains(got, "Files in deployment:") {
		t.Fatalf("deployment listing should be absent on failure, got %q", got)
	}
}

func TestRunCommandAllStagesFailJSON(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execution test relies on a POSIX shell")
	}

	tmp := t.TempDir()
	chdir(t, tmp)

	cmd := newRootCmd()
	cmd.SetArgs(append(failingRunArgs(tmp), "--format", "json"))

	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errBuf)

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error for failing pipeline")
	}

	var rep output.Report
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, out.String())
	}

	if rep.RunID == "" {
		t.Fatalf("expected a run id")
	}
	if len(rep.Stages) != 5 {
		t.Fatalf("expected 5 stage results, got %d", len(rep.Stages))
	}
	for _, st := range rep.Stages {
		if st.Status != report.StatusFailed {
			t.Fatalf("stage %q: expected FAILED, got %s", st.Name, st.Status)
		}
	}
	if rep.Summary.Success {
		t.Fatalf("expected failed summary")
	}
	if rep.Summary.ExitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", rep.Summary.ExitCode)
	}
	if len(rep.Log) == 0 {
		t.Fatalf("expected build log entries in report")
	}
}

func TestRunCommandUnsupportedFormat(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	cmd := newRootCmd()
	cmd.SetArgs(append(failingRunArgs(tmp), "--format", "xml"))

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), `unsupported format "xml"`) {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rejected before any stage ran, so the workspace was never created.
	if _, statErr := os.Stat(filepath.Join(tmp, "ws")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("workspace should not exist after format rejection: %v", statErr)
	}
}
