// Package version detects the external tools the pipeline shells out to.
package version

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Info captures an external tool installed on the system.
type Info struct {
	Name    string
	Version string
}

var (
	gitRegex    = regexp.MustCompile(`(?i)git\s+version\s+(\d+\.\d+(?:\.\d+)?)`)
	pythonRegex = regexp.MustCompile(`(?i)python\s+(\d+\.\d+(?:\.\d+)?)`)
)

// DetectGit returns the system git version by calling `git --version`.
func DetectGit() (Info, error) {
	out, err := runCommand("git", "--version")
	if err != nil {
		return Info{}, err
	}
	return parseGitVersion(out)
}

// DetectPython returns the system Python version by calling
// `python --version`. Older interpreters print the version to stderr;
// both streams are captured.
func DetectPython() (Info, error) {
	out, err := runCommand("python", "--version")
	if err != nil {
		return Info{}, err
	}
	return parsePythonVersion(out)
}

func parseGitVersion(out string) (Info, error) {
	match := gitRegex.FindStringSubmatch(out)
	if len(match) < 2 {
		return Info{}, fmt.Errorf("unable to parse git version from %q", out)
	}
	return Info{Name: "git", Version: match[1]}, nil
}

func parsePythonVersion(out string) (Info, error) {
	match := pythonRegex.FindStringSubmatch(out)
	if len(match) < 2 {
		return Info{}, fmt.Errorf("unable to parse python version from %q", out)
	}
	return Info{Name: "python", Version: match[1]}, nil
}

func runCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// Missing reports whether executing the command returned a not-found error.
func Missing(cmdErr error) bool {
	return errors.Is(cmdErr, exec.ErrNotFound)
}
