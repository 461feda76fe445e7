// Package executor runs shell command lines for pipeline stages and
// reports their outcome as plain values rather than errors.
package executor

import (
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/bgricker/pipesim/internal/buildlog"
	"github.com/bgricker/pipesim/internal/shell"
)

// previewLimit caps how much captured stdout is echoed into the build log.
const previewLimit = 200

// Result records a single command execution. A false OK covers both a
// non-zero exit and a failure to spawn the process at all.
type Result struct {
	OK       bool
	Stdout   string
	Stderr   string
	ExitCode int
}

// Options configure how the executor runs commands.
type Options struct {
	Shell   shell.Shell
	Log     *buildlog.Log
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
}

// Executor runs command lines through the configured shell. Failures are
// returned in the Result; Run never reports an error to the caller.
type Executor struct {
	opts Options
}

// New creates an executor with the supplied options.
func New(opts Options) *Executor {
	if opts.Shell == nil {
		opts.Shell = shell.Default()
	}
	if opts.Log == nil {
		opts.Log = buildlog.New(buildlog.Options{})
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	return &Executor{opts: opts}
}

// Run executes script in dir and logs the outcome under the given stage tag.
// Output is captured in full; verbose mode additionally streams it to the
// configured writers while the command runs.
func (e *Executor) Run(script, dir, stage string) Result {
	argv := e.opts.Shell.Wrap(script)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf strings.Builder
	if e.opts.Verbose {
		cmd.Stdout = io.MultiWriter(e.opts.Stdout, &stdoutBuf)
		cmd.Stderr = io.MultiWriter(e.opts.Stderr, &stderrBuf)
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	res := Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		ExitCode: exitCode(err),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			e.opts.Log.Appendf(stage, "Command failed: %s", script)
			e.opts.Log.Appendf(stage, "Error: %s", res.Stderr)
		} else {
			// The process never ran: missing interpreter, bad working
			// directory, and the like.
			res.Stderr = err.Error()
			e.opts.Log.Appendf(stage, "Exception executing command: %s", err)
		}
		return res
	}

	res.OK = true
	e.opts.Log.Append(stage, "Command executed successfully")
	if res.Stdout != "" {
		e.opts.Log.Appendf(stage, "Output: %s...", preview(res.Stdout))
	}
	return res
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 127
}

// preview returns at most previewLimit characters of s, cutting on a rune
// boundary so multi-byte output never yields a mangled log line.
func preview(s string) string {
	n := 0
	for i := range s {
		if n == previewLimit {
			return s[:i]
		}
		n++
	}
	return s
}
