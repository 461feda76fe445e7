package shell

import "runtime"

// Shell turns a command line into the argv that executes it on a given
// platform, and rewrites commands so they resolve tools from an
// isolated environment directory.
type Shell interface {
	// Name identifies the shell in logs and reports.
	Name() string
	// Wrap returns the argv that runs script under the shell.
	Wrap(script string) []string
	// InEnv rewrites script so its leading tool resolves inside envDir.
	InEnv(envDir, script string) string
}

// Posix runs commands through sh and enters environments by sourcing
// the activate script.
type Posix struct{}

// Name implements Shell.
func (Posix) Name() string { return "sh" }

// Wrap implements Shell.
func (Posix) Wrap(script string) []string {
	return []string{"sh", "-c", script}
}

// InEnv implements Shell.
func (Posix) InEnv(envDir, script string) string {
	return ". " + envDir + "/bin/activate && " + script
}

// Windows runs commands through cmd and resolves environment tools from
// the Scripts directory.
type Windows struct{}

// Name implements Shell.
func (Windows) Name() string { return "cmd" }

// Wrap implements Shell.
func (Windows) Wrap(script string) []string {
	return []string{"cmd", "/C", script}
}

// InEnv implements Shell.
func (Windows) InEnv(envDir, script string) string {
	return envDir + `\Scripts\` + script
}

// Default returns the shell for the current platform. Callers select it
// once at startup and thread it through the run context.
func Default() Shell {
	if runtime.GOOS == "windows" {
		return Windows{}
	}
	return Posix{}
}
