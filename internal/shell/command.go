// Package shell builds and runs the external commands the release pipeline
// depends on (git, the package manager, user-supplied test and build scripts).
package shell

import (
	"context"
	"fmt"
	"strings"
)

// Command is a structured process invocation. Arguments are passed to the
// process as-is, never re-parsed by a shell, unless the command is a Script.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// Git returns a git command with the given arguments.
func Git(args ...string) Command {
	return Command{Name: "git", Args: args}
}

// Script returns a command that runs a user-supplied command line through
// "sh -c". Test, build and publish commands are configured as free-form
// strings, so they keep shell semantics (pipes, &&, env assignments).
func Script(line string) Command {
	return Command{Name: "sh", Args: []string{"-c", line}}
}

// In returns a copy of the command that runs in dir.
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

// String renders the command the way a user would type it, quoting
// arguments that contain whitespace or shell metacharacters.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`|&;<>()*?[]{}!#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Options controls how a command's output is handled.
type Options struct {
	// Capture collects combined stdout/stderr into Result.Output instead of
	// streaming it to the runner's writers.
	Capture bool
}

// Result is the outcome of a finished command.
type Result struct {
	ExitCode int
	Output   string
}

// Runner executes commands. Implementations block until the command exits
// or ctx is done.
type Runner interface {
	Run(ctx context.Context, cmd Command, opts Options) (Result, error)
}

// ExitError reports a command that ran but exited with a non-zero status.
type ExitError struct {
	Command  Command
	ExitCode int
	Output   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}
