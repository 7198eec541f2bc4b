package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Compile-time check that ExecRunner implements Runner.
var _ Runner = (*ExecRunner)(nil)

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
	env    []string
}

// NewExecRunner creates a runner that streams uncaptured output to stdout and
// stderr. Nil writers default to the process's own streams.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ExecRunner{stdout: stdout, stderr: stderr}
}

// WithEnv returns a copy of the runner that appends env (KEY=VALUE pairs) to
// the inherited environment of every command.
func (r *ExecRunner) WithEnv(env ...string) *ExecRunner {
	cp := *r
	cp.env = append(append([]string{}, r.env...), env...)
	return &cp
}

// Run starts cmd and waits for it. A non-zero exit status is returned as an
// *ExitError; failures to start the process are wrapped as-is.
func (r *ExecRunner) Run(ctx context.Context, cmd Command, opts Options) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(r.env) > 0 {
		c.Env = append(os.Environ(), r.env...)
	}

	var buf bytes.Buffer
	if opts.Capture {
		c.Stdout = &buf
		c.Stderr = &buf
	} else {
		c.Stdout = r.stdout
		c.Stderr = r.stderr
	}

	err := c.Run()
	res := Result{Output: buf.String()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, &ExitError{Command: cmd, ExitCode: res.ExitCode, Output: res.Output}
	}
	return res, fmt.Errorf("running %s: %w", cmd, err)
}
