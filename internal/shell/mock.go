package shell

import "context"

// Compile-time check that MockRunner implements Runner.
var _ Runner = (*MockRunner)(nil)

// MockRunner is a configurable Runner for tests. Every call is recorded in
// Calls. If RunFunc is nil, commands succeed with empty output.
type MockRunner struct {
	RunFunc func(Command, Options) (Result, error)
	Calls   []Command
}

func (m *MockRunner) Run(_ context.Context, cmd Command, opts Options) (Result, error) {
	m.Calls = append(m.Calls, cmd)
	if m.RunFunc != nil {
		return m.RunFunc(cmd, opts)
	}
	return Result{}, nil
}

// CommandLines returns the recorded calls rendered with Command.String.
func (m *MockRunner) CommandLines() []string {
	lines := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		lines = append(lines, c.String())
	}
	return lines
}

// FailOn returns a RunFunc that fails with exit status 1 for any command
// whose rendered form equals line, and succeeds otherwise.
func FailOn(line string) func(Command, Options) (Result, error) {
	return func(cmd Command, _ Options) (Result, error) {
		if cmd.String() == line {
			return Result{ExitCode: 1}, &ExitError{Command: cmd, ExitCode: 1}
		}
		return Result{}, nil
	}
}
