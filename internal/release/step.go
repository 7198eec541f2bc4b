package release

import (
	"context"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/shell"
)

// Step is one named stage of the release pipeline.
type Step struct {
	// Name identifies the step in errors, logs and plans.
	Name string

	// Title is the section header printed before the step when not silent.
	// Empty means the step continues the previous section.
	Title string

	// Skip returns a non-empty reason when the step does not apply. It is
	// evaluated right before the step would run.
	Skip func() string

	// Describe returns the progress line for the step.
	Describe func() string

	// Commands are run in order when the step executes.
	Commands []shell.Command

	// Action runs before Commands. Used for steps that are not plain
	// commands (file rewrites, API calls).
	Action func(ctx context.Context) error
}

func (s Step) skipReason() string {
	if s.Skip == nil {
		return ""
	}
	return s.Skip()
}

func skipIfEmpty(value, reason string) func() string {
	return func() string {
		if value == "" {
			return reason
		}
		return ""
	}
}
