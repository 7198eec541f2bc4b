package release

import (
	"errors"
	"fmt"
)

var (
	// ErrTagExists is returned by the preflight when the release tag is
	// already present in the repository.
	ErrTagExists = errors.New("tag already exists")

	// ErrReleaseBranchExists is returned by the preflight when a release
	// branch left over from an earlier run is still present.
	ErrReleaseBranchExists = errors.New("release branch already exists")
)

// StepError reports the step a run stopped at.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
