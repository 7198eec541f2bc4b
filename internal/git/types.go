// Package git provides read-only inspection of the repository a release runs
// in: repository root, current branch, tag and branch existence, working tree state and remote
// URLs. Mutations go through the git CLI (see internal/shell) so that they
// honor the user's hooks and git configuration.
package git

import "strings"

const (
	localBranchPrefix          = "refs/heads/"
	remoteTrackingBranchPrefix = "refs/remotes/"
	tagRefPrefix               = "refs/tags/"
)

// ReferenceName represents a git reference with canonical and friendly forms.
type ReferenceName struct {
	Canonical string // e.g., "refs/heads/main"
	Friendly  string // e.g., "main"
}

// NewReferenceName creates a ReferenceName from a canonical ref path.
func NewReferenceName(canonical string) ReferenceName {
	friendly := canonical

	switch {
	case strings.HasPrefix(canonical, localBranchPrefix):
		friendly = canonical[len(localBranchPrefix):]
	case strings.HasPrefix(canonical, remoteTrackingBranchPrefix):
		friendly = canonical[len(remoteTrackingBranchPrefix):]
	case strings.HasPrefix(canonical, tagRefPrefix):
		friendly = canonical[len(tagRefPrefix):]
	}

	return ReferenceName{Canonical: canonical, Friendly: friendly}
}

// Branch is the checked-out branch, or the detached HEAD.
type Branch struct {
	Name           ReferenceName
	Sha            string
	IsDetachedHead bool
}
