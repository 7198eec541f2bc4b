package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v68/github"
)

// ErrReleaseExists is returned when a release for the tag already exists.
var ErrReleaseExists = errors.New("release already exists")

// ReleaseRequest describes the release to create.
type ReleaseRequest struct {
	Owner         string
	Repo          string
	Tag           string
	Draft         bool
	Prerelease    bool
	GenerateNotes bool
}

// Releaser creates GitHub releases.
type Releaser struct {
	client *gh.Client
}

// NewReleaser wraps an authenticated client.
func NewReleaser(client *gh.Client) *Releaser {
	return &Releaser{client: client}
}

// CreateRelease creates a release named after the tag and returns its web
// URL. The tag must already be pushed.
func (r *Releaser) CreateRelease(ctx context.Context, req ReleaseRequest) (string, error) {
	rel, resp, err := r.client.Repositories.CreateRelease(ctx, req.Owner, req.Repo, &gh.RepositoryRelease{
		TagName:              gh.Ptr(req.Tag),
		Name:                 gh.Ptr(req.Tag),
		Draft:                gh.Ptr(req.Draft),
		Prerelease:           gh.Ptr(req.Prerelease),
		GenerateReleaseNotes: gh.Ptr(req.GenerateNotes),
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity && isAlreadyExists(err) {
			return "", fmt.Errorf("%s/%s %s: %w", req.Owner, req.Repo, req.Tag, ErrReleaseExists)
		}
		return "", fmt.Errorf("creating release %s in %s/%s: %w", req.Tag, req.Owner, req.Repo, err)
	}
	return rel.GetHTMLURL(), nil
}

func isAlreadyExists(err error) bool {
	var ghErr *gh.ErrorResponse
	if !errors.As(err, &ghErr) {
		return false
	}
	for _, e := range ghErr.Errors {
		if e.Code == "already_exists" {
			return true
		}
	}
	return false
}
