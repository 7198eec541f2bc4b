package github

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseRemoteURL extracts owner and repository name from a git remote URL.
// Supported forms:
//
//	https://github.com/owner/repo(.git)
//	ssh://git@github.com/owner/repo(.git)
//	git@github.com:owner/repo(.git)
func ParseRemoteURL(remote string) (string, string, error) {
	var path string

	switch {
	case strings.Contains(remote, "://"):
		u, err := url.Parse(remote)
		if err != nil {
			return "", "", fmt.Errorf("parsing remote URL %q: %w", remote, err)
		}
		path = u.Path
	case strings.Contains(remote, ":"):
		// scp-like syntax: [user@]host:path
		path = remote[strings.Index(remote, ":")+1:]
	default:
		return "", "", fmt.Errorf("unsupported remote URL %q", remote)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("remote URL %q does not name owner/repo", remote)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
