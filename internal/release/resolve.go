package release

import (
	"errors"
	"fmt"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/config"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/fsys"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/git"
	ghprovider "github.com/MyCarrier-DevOps/go-releaseable/internal/github"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/version"
)

// ResolveConfig turns a built Config into the ReleaseConfig of one run. The
// package manifest is only read when no version was configured.
func ResolveConfig(fs fsys.FS, cfg *config.Config, s config.Strategies) (config.ReleaseConfig, error) {
	defaultVersion := ""
	if cfg.Version == nil {
		manifest := config.DefaultPackageManifest
		if cfg.PackageManifest != nil {
			manifest = *cfg.PackageManifest
		}
		v, err := version.Default(fs, manifest)
		if err != nil {
			return config.ReleaseConfig{}, fmt.Errorf("resolving version: %w", err)
		}
		defaultVersion = v
	}
	return config.Resolve(cfg, defaultVersion, s)
}

// ResolveGitHubTarget returns the owner and repository a GitHub release is
// created in. Explicit configuration wins; otherwise both are parsed from the
// URL of the release remote.
func ResolveGitHubTarget(rel config.GitHubRelease, remote string, repo git.Repository) (string, string, error) {
	if rel.Owner != "" && rel.Repo != "" {
		return rel.Owner, rel.Repo, nil
	}
	if repo == nil {
		return "", "", errors.New("github-release needs owner and repo when not running inside a git repository")
	}

	url, err := repo.RemoteURL(remote)
	if err != nil {
		return "", "", err
	}
	owner, name, err := ghprovider.ParseRemoteURL(url)
	if err != nil {
		return "", "", err
	}

	if rel.Owner != "" {
		owner = rel.Owner
	}
	if rel.Repo != "" {
		name = rel.Repo
	}
	return owner, name, nil
}
