package config

import (
	"errors"
	"strings"
)

// MessageFunc renders a commit message for a release version.
type MessageFunc func(version string) string

// TemplateMessage returns a MessageFunc that substitutes VersionPlaceholder
// in tmpl. A template without the placeholder is used verbatim.
func TemplateMessage(tmpl string) MessageFunc {
	return func(version string) string {
		return strings.ReplaceAll(tmpl, VersionPlaceholder, version)
	}
}

// ReleaseConfig is a fully resolved configuration with every field
// guaranteed to have a value. It is created once per run and never mutated.
type ReleaseConfig struct {
	Version            string
	BuildCommand       string
	TestCommand        string
	PublishCommand     string
	RemoteName         string
	MainBranch         string
	ReleaseBranch      string
	DryRun             bool
	Silent             bool
	FailOnCommandError bool
	PackageManifest    string
	Manifests          []string
	BumpCommitMessage  MessageFunc
	BuildCommitMessage MessageFunc
	Files              []FileSet
	GitHubRelease      GitHubRelease
}

// GitHubRelease is the resolved form of GitHubReleaseConfig.
type GitHubRelease struct {
	Enabled       bool
	Owner         string
	Repo          string
	Draft         bool
	Prerelease    bool
	GenerateNotes bool
}

// Strategies holds caller-supplied commit-message callbacks. Non-nil
// callbacks take precedence over the configured templates.
type Strategies struct {
	BumpCommitMessage  MessageFunc
	BuildCommitMessage MessageFunc
}

// Resolve converts cfg into a ReleaseConfig. defaultVersion is used when
// cfg.Version is unset; it is typically resolved from the package manifest.
func Resolve(cfg *Config, defaultVersion string, s Strategies) (ReleaseConfig, error) {
	version := derefString(cfg.Version, defaultVersion)
	if strings.TrimSpace(version) == "" {
		return ReleaseConfig{}, errors.New("no release version: set version or add one to the package manifest")
	}

	rc := ReleaseConfig{
		Version:            version,
		BuildCommand:       strings.TrimSpace(derefString(cfg.Build, DefaultBuild)),
		TestCommand:        strings.TrimSpace(derefString(cfg.Test, DefaultTest)),
		PublishCommand:     strings.TrimSpace(derefString(cfg.Publish, DefaultPublish)),
		RemoteName:         derefString(cfg.Remote, DefaultRemote),
		MainBranch:         derefString(cfg.MainBranch, DefaultMainBranch),
		ReleaseBranch:      derefString(cfg.ReleaseBranch, DefaultReleaseBranch),
		DryRun:             derefBool(cfg.DryRun, false),
		Silent:             derefBool(cfg.Silent, true),
		FailOnCommandError: derefBool(cfg.FailOnCommandError, true),
		PackageManifest:    derefString(cfg.PackageManifest, DefaultPackageManifest),
		Manifests:          append([]string{}, DefaultManifests...),
		BumpCommitMessage:  TemplateMessage(derefString(cfg.BumpCommitMessage, DefaultBumpCommitMessage)),
		BuildCommitMessage: TemplateMessage(derefString(cfg.BuildCommitMessage, DefaultBuildCommitMessage)),
		Files:              append([]FileSet{}, cfg.Files...),
		GitHubRelease: GitHubRelease{
			Enabled:       derefBool(cfg.GitHubRelease.Enabled, false),
			Owner:         derefString(cfg.GitHubRelease.Owner, ""),
			Repo:          derefString(cfg.GitHubRelease.Repo, ""),
			Draft:         derefBool(cfg.GitHubRelease.Draft, false),
			Prerelease:    derefBool(cfg.GitHubRelease.Prerelease, false),
			GenerateNotes: derefBool(cfg.GitHubRelease.GenerateNotes, true),
		},
	}
	if cfg.Manifests != nil {
		rc.Manifests = append([]string{}, *cfg.Manifests...)
	}
	if s.BumpCommitMessage != nil {
		rc.BumpCommitMessage = s.BumpCommitMessage
	}
	if s.BuildCommitMessage != nil {
		rc.BuildCommitMessage = s.BuildCommitMessage
	}

	return rc, nil
}
