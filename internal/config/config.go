// Package config provides YAML configuration loading, defaults, layered
// merging, and resolution into the immutable settings of a release run.
package config

// Config is the raw releaseable configuration. All optional fields are
// pointers to support merge semantics during configuration building: a nil
// field means "not set by this layer".
type Config struct {
	Version            *string             `yaml:"version"`
	Build              *string             `yaml:"build"`
	Test               *string             `yaml:"test"`
	Publish            *string             `yaml:"publish"`
	Remote             *string             `yaml:"remote"`
	MainBranch         *string             `yaml:"main-branch"`
	ReleaseBranch      *string             `yaml:"release-branch"`
	DryRun             *bool               `yaml:"dry-run"`
	Silent             *bool               `yaml:"silent"`
	FailOnCommandError *bool               `yaml:"fail-on-command-error"`
	PackageManifest    *string             `yaml:"package-manifest"`
	Manifests          *[]string           `yaml:"manifests"`
	BumpCommitMessage  *string             `yaml:"bump-commit-message"`
	BuildCommitMessage *string             `yaml:"build-commit-message"`
	Files              []FileSet           `yaml:"files"`
	GitHubRelease      GitHubReleaseConfig `yaml:"github-release"`
}
