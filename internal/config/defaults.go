package config

// Built-in defaults.
const (
	DefaultBuild              = "npm run prepublish"
	DefaultTest               = "npm test"
	DefaultPublish            = "npm publish"
	DefaultRemote             = "origin"
	DefaultMainBranch         = "master"
	DefaultReleaseBranch      = "_releaseable"
	DefaultPackageManifest    = "package.json"
	DefaultBumpCommitMessage  = "bumping version to " + VersionPlaceholder
	DefaultBuildCommitMessage = "build version " + VersionPlaceholder

	// VersionPlaceholder is replaced by the release version in commit
	// message templates.
	VersionPlaceholder = "{Version}"
)

// DefaultManifests are the secondary manifests bumped when present.
var DefaultManifests = []string{"bower.json", "component.json"}

// CreateDefaultConfiguration returns a Config with all default values
// populated. Version is left unset: it is resolved from the package
// manifest at run time.
func CreateDefaultConfiguration() *Config {
	return &Config{
		Build:              stringPtr(DefaultBuild),
		Test:               stringPtr(DefaultTest),
		Publish:            stringPtr(DefaultPublish),
		Remote:             stringPtr(DefaultRemote),
		MainBranch:         stringPtr(DefaultMainBranch),
		ReleaseBranch:      stringPtr(DefaultReleaseBranch),
		DryRun:             boolPtr(false),
		Silent:             boolPtr(true),
		FailOnCommandError: boolPtr(true),
		PackageManifest:    stringPtr(DefaultPackageManifest),
		Manifests:          strSlicePtr(append([]string{}, DefaultManifests...)),
		BumpCommitMessage:  stringPtr(DefaultBumpCommitMessage),
		BuildCommitMessage: stringPtr(DefaultBuildCommitMessage),
		GitHubRelease: GitHubReleaseConfig{
			Enabled:       boolPtr(false),
			Draft:         boolPtr(false),
			Prerelease:    boolPtr(false),
			GenerateNotes: boolPtr(true),
		},
	}
}
