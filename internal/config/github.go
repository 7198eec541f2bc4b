package config

// GitHubReleaseConfig controls creation of a GitHub release for the pushed
// tag.
type GitHubReleaseConfig struct {
	Enabled       *bool   `yaml:"enabled"`
	Owner         *string `yaml:"owner"`
	Repo          *string `yaml:"repo"`
	Draft         *bool   `yaml:"draft"`
	Prerelease    *bool   `yaml:"prerelease"`
	GenerateNotes *bool   `yaml:"generate-notes"`
}

// MergeTo copies all non-nil fields from c into target.
func (c GitHubReleaseConfig) MergeTo(target *GitHubReleaseConfig) {
	if c.Enabled != nil {
		target.Enabled = c.Enabled
	}
	if c.Owner != nil {
		target.Owner = c.Owner
	}
	if c.Repo != nil {
		target.Repo = c.Repo
	}
	if c.Draft != nil {
		target.Draft = c.Draft
	}
	if c.Prerelease != nil {
		target.Prerelease = c.Prerelease
	}
	if c.GenerateNotes != nil {
		target.GenerateNotes = c.GenerateNotes
	}
}
