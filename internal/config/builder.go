package config

import (
	"errors"
	"fmt"
	"strings"
)

// Builder constructs a Config by layering overrides on top of defaults.
type Builder struct {
	overrides []*Config
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a configuration override. Overrides are applied in order:
// later overrides take precedence over earlier ones.
func (b *Builder) Add(override *Config) *Builder {
	if override != nil {
		b.overrides = append(b.overrides, override)
	}
	return b
}

// Build constructs the final configuration by starting with defaults,
// applying all overrides, and validating.
func (b *Builder) Build() (*Config, error) {
	cfg := CreateDefaultConfiguration()

	for _, override := range b.overrides {
		mergeConfig(cfg, override)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig applies non-nil fields from src to dst.
func mergeConfig(dst, src *Config) {
	if src.Version != nil {
		dst.Version = src.Version
	}
	if src.Build != nil {
		dst.Build = src.Build
	}
	if src.Test != nil {
		dst.Test = src.Test
	}
	if src.Publish != nil {
		dst.Publish = src.Publish
	}
	if src.Remote != nil {
		dst.Remote = src.Remote
	}
	if src.MainBranch != nil {
		dst.MainBranch = src.MainBranch
	}
	if src.ReleaseBranch != nil {
		dst.ReleaseBranch = src.ReleaseBranch
	}
	if src.DryRun != nil {
		dst.DryRun = src.DryRun
	}
	if src.Silent != nil {
		dst.Silent = src.Silent
	}
	if src.FailOnCommandError != nil {
		dst.FailOnCommandError = src.FailOnCommandError
	}
	if src.PackageManifest != nil {
		dst.PackageManifest = src.PackageManifest
	}
	if src.Manifests != nil {
		dst.Manifests = src.Manifests
	}
	if src.BumpCommitMessage != nil {
		dst.BumpCommitMessage = src.BumpCommitMessage
	}
	if src.BuildCommitMessage != nil {
		dst.BuildCommitMessage = src.BuildCommitMessage
	}

	// Files replace rather than append: a layer that lists files owns the
	// whole list.
	if src.Files != nil {
		dst.Files = src.Files
	}

	src.GitHubRelease.MergeTo(&dst.GitHubRelease)
}

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	required := []struct {
		name  string
		value *string
	}{
		{"remote", cfg.Remote},
		{"main-branch", cfg.MainBranch},
		{"release-branch", cfg.ReleaseBranch},
		{"package-manifest", cfg.PackageManifest},
	}
	for _, r := range required {
		if r.value == nil || strings.TrimSpace(*r.value) == "" {
			return fmt.Errorf("%s must not be empty", r.name)
		}
	}

	if *cfg.ReleaseBranch == *cfg.MainBranch {
		return fmt.Errorf("release-branch %q must differ from main-branch", *cfg.ReleaseBranch)
	}

	if cfg.Version != nil && strings.TrimSpace(*cfg.Version) == "" {
		return errors.New("version must not be empty when set")
	}

	for i, set := range cfg.Files {
		for _, pattern := range set.Src {
			if strings.TrimSpace(pattern) == "" {
				return fmt.Errorf("files[%d] contains an empty pattern", i)
			}
			if strings.HasPrefix(pattern, "-") {
				return fmt.Errorf("files[%d] pattern %q must not start with '-'", i, pattern)
			}
		}
	}

	return nil
}
