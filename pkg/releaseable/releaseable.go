// Package releaseable provides a public Go API for running a release: test,
// bump manifests, build, commit, tag, push and publish a package.
//
// Basic usage:
//
//	err := releaseable.Run(ctx, releaseable.Options{
//	    Path: "/path/to/repo",
//	})
//
// Overrides are layered over the repository's releaseable.yml:
//
//	err := releaseable.Run(ctx, releaseable.Options{
//	    Overrides: &releaseable.Config{DryRun: releaseable.Bool(true)},
//	    BuildCommitMessage: func(v string) string { return "release " + v },
//	})
package releaseable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/config"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/fsys"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/git"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/output"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/release"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/shell"

	ghprovider "github.com/MyCarrier-DevOps/go-releaseable/internal/github"
)

// Config is the raw, layered configuration. Nil fields are unset.
type Config = config.Config

// FileSet is one entry of the files configuration.
type FileSet = config.FileSet

// GitHubReleaseConfig configures the optional GitHub release step.
type GitHubReleaseConfig = config.GitHubReleaseConfig

// PlanEntry describes one step of a release plan.
type PlanEntry = output.PlanEntry

// Sentinel errors callers can test with errors.Is.
var (
	ErrTagExists           = release.ErrTagExists
	ErrReleaseBranchExists = release.ErrReleaseBranchExists
)

// ConfigFileNames lists the files searched for configuration in order.
// Checks .github/ first, then the repository root.
var ConfigFileNames = []string{
	".github/releaseable.yml",
	"releaseable.yml",
	".releaseable.yml",
}

// Options configures a release run.
type Options struct {
	// Path to the repository. Defaults to "." if empty. Commands run in the
	// repository root.
	Path string

	// ConfigPath is the path to a releaseable YAML config file. If empty,
	// ConfigFileNames are searched in the repository root.
	ConfigPath string

	// Overrides is layered over the config file.
	Overrides *Config

	// BumpCommitMessage and BuildCommitMessage take precedence over the
	// configured message templates.
	BumpCommitMessage  func(version string) string
	BuildCommitMessage func(version string) string

	// Stdout receives progress lines and streamed command output. Defaults
	// to os.Stdout.
	Stdout io.Writer

	// Stderr receives streamed command errors. Defaults to os.Stderr.
	Stderr io.Writer

	// Logger receives diagnostic logs. Defaults to discarding them.
	Logger *slog.Logger

	// Token authenticates the GitHub release step. Falls back to
	// GITHUB_TOKEN, then to GitHub App credentials from the environment.
	Token string

	// Env is appended to the environment of every command.
	Env []string

	runner   shell.Runner
	releaser release.ReleaseCreator
}

// Release is a prepared release run.
type Release struct {
	cfg          *config.Config
	orchestrator *release.Orchestrator
}

// Run prepares and performs a release.
func Run(ctx context.Context, opts Options) error {
	rel, err := New(ctx, opts)
	if err != nil {
		return err
	}
	return rel.Run(ctx)
}

// New opens the repository, loads and resolves the configuration and
// prepares a release without running anything.
func New(ctx context.Context, opts Options) (*Release, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// 1. Open repository. Outside a repository only a dry run is allowed.
	workDir, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	var repo git.Repository
	gitRepo, err := git.Open(path)
	switch {
	case err == nil:
		repo = gitRepo
		workDir = gitRepo.WorkingDirectory()
	case errors.Is(err, git.ErrNotRepository):
		logger.Debug("not a git repository", "path", workDir)
	default:
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	// 2. Load configuration.
	cfg, err := LoadConfig(workDir, opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	dryRun := cfg.DryRun != nil && *cfg.DryRun
	if repo == nil && !dryRun {
		return nil, fmt.Errorf("opening repository: %w", git.ErrNotRepository)
	}

	// 3. Resolve the release configuration.
	fs := fsys.OS(workDir)
	rc, err := release.ResolveConfig(fs, cfg, config.Strategies{
		BumpCommitMessage:  opts.BumpCommitMessage,
		BuildCommitMessage: opts.BuildCommitMessage,
	})
	if err != nil {
		return nil, err
	}

	// 4. GitHub release target and client.
	releaser := opts.releaser
	if rc.GitHubRelease.Enabled {
		owner, name, err := release.ResolveGitHubTarget(rc.GitHubRelease, rc.RemoteName, repo)
		if err != nil {
			return nil, fmt.Errorf("resolving GitHub repository: %w", err)
		}
		rc.GitHubRelease.Owner, rc.GitHubRelease.Repo = owner, name

		if releaser == nil && !rc.DryRun {
			client, err := ghprovider.NewClient(ctx, ghprovider.ClientConfig{
				Token: opts.Token,
				Owner: owner,
			})
			if err != nil {
				return nil, fmt.Errorf("creating GitHub client: %w", err)
			}
			releaser = ghprovider.NewReleaser(client)
		}
	}

	// 5. Wire the orchestrator.
	runner := opts.runner
	if runner == nil {
		runner = shell.NewExecRunner(stdout, opts.Stderr).WithEnv(opts.Env...)
	}
	orchOpts := []release.Option{
		release.WithReporter(output.NewReporter(stdout, rc.Silent)),
		release.WithLogger(logger),
		release.WithWorkDir(fs.Root()),
	}
	if repo != nil {
		orchOpts = append(orchOpts, release.WithRepository(repo))
	}
	if releaser != nil {
		orchOpts = append(orchOpts, release.WithReleaser(releaser))
	}

	return &Release{
		cfg:          cfg,
		orchestrator: release.New(rc, runner, fs, orchOpts...),
	}, nil
}

// Run performs every applicable step, or only reports them in dry run.
func (r *Release) Run(ctx context.Context) error {
	return r.orchestrator.Run(ctx)
}

// Plan describes every step without running anything.
func (r *Release) Plan() []PlanEntry {
	return r.orchestrator.Plan()
}

// Version returns the version being released.
func (r *Release) Version() string {
	return r.orchestrator.Config().Version
}

// Config returns the merged configuration the release was resolved from.
func (r *Release) Config() *Config {
	return r.cfg
}

// LoadConfig builds the configuration for the repository in workDir:
// defaults, then the config file, then overrides.
func LoadConfig(workDir, configPath string, overrides *Config) (*Config, error) {
	builder := config.NewBuilder()

	if configPath == "" {
		configPath = FindConfigFile(workDir)
	}

	if configPath != "" {
		userCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		builder.Add(userCfg)
	}

	return builder.Add(overrides).Build()
}

// FindConfigFile returns the first of ConfigFileNames present in dir, or "".
func FindConfigFile(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// String returns a pointer to s, for building Config overrides.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building Config overrides.
func Bool(b bool) *bool { return &b }
