// Package release runs the release pipeline: test, bump manifests, build,
// commit, tag, push, publish and clean up, as an ordered list of named steps.
package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/config"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/fsys"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/git"
	ghprovider "github.com/MyCarrier-DevOps/go-releaseable/internal/github"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/output"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/shell"
)

// ReleaseCreator creates a hosted release for a pushed tag.
type ReleaseCreator interface {
	CreateRelease(ctx context.Context, req ghprovider.ReleaseRequest) (string, error)
}

// Orchestrator executes the release steps for one resolved configuration.
type Orchestrator struct {
	cfg      config.ReleaseConfig
	runner   shell.Runner
	fs       fsys.FS
	repo     git.Repository
	releaser ReleaseCreator
	reporter *output.Reporter
	logger   *slog.Logger
	workDir  string

	ghOwner string
	ghRepo  string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRepository enables the preflight checks against repo.
func WithRepository(repo git.Repository) Option {
	return func(o *Orchestrator) { o.repo = repo }
}

// WithReleaser sets the client used by the github-release step.
func WithReleaser(r ReleaseCreator) Option {
	return func(o *Orchestrator) { o.releaser = r }
}

// WithReporter sets the progress reporter. Defaults to a reporter that
// discards everything.
func WithReporter(r *output.Reporter) Option {
	return func(o *Orchestrator) { o.reporter = r }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithWorkDir sets the directory commands run in.
func WithWorkDir(dir string) Option {
	return func(o *Orchestrator) { o.workDir = dir }
}

// New creates an Orchestrator. cfg is copied and never modified.
func New(cfg config.ReleaseConfig, runner shell.Runner, fs fsys.FS, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:    cfg,
		runner: runner,
		fs:     fs,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.reporter == nil {
		o.reporter = output.NewReporter(io.Discard, cfg.Silent)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.GitHubRelease.Enabled && cfg.GitHubRelease.Owner != "" && cfg.GitHubRelease.Repo != "" {
		o.ghOwner, o.ghRepo = cfg.GitHubRelease.Owner, cfg.GitHubRelease.Repo
	}
	return o
}

// Config returns the resolved configuration of the run.
func (o *Orchestrator) Config() config.ReleaseConfig {
	return o.cfg
}

// Run performs every applicable step in order, or only reports them in dry
// run. The first fatal failure stops the run; steps already performed are
// not undone.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.logger.Info("starting release",
		"version", o.cfg.Version,
		"dryRun", o.cfg.DryRun,
		"failOnCommandError", o.cfg.FailOnCommandError,
	)

	if err := o.preflight(); err != nil {
		return fmt.Errorf("preflight: %w", err)
	}

	for _, step := range o.Steps() {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: step.Name, Err: err}
		}

		if reason := step.skipReason(); reason != "" {
			o.logger.Debug("skipping step", "step", step.Name, "reason", reason)
			continue
		}

		if step.Title != "" {
			o.reporter.Header(step.Title)
		}
		desc := step.Describe()
		o.reporter.Start(desc)

		if o.cfg.DryRun {
			o.logger.Debug("dry run, not executing", "step", step.Name)
			o.reporter.OK(desc)
			continue
		}

		ignored, err := o.execute(ctx, step)
		if err != nil {
			o.reporter.Fail(err)
			var exitErr *shell.ExitError
			if errors.As(err, &exitErr) {
				o.reporter.Output(exitErr.Output)
			}
			return &StepError{Step: step.Name, Err: err}
		}
		o.reporter.OK(desc)
		for _, w := range ignored {
			o.reporter.Warn("%v (ignored)", w)
		}
	}

	o.logger.Info("release finished", "version", o.cfg.Version)
	return nil
}

// execute runs the step's action and commands. Command exit failures are
// returned as ignored when FailOnCommandError is off.
func (o *Orchestrator) execute(ctx context.Context, step Step) ([]error, error) {
	if step.Action != nil {
		if err := step.Action(ctx); err != nil {
			return nil, err
		}
	}

	var ignored []error
	for _, cmd := range step.Commands {
		o.logger.Debug("running command", "step", step.Name, "command", cmd.String())

		res, err := o.runner.Run(ctx, cmd, shell.Options{Capture: o.cfg.Silent})
		o.logger.Debug("command finished", "step", step.Name, "exitCode", res.ExitCode, "outputBytes", len(res.Output))
		if err == nil {
			continue
		}

		var exitErr *shell.ExitError
		if errors.As(err, &exitErr) && !o.cfg.FailOnCommandError {
			o.logger.Warn("command failed, continuing", "step", step.Name, "command", cmd.String(), "exitCode", exitErr.ExitCode)
			ignored = append(ignored, err)
			continue
		}
		return ignored, err
	}
	return ignored, nil
}

// preflight checks the repository before anything is changed. Without a
// repository there is nothing to check.
func (o *Orchestrator) preflight() error {
	if o.repo == nil {
		return o.resolveGitHubTarget()
	}

	head, err := o.repo.Head()
	if err != nil {
		return err
	}
	if head.IsDetachedHead {
		o.reporter.Warn("HEAD is detached; the release branch starts from %s", head.Sha)
	}
	o.logger.Debug("preflight", "branch", head.Name.Friendly, "sha", head.Sha)

	dirty, err := o.repo.NumberOfUncommittedChanges()
	if err != nil {
		return err
	}
	if dirty > 0 {
		o.reporter.Warn("%d uncommitted changes will be included by commit -a", dirty)
	}

	exists, err := o.repo.TagExists(o.cfg.Version)
	if err != nil {
		return err
	}
	if exists {
		if err := o.conflict(fmt.Errorf("%s: %w", o.cfg.Version, ErrTagExists)); err != nil {
			return err
		}
	}

	exists, err = o.repo.BranchExists(o.cfg.ReleaseBranch)
	if err != nil {
		return err
	}
	if exists {
		err := fmt.Errorf("%s: %w (remove it with git branch -D %s)", o.cfg.ReleaseBranch, ErrReleaseBranchExists, o.cfg.ReleaseBranch)
		if err := o.conflict(err); err != nil {
			return err
		}
	}

	return o.resolveGitHubTarget()
}

// conflict returns err, or reports it as a warning in dry run.
func (o *Orchestrator) conflict(err error) error {
	if !o.cfg.DryRun {
		return err
	}
	o.reporter.Warn("%v", err)
	return nil
}

func (o *Orchestrator) resolveGitHubTarget() error {
	if !o.cfg.GitHubRelease.Enabled || o.ghOwner != "" {
		return nil
	}
	owner, repo, err := ResolveGitHubTarget(o.cfg.GitHubRelease, o.cfg.RemoteName, o.repo)
	if err != nil {
		return fmt.Errorf("resolving GitHub repository: %w", err)
	}
	o.ghOwner, o.ghRepo = owner, repo
	return nil
}

func (o *Orchestrator) createGitHubRelease(ctx context.Context) error {
	if o.releaser == nil {
		return errors.New("github-release is enabled but no GitHub client is configured")
	}
	url, err := o.releaser.CreateRelease(ctx, ghprovider.ReleaseRequest{
		Owner:         o.ghOwner,
		Repo:          o.ghRepo,
		Tag:           o.cfg.Version,
		Draft:         o.cfg.GitHubRelease.Draft,
		Prerelease:    o.cfg.GitHubRelease.Prerelease,
		GenerateNotes: o.cfg.GitHubRelease.GenerateNotes,
	})
	if err != nil {
		return err
	}
	o.logger.Info("created GitHub release", "url", url)
	return nil
}

// Plan describes every step without running anything.
func (o *Orchestrator) Plan() []output.PlanEntry {
	steps := o.Steps()
	entries := make([]output.PlanEntry, 0, len(steps))
	for _, step := range steps {
		entry := output.PlanEntry{Name: step.Name}
		if reason := step.skipReason(); reason != "" {
			entry.Skipped = true
			entry.Reason = reason
			entries = append(entries, entry)
			continue
		}
		entry.Description = step.Describe()
		for _, c := range step.Commands {
			entry.Commands = append(entry.Commands, c.String())
		}
		entries = append(entries, entry)
	}
	return entries
}
