package release

import (
	"context"
	"fmt"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/config"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/manifest"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/shell"
)

// Step names.
const (
	StepTest          = "test"
	StepBump          = "bump"
	StepBumpCommit    = "bump-commit"
	StepBranch        = "branch"
	StepBuild         = "build"
	StepStage         = "stage"
	StepBuildCommit   = "build-commit"
	StepTag           = "tag"
	StepPush          = "push"
	StepGitHubRelease = "github-release"
	StepPublish       = "publish"
	StepCleanup       = "cleanup"
)

// Steps returns the release pipeline in execution order.
func (o *Orchestrator) Steps() []Step {
	cfg := o.cfg
	v := cfg.Version

	steps := []Step{{
		Name:     StepTest,
		Title:    "Test",
		Skip:     skipIfEmpty(cfg.TestCommand, "no test command"),
		Describe: describef("running tests with %s", cfg.TestCommand),
		Commands: o.cmds(shell.Script(cfg.TestCommand)),
	}}

	for i, name := range cfg.Manifests {
		title := ""
		if i == 0 {
			title = "Bump"
		}
		steps = append(steps, Step{
			Name:     StepBump + ":" + name,
			Title:    title,
			Skip:     o.skipUnlessExists(name),
			Describe: describef("bumping %s to %s", name, v),
			Action: func(context.Context) error {
				previous, err := manifest.BumpFile(o.fs, name, v, false)
				if err != nil {
					return err
				}
				o.logger.Info("bumped manifest", "file", name, "from", previous, "to", v)
				return nil
			},
		})
	}

	files := config.FlattenFiles(cfg.Files)

	steps = append(steps,
		Step{
			Name:     StepBumpCommit,
			Skip:     o.skipUnlessAnyManifest,
			Describe: describef("committing bumped files"),
			Commands: o.cmds(shell.Git("commit", "-a", "-m", cfg.BumpCommitMessage(v))),
		},
		Step{
			Name:     StepBranch,
			Title:    "Build",
			Describe: describef("checking out temporary branch %s to build and release on", cfg.ReleaseBranch),
			Commands: o.cmds(shell.Git("checkout", "-b", cfg.ReleaseBranch)),
		},
		Step{
			Name:     StepBuild,
			Skip:     skipIfEmpty(cfg.BuildCommand, "no build command"),
			Describe: describef("building with %s", cfg.BuildCommand),
			Commands: o.cmds(shell.Script(cfg.BuildCommand)),
		},
		Step{
			Name: StepStage,
			Skip: func() string {
				if len(files) == 0 {
					return "no files configured"
				}
				return ""
			},
			Describe: describef("adding %d build file patterns", len(files)),
			Commands: o.cmds(shell.Git(append(append([]string{"add"}, files...), "-f")...)),
		},
		Step{
			Name:     StepBuildCommit,
			Describe: describef("committing built files"),
			Commands: o.cmds(shell.Git("commit", "-a", "--allow-empty", "-m", cfg.BuildCommitMessage(v))),
		},
		Step{
			Name:     StepTag,
			Title:    "Release",
			Describe: describef("tagging build %s", v),
			Commands: o.cmds(shell.Git("tag", v)),
		},
		Step{
			Name:     StepPush,
			Describe: describef("pushing build to %s", cfg.RemoteName),
			Commands: o.cmds(shell.Git("push", "--tags", cfg.RemoteName, v)),
		},
		Step{
			Name: StepGitHubRelease,
			Skip: func() string {
				if !cfg.GitHubRelease.Enabled {
					return "github-release disabled"
				}
				return ""
			},
			Describe: o.describeGitHubRelease,
			Action:   o.createGitHubRelease,
		},
		Step{
			Name:     StepPublish,
			Skip:     skipIfEmpty(cfg.PublishCommand, "no publish command"),
			Describe: describef("publishing with %s", cfg.PublishCommand),
			Commands: o.cmds(shell.Script(cfg.PublishCommand)),
		},
		Step{
			Name:     StepCleanup,
			Title:    "Cleanup",
			Describe: describef("cleaning up"),
			Commands: o.cmds(
				shell.Git("checkout", cfg.MainBranch),
				shell.Git("branch", "-D", cfg.ReleaseBranch),
			),
		},
	)

	return steps
}

func describef(format string, args ...any) func() string {
	msg := fmt.Sprintf(format, args...)
	return func() string { return msg }
}

// cmds binds commands to the orchestrator's working directory.
func (o *Orchestrator) cmds(cmds ...shell.Command) []shell.Command {
	out := make([]shell.Command, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.In(o.workDir))
	}
	return out
}

func (o *Orchestrator) skipUnlessExists(name string) func() string {
	return func() string {
		if o.fs.Exists(name) {
			return ""
		}
		return name + " not found"
	}
}

func (o *Orchestrator) skipUnlessAnyManifest() string {
	if len(manifest.Existing(o.fs, o.cfg.Manifests)) > 0 {
		return ""
	}
	return "no manifests bumped"
}

func (o *Orchestrator) describeGitHubRelease() string {
	if o.ghOwner == "" {
		return fmt.Sprintf("creating GitHub release %s", o.cfg.Version)
	}
	return fmt.Sprintf("creating GitHub release %s in %s/%s", o.cfg.Version, o.ghOwner, o.ghRepo)
}
