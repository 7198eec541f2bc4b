package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/output"
	"github.com/MyCarrier-DevOps/go-releaseable/pkg/releaseable"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func releaseRunE(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	// 1. Show config mode: print and exit.
	if flagShowConfig {
		cfg, err := releaseable.LoadConfig(flagPath, flagConfig, flagOverrides(cmd.Flags()))
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return output.WriteJSON(cmd.OutOrStdout(), cfg)
	}

	// 2. Prepare the release: repository, configuration, version.
	rel, err := prepare(ctx, cmd, flagOverrides(cmd.Flags()))
	if err != nil {
		return err
	}

	// 3. Run the pipeline.
	return rel.Run(ctx)
}

// prepare builds the release from the flags of cmd.
func prepare(ctx context.Context, cmd *cobra.Command, overrides *releaseable.Config) (*releaseable.Release, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), flagVerbosity, flagLogJSON)
	if err != nil {
		return nil, err
	}

	return releaseable.New(ctx, releaseable.Options{
		Path:       flagPath,
		ConfigPath: flagConfig,
		Overrides:  overrides,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
		Logger:     logger,
		Token:      flagToken,
	})
}

// flagOverrides returns a configuration layer holding only the flags the
// user set, so unset flags never mask the config file.
func flagOverrides(flags *pflag.FlagSet) *releaseable.Config {
	cfg := &releaseable.Config{}

	stringFlags := []struct {
		name   string
		value  string
		target **string
	}{
		{"version", flagVersion, &cfg.Version},
		{"build", flagBuild, &cfg.Build},
		{"test", flagTest, &cfg.Test},
		{"publish", flagPublish, &cfg.Publish},
		{"remote", flagRemote, &cfg.Remote},
		{"main-branch", flagMainBranch, &cfg.MainBranch},
		{"release-branch", flagReleaseBranch, &cfg.ReleaseBranch},
	}
	for _, f := range stringFlags {
		if flags.Changed(f.name) {
			*f.target = releaseable.String(f.value)
		}
	}

	boolFlags := []struct {
		name   string
		value  bool
		target **bool
	}{
		{"dry-run", flagDryRun, &cfg.DryRun},
		{"silent", flagSilent, &cfg.Silent},
		{"fail-on-command-error", flagFailOnCommandError, &cfg.FailOnCommandError},
		{"github-release", flagGitHubRelease, &cfg.GitHubRelease.Enabled},
	}
	for _, f := range boolFlags {
		if flags.Changed(f.name) {
			*f.target = releaseable.Bool(f.value)
		}
	}

	return cfg
}

// commandContext returns the context of a run: cancelled on SIGINT or
// SIGTERM, and bounded by --timeout when set.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	if flagTimeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, flagTimeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// newLogger creates the diagnostic logger for the given verbosity.
func newLogger(w io.Writer, verbosity string, json bool) (*slog.Logger, error) {
	var level slog.Level
	switch verbosity {
	case "quiet":
		level = slog.LevelError
	case "info", "":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown verbosity %q: use quiet, info or debug", verbosity)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}
