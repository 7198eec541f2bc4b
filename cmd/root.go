package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath               string
	flagConfig             string
	flagVersion            string
	flagBuild              string
	flagTest               string
	flagPublish            string
	flagRemote             string
	flagMainBranch         string
	flagReleaseBranch      string
	flagDryRun             bool
	flagSilent             bool
	flagFailOnCommandError bool
	flagGitHubRelease      bool
	flagToken              string
	flagTimeout            time.Duration
	flagShowConfig         bool
	flagVerbosity          string
	flagLogJSON            bool
)

// rootCmd is the top-level command for releaseable.
var rootCmd = &cobra.Command{
	Use:   "releaseable",
	Short: "Test, build, tag, push and publish a release",
	Long: `releaseable runs the release cycle of a package: run the tests, bump the
version in secondary manifests, build on a temporary branch, commit and tag the
build, push the tag, publish the package and return to the main branch.

The version defaults to the one in package.json, prefixed with "v" when it is
a valid semantic version.

Examples:
  releaseable --dry-run --silent=false
  releaseable --version v2.0.0-rc.1 --publish "npm publish --tag next"
  releaseable plan`,
	SilenceUsage: true,
	// Default action is release.
	RunE: releaseRunE,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagPath, "path", "p", ".", "path to the git repository")
	flags.StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect releaseable.yml)")
	flags.StringVar(&flagVersion, "version", "", "release version (default: version from package.json)")
	flags.StringVar(&flagBuild, "build", "", `build command, "" disables building (default "npm run prepublish")`)
	flags.StringVar(&flagTest, "test", "", `test command, "" disables testing (default "npm test")`)
	flags.StringVar(&flagPublish, "publish", "", `publish command, "" disables publishing (default "npm publish")`)
	flags.StringVar(&flagRemote, "remote", "", `git remote to push the tag to (default "origin")`)
	flags.StringVar(&flagMainBranch, "main-branch", "", `branch to return to after the release (default "master")`)
	flags.StringVar(&flagReleaseBranch, "release-branch", "", `temporary branch the build is committed on (default "_releaseable")`)
	flags.BoolVar(&flagDryRun, "dry-run", false, "report every step without running commands or writing files")
	flags.BoolVar(&flagSilent, "silent", true, "capture command output and print one line per step")
	flags.BoolVar(&flagFailOnCommandError, "fail-on-command-error", true, "stop at the first command that exits non-zero")
	flags.BoolVar(&flagGitHubRelease, "github-release", false, "create a GitHub release for the pushed tag")
	flags.StringVar(&flagToken, "token", "", "GitHub token for --github-release (or set GITHUB_TOKEN env var)")
	flags.DurationVar(&flagTimeout, "timeout", 0, "abort the release after this duration (0 means no limit)")
	flags.BoolVar(&flagShowConfig, "show-config", false, "display the effective configuration and exit")
	flags.StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")
	flags.BoolVar(&flagLogJSON, "log-json", false, "write diagnostic logs as JSON")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
