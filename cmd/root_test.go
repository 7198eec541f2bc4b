package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	for _, name := range []string{
		"path", "config", "version", "build", "test", "publish", "remote",
		"main-branch", "release-branch", "dry-run", "silent",
		"fail-on-command-error", "github-release", "token", "timeout",
		"show-config", "verbosity", "log-json",
	} {
		require.NotNil(t, flags.Lookup(name), "missing flag %s", name)
	}
	require.Equal(t, "p", flags.Lookup("path").Shorthand)
	require.Equal(t, "v", flags.Lookup("verbosity").Shorthand)
}

func TestRootCmd_Defaults(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	require.Equal(t, "true", flags.Lookup("silent").DefValue)
	require.Equal(t, "false", flags.Lookup("dry-run").DefValue)
	require.Equal(t, "true", flags.Lookup("fail-on-command-error").DefValue)
	require.Equal(t, "info", flags.Lookup("verbosity").DefValue)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	require.True(t, names["version"], "version subcommand should be registered")
	require.True(t, names["plan"], "plan subcommand should be registered")
}
