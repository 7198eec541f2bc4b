package release

import (
	"errors"
	"testing"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/config"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/fsys"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/git"
	"github.com/MyCarrier-DevOps/go-releaseable/internal/version"

	"github.com/stretchr/testify/require"
)

func TestResolveConfig(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		override *config.Config
		want     string
		wantErr  string
	}{
		{
			name:  "version from package.json gets a v prefix",
			files: map[string]string{"package.json": `{"name": "demo", "version": "1.2.3"}`},
			want:  "v1.2.3",
		},
		{
			name:  "non-semver manifest version is kept",
			files: map[string]string{"package.json": `{"version": "nightly"}`},
			want:  "nightly",
		},
		{
			name:     "explicit version skips the manifest",
			override: &config.Config{Version: strPtr("2.0.0-rc.1")},
			want:     "2.0.0-rc.1",
		},
		{
			name:     "custom package manifest",
			files:    map[string]string{"meta/package.json": `{"version": "0.4.0"}`},
			override: &config.Config{PackageManifest: strPtr("meta/package.json")},
			want:     "v0.4.0",
		},
		{
			name:    "missing package.json",
			wantErr: "resolving version",
		},
		{
			name:    "package.json without version",
			files:   map[string]string{"package.json": `{"name": "demo"}`},
			wantErr: "package manifest has no version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := fsys.Memory()
			for name, content := range tt.files {
				require.NoError(t, fs.WriteFile(name, content))
			}
			cfg, err := config.NewBuilder().Add(tt.override).Build()
			require.NoError(t, err)

			rc, err := ResolveConfig(fs, cfg, config.Strategies{})
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, rc.Version)
		})
	}
}

func TestResolveConfig_NoManifestVersionIsWrapped(t *testing.T) {
	fs := fsys.Memory()
	require.NoError(t, fs.WriteFile("package.json", `{}`))
	cfg, err := config.NewBuilder().Build()
	require.NoError(t, err)

	_, err = ResolveConfig(fs, cfg, config.Strategies{})
	require.True(t, errors.Is(err, version.ErrNoManifestVersion))
}

func TestResolveGitHubTarget(t *testing.T) {
	remote := func(url string) *git.MockRepository {
		return &git.MockRepository{RemoteURLFunc: func(string) (string, error) { return url, nil }}
	}

	tests := []struct {
		name      string
		rel       config.GitHubRelease
		repo      git.Repository
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "explicit owner and repo",
			rel:       config.GitHubRelease{Owner: "acme", Repo: "widget"},
			wantOwner: "acme",
			wantRepo:  "widget",
		},
		{
			name:      "parsed from https remote",
			repo:      remote("https://github.com/acme/widget.git"),
			wantOwner: "acme",
			wantRepo:  "widget",
		},
		{
			name:      "explicit owner overrides remote",
			rel:       config.GitHubRelease{Owner: "fork"},
			repo:      remote("git@github.com:acme/widget.git"),
			wantOwner: "fork",
			wantRepo:  "widget",
		},
		{
			name:    "no repository",
			wantErr: true,
		},
		{
			name: "remote lookup fails",
			repo: &git.MockRepository{RemoteURLFunc: func(string) (string, error) {
				return "", errors.New("looking up remote origin: remote not found")
			}},
			wantErr: true,
		},
		{
			name:    "local path remote",
			repo:    remote("/srv/git/widget.git"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name, err := ResolveGitHubTarget(tt.rel, "origin", tt.repo)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOwner, owner)
			require.Equal(t, tt.wantRepo, name)
		})
	}
}
