package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MyCarrier-DevOps/go-releaseable/pkg/releaseable"

	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Library: releaseable.Run() with a mock GitHub API
// ---------------------------------------------------------------------------

// releaseAPI records release creation requests for one repository.
type releaseAPI struct {
	mu       sync.Mutex
	requests []map[string]any
	auth     []string
}

func newReleaseAPI(t *testing.T, owner, repo string) *releaseAPI {
	t.Helper()
	api := &releaseAPI{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v3/repos/"+owner+"/"+repo+"/releases", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		api.mu.Lock()
		api.requests = append(api.requests, body)
		api.auth = append(api.auth, r.Header.Get("Authorization"))
		api.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       1,
			"tag_name": body["tag_name"],
			"html_url": "https://github.com/" + owner + "/" + repo + "/releases/tag/" + body["tag_name"].(string),
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Setenv("GITHUB_API_URL", server.URL+"/")
	return api
}

func TestLibrary_Run_WithGitHubRelease(t *testing.T) {
	requireGit(t)
	api := newReleaseAPI(t, "acme", "widget")

	repo, _ := newReleaseRepo(t, "4.0.0", nil)
	repo.WriteConfig("test: \"\"\nbuild: \"\"\npublish: \"\"\ngithub-release:\n  enabled: true\n  owner: acme\n  repo: widget\n  prerelease: true\n")
	repo.CommitFiles("add release config", "releaseable.yml")

	var out bytes.Buffer
	err := releaseable.Run(t.Context(), releaseable.Options{
		Path:   repo.Path(),
		Token:  "ghp_test_token",
		Stdout: &out,
		Stderr: &out,
		Env:    gitIdentity,
	})
	require.NoError(t, err, out.String())

	require.True(t, repo.HasTag("v4.0.0"))
	require.Equal(t, "master", repo.HeadBranch())

	require.Len(t, api.requests, 1)
	require.Equal(t, "v4.0.0", api.requests[0]["tag_name"])
	require.Equal(t, true, api.requests[0]["prerelease"])
	require.Equal(t, true, api.requests[0]["generate_release_notes"])
	require.Equal(t, "Bearer ghp_test_token", api.auth[0])
	require.Contains(t, out.String(), "creating GitHub release v4.0.0 in acme/widget... OK")
}

func TestLibrary_Run_DryRunSkipsGitHub(t *testing.T) {
	requireGit(t)
	api := newReleaseAPI(t, "acme", "widget")

	repo, _ := newReleaseRepo(t, "4.0.0", nil)
	t.Setenv("GITHUB_TOKEN", "")

	var out bytes.Buffer
	err := releaseable.Run(t.Context(), releaseable.Options{
		Path: repo.Path(),
		Overrides: &releaseable.Config{
			DryRun: releaseable.Bool(true),
			GitHubRelease: releaseable.GitHubReleaseConfig{
				Enabled: releaseable.Bool(true),
				Owner:   releaseable.String("acme"),
				Repo:    releaseable.String("widget"),
			},
		},
		Stdout: &out,
	})
	require.NoError(t, err)

	require.Empty(t, api.requests)
	require.False(t, repo.HasTag("v4.0.0"))
	require.Contains(t, out.String(), "creating GitHub release v4.0.0 in acme/widget... OK")
}

func TestLibrary_Run_CommitMessageCallbacks(t *testing.T) {
	requireGit(t)
	repo, _ := newReleaseRepo(t, "1.5.0", map[string]string{
		"component.json": `{"version": "1.4.0"}`,
	})

	var out bytes.Buffer
	err := releaseable.Run(t.Context(), releaseable.Options{
		Path: repo.Path(),
		Overrides: &releaseable.Config{
			Test:    releaseable.String(""),
			Build:   releaseable.String(""),
			Publish: releaseable.String(""),
		},
		BumpCommitMessage:  func(v string) string { return "chore: bump to " + v },
		BuildCommitMessage: func(v string) string { return "chore: release " + v },
		Stdout:             &out,
		Env:                gitIdentity,
	})
	require.NoError(t, err, out.String())

	msgs := repo.CommitMessages("v1.5.0")
	require.Equal(t, "chore: release v1.5.0\n", msgs[0])
	require.Equal(t, "chore: bump to v1.5.0\n", msgs[1])
}
