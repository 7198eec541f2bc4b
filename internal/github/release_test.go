package github

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateRelease(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/widget/releases", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, map[string]any{
			"id":       1,
			"tag_name": "v1.0.0",
			"html_url": "https://github.com/acme/widget/releases/tag/v1.0.0",
		})
	})

	url, err := NewReleaser(newTestClient(t, mux)).CreateRelease(t.Context(), ReleaseRequest{
		Owner:         "acme",
		Repo:          "widget",
		Tag:           "v1.0.0",
		Prerelease:    true,
		GenerateNotes: true,
	})
	require.NoError(t, err)
	require.Equal(t, "https://github.com/acme/widget/releases/tag/v1.0.0", url)

	require.Equal(t, "v1.0.0", got["tag_name"])
	require.Equal(t, "v1.0.0", got["name"])
	require.Equal(t, false, got["draft"])
	require.Equal(t, true, got["prerelease"])
	require.Equal(t, true, got["generate_release_notes"])
}

func TestCreateRelease_AlreadyExists(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/widget/releases", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Validation Failed","errors":[{"resource":"Release","code":"already_exists","field":"tag_name"}]}`))
	})

	_, err := NewReleaser(newTestClient(t, mux)).CreateRelease(t.Context(), ReleaseRequest{
		Owner: "acme", Repo: "widget", Tag: "v1.0.0",
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrReleaseExists))
}

func TestCreateRelease_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/acme/widget/releases", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})

	_, err := NewReleaser(newTestClient(t, mux)).CreateRelease(t.Context(), ReleaseRequest{
		Owner: "acme", Repo: "widget", Tag: "v1.0.0",
	})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrReleaseExists))
	require.Contains(t, err.Error(), "creating release v1.0.0 in acme/widget")
}
