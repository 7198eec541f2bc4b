package manifest

import (
	"errors"
	"testing"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/fsys"

	"github.com/stretchr/testify/require"
)

func TestBump_QuotingStyles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"double quoted json",
			`{"name": "demo", "version": "1.2.3"}`,
			`{"name": "demo", "version": "v2.0.0"}`,
		},
		{
			"single quoted no spaces",
			`{'version':'1.2.3'}`,
			`{'version':'v2.0.0'}`,
		},
		{
			"bare yaml style",
			"name: demo\nversion: 1.2.3\n",
			"name: demo\nversion: v2.0.0\n",
		},
		{
			"extra whitespace preserved",
			`{"version"  :   "1.2.3"}`,
			`{"version"  :   "v2.0.0"}`,
		},
		{
			"tab after colon",
			"version:\t1.2.3",
			"version:\tv2.0.0",
		},
		{
			"case insensitive key keeps its case",
			`{"Version": "0.9.0"}`,
			`{"Version": "v2.0.0"}`,
		},
		{
			"pre-release value",
			`{"version": "1.0.0-rc.1"}`,
			`{"version": "v2.0.0"}`,
		},
		{
			"only first field replaced",
			`{"version": "1.0.0", "dependencies": {"x": {"version": "3.0.0"}}}`,
			`{"version": "v2.0.0", "dependencies": {"x": {"version": "3.0.0"}}}`,
		},
		{
			"multiline json",
			"{\n  \"name\": \"demo\",\n  \"version\": \"0.9.0\",\n  \"main\": \"index.js\"\n}\n",
			"{\n  \"name\": \"demo\",\n  \"version\": \"v2.0.0\",\n  \"main\": \"index.js\"\n}\n",
		},
		{
			"line break after colon",
			"{\n  \"version\":\n    \"0.9.0\"\n}\n",
			"{\n  \"version\":\n    \"v2.0.0\"\n}\n",
		},
		{
			"field ending in version is not the version",
			`{"nodeVersion": "8", "version": "0.9.0"}`,
			`{"nodeVersion": "8", "version": "v2.0.0"}`,
		},
		{
			"hyphenated key is not the version",
			"engine-version: 8\nversion: 0.9.0\n",
			"engine-version: 8\nversion: v2.0.0\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bump(tt.content, "v2.0.0")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBump_NoVersion(t *testing.T) {
	for _, content := range []string{
		`{"name": "demo"}`,
		"",
		"release: 1.0.0",
		`{"version": ""}`,
		"{\n  \"version\":\n}\n",
		`{"version": {"major": 1}}`,
		`{"nodeVersion": "8"}`,
	} {
		_, err := Bump(content, "v1.0.0")
		require.ErrorIs(t, err, ErrNoVersion, "content %q", content)
	}
}

func TestCurrentVersion(t *testing.T) {
	v, ok := CurrentVersion(`{"version": "0.9.0"}`)
	require.True(t, ok)
	require.Equal(t, "0.9.0", v)

	_, ok = CurrentVersion(`{}`)
	require.False(t, ok)
}

func TestBumpFile(t *testing.T) {
	fs := fsys.Memory()
	require.NoError(t, fs.WriteFile("bower.json", `{"name": "demo", "version": "0.9.0"}`))

	previous, err := BumpFile(fs, "bower.json", "v1.0.0", false)
	require.NoError(t, err)
	require.Equal(t, "0.9.0", previous)

	content, err := fs.ReadFile("bower.json")
	require.NoError(t, err)
	require.Equal(t, `{"name": "demo", "version": "v1.0.0"}`, content)
}

func TestBumpFile_DryRunLeavesFile(t *testing.T) {
	fs := fsys.Memory()
	original := `{"version": "0.9.0"}`
	require.NoError(t, fs.WriteFile("bower.json", original))

	previous, err := BumpFile(fs, "bower.json", "v1.0.0", true)
	require.NoError(t, err)
	require.Equal(t, "0.9.0", previous)

	content, err := fs.ReadFile("bower.json")
	require.NoError(t, err)
	require.Equal(t, original, content)
}

func TestBumpFile_NoVersionLeavesFile(t *testing.T) {
	fs := fsys.Memory()
	original := `{"name": "demo"}`
	require.NoError(t, fs.WriteFile("component.json", original))

	_, err := BumpFile(fs, "component.json", "v1.0.0", false)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoVersion))
	require.Equal(t, "no version to bump in component.json", err.Error())

	content, err := fs.ReadFile("component.json")
	require.NoError(t, err)
	require.Equal(t, original, content)
}

func TestBumpFile_Missing(t *testing.T) {
	_, err := BumpFile(fsys.Memory(), "bower.json", "v1.0.0", false)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNoVersion))
}

func TestExisting(t *testing.T) {
	fs := fsys.Memory()
	require.NoError(t, fs.WriteFile("component.json", "{}"))
	require.NoError(t, fs.WriteFile("bower.json", "{}"))

	require.Equal(t, []string{"bower.json", "component.json"}, Existing(fs, []string{"bower.json", "component.json", "jspm.json"}))
	require.Empty(t, Existing(fs, []string{"missing.json"}))
}
