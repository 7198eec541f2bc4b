// Package version resolves the release version label from the package
// manifest.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/fsys"
)

// ErrNoManifestVersion is returned when the package manifest has no usable
// version field.
var ErrNoManifestVersion = errors.New("package manifest has no version")

// Resolve returns raw prefixed with "v" when raw is a valid semantic version,
// and raw unchanged otherwise.
func Resolve(raw string) string {
	if IsValid(raw) {
		return "v" + raw
	}
	return raw
}

// IsValid reports whether s is a strict semantic version (no "v" prefix,
// all three components present).
func IsValid(s string) bool {
	_, err := semver.StrictNewVersion(s)
	return err == nil
}

// FromManifest reads the top-level "version" field of a JSON package
// manifest.
func FromManifest(fs fsys.FS, path string) (string, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return "", err
	}

	var manifest struct {
		Version any `json:"version"`
	}
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	switch v := manifest.Version.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", fmt.Errorf("%s: %w", path, ErrNoManifestVersion)
		}
		return v, nil
	case nil:
		return "", fmt.Errorf("%s: %w", path, ErrNoManifestVersion)
	default:
		return "", fmt.Errorf("%s: version must be a string, got %T", path, v)
	}
}

// Default resolves the default release version from the package manifest.
func Default(fs fsys.FS, path string) (string, error) {
	raw, err := FromManifest(fs, path)
	if err != nil {
		return "", err
	}
	return Resolve(raw), nil
}
