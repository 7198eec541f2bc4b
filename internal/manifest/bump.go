// Package manifest rewrites the version field of secondary package
// manifests (bower.json, component.json and similar) in place.
package manifest

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/MyCarrier-DevOps/go-releaseable/internal/fsys"
)

// ErrNoVersion is returned when a manifest has no version field to bump.
var ErrNoVersion = errors.New("no version to bump")

// versionRegex matches the first version field in any of the common quoting
// styles: "version": "1.2.3", 'version':'1.2.3', version: 1.2.3. The key must
// start a word, so fields such as nodeVersion are not matched, and the value
// must be non-empty.
var versionRegex = regexp.MustCompile(`(?i)(?:^|[^\w\-])['"]?version['"]?\s*:\s*['"]?(?P<value>[0-9A-Za-z.\-]+)`)

var valueGroup = versionRegex.SubexpIndex("value")

// Bump replaces the value of the first version field in content with
// version. Everything outside the value, including quoting and spacing, is
// preserved byte for byte.
func Bump(content, version string) (string, error) {
	loc := versionRegex.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", ErrNoVersion
	}
	valueStart, valueEnd := loc[2*valueGroup], loc[2*valueGroup+1]
	return content[:valueStart] + version + content[valueEnd:], nil
}

// CurrentVersion returns the value of the first version field in content.
func CurrentVersion(content string) (string, bool) {
	m := versionRegex.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[valueGroup], true
}

// BumpFile bumps the version in the named file and returns the version it
// replaced. When dryRun is set the file is read and checked but never
// written.
func BumpFile(fs fsys.FS, name, version string, dryRun bool) (string, error) {
	content, err := fs.ReadFile(name)
	if err != nil {
		return "", err
	}

	bumped, err := Bump(content, version)
	if err != nil {
		return "", fmt.Errorf("%w in %s", err, name)
	}
	previous, _ := CurrentVersion(content)

	if dryRun {
		return previous, nil
	}
	return previous, fs.WriteFile(name, bumped)
}

// Existing returns the names from candidates that exist in fs, in order.
func Existing(fs fsys.FS, candidates []string) []string {
	var found []string
	for _, name := range candidates {
		if fs.Exists(name) {
			found = append(found, name)
		}
	}
	return found
}
