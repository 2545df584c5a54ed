// Package bump rewrites the version line of a build manifest.
//
// Release tooling stores the module version as a single
// `version = "major.minor.patch"` assignment. Patch locates the first such
// line, increments the trailing component and rewrites the whole file in
// one write, so a failure at any earlier step leaves the manifest
// byte-for-byte untouched.
package bump

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrNoVersion reports a manifest without a version line.
var ErrNoVersion = errors.New("manifest has no version line")

// versionLine matches a manifest version assignment and captures the quoted
// version string. Leading and trailing blanks are tolerated.
var versionLine = regexp.MustCompile(`^\s*version\s*=\s*"(.*)"\s*$`)

// Patch increments the patch component of the first version line in the
// manifest at path and returns the new version. The file is read fully and
// written once. A successful rewrite normalizes line endings to \n and the
// matched line to its canonical form.
func Patch(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("bump: read %s: %w", path, err)
	}
	text, next, err := patch(string(data))
	if err != nil {
		return "", fmt.Errorf("bump: %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("bump: write %s: %w", path, err)
	}
	return next, nil
}

// patch returns the manifest text with the first version line bumped,
// along with the new version.
func patch(text string) (string, string, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		m := versionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := semver.StrictNewVersion(m[1])
		if err != nil {
			return "", "", fmt.Errorf("parse version %q: %w", m[1], err)
		}
		next := v.IncPatch()
		lines[i] = fmt.Sprintf("version = %q", next.String())
		return strings.Join(lines, "\n"), next.String(), nil
	}
	return "", "", ErrNoVersion
}
