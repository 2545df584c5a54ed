package bump_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/quanta/internal/bump"
)

// writeManifest drops content into a temp file and returns its path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPatch(t *testing.T) {
	path := writeManifest(t, `[package]
name = "quanta-units"
version = "0.4.2"
edition = "2024"
`)
	next, err := bump.Patch(path)
	require.NoError(t, err)
	assert.Equal(t, "0.4.3", next)

	got := readBack(t, path)
	assert.Contains(t, got, `version = "0.4.3"`)
	assert.NotContains(t, got, "0.4.2")
	assert.Contains(t, got, `name = "quanta-units"`)
	assert.Contains(t, got, `edition = "2024"`)
	assert.True(t, got[len(got)-1] == '\n', "trailing newline preserved")
}

func TestPatch_FirstMatchOnly(t *testing.T) {
	path := writeManifest(t, `version = "1.2.3"

[dependencies.codec]
version = "5.4.1"
`)
	next, err := bump.Patch(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.4", next)

	got := readBack(t, path)
	assert.Contains(t, got, `version = "1.2.4"`)
	assert.Contains(t, got, `version = "5.4.1"`)
}

func TestPatch_CanonicalizesMatchedLine(t *testing.T) {
	path := writeManifest(t, "  version\t=  \"2.0.9\"  \nrest = true\n")
	next, err := bump.Patch(path)
	require.NoError(t, err)
	assert.Equal(t, "2.0.10", next)

	got := readBack(t, path)
	assert.Contains(t, got, "version = \"2.0.10\"\n")
	assert.NotContains(t, got, "  version")
	assert.Contains(t, got, "rest = true")
}

func TestPatch_NormalizesLineEndings(t *testing.T) {
	path := writeManifest(t, "name = \"x\"\r\nversion = \"0.0.1\"\r\n")
	next, err := bump.Patch(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.2", next)

	got := readBack(t, path)
	assert.NotContains(t, got, "\r")
	assert.Contains(t, got, `version = "0.0.2"`)
}

func TestPatch_SkipsNonMatchingLines(t *testing.T) {
	path := writeManifest(t, `# version = "9.9.9" is set below
api_version = "7.7.7"
version = 1.0.0
version = "3.1.4"
`)
	next, err := bump.Patch(path)
	require.NoError(t, err)
	assert.Equal(t, "3.1.5", next)

	got := readBack(t, path)
	assert.Contains(t, got, `# version = "9.9.9" is set below`)
	assert.Contains(t, got, `api_version = "7.7.7"`)
	assert.Contains(t, got, "version = 1.0.0")
	assert.Contains(t, got, `version = "3.1.5"`)
}

func TestPatch_NoVersionLine(t *testing.T) {
	content := "name = \"quanta-units\"\nedition = \"2024\"\n"
	path := writeManifest(t, content)

	_, err := bump.Patch(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, bump.ErrNoVersion)
	assert.Equal(t, content, readBack(t, path), "file untouched on failure")
}

func TestPatch_MalformedVersion(t *testing.T) {
	for _, bad := range []string{"abc", "1.2", "1.2.x", ""} {
		content := "version = \"" + bad + "\"\n"
		path := writeManifest(t, content)

		_, err := bump.Patch(path)
		require.Error(t, err, "version %q", bad)
		assert.Contains(t, err.Error(), "parse version")
		assert.Equal(t, content, readBack(t, path), "file untouched on failure")
	}
}

func TestPatch_MissingFile(t *testing.T) {
	_, err := bump.Patch(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
