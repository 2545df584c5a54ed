package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBumpCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"0.4.2\"\n"), 0o644))

	out := &bytes.Buffer{}
	cmd := newBumpCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--manifest", path})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "0.4.3\n", out.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version = \"0.4.3\"\n", string(data))
}

func TestBumpCmd_RequiresManifest(t *testing.T) {
	cmd := newBumpCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest")
}

func TestBumpCmd_LeavesManifestOnError(t *testing.T) {
	content := "name = \"quanta\"\n"
	path := filepath.Join(t.TempDir(), "manifest.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cmd := newBumpCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--manifest", path})
	require.Error(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
