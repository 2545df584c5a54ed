package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/quanta/catalog"
)

func writerGraph(t *testing.T, c *Config) *Graph {
	t.Helper()
	cat := catalog.New("1").AddKinds(
		catalog.Kind("distance").Category("base").Canonical("meters", "m").Spec(),
		catalog.Kind("velocity").Category("mechanical").Canonical("meters per second", "mps").Spec(),
	)
	g, err := NewGraph(c, cat)
	require.NoError(t, err)
	return g
}

func TestTemplateWriterDoc(t *testing.T) {
	dir := t.TempDir()
	g := writerGraph(t, &Config{Package: "github.com/acme/units"})
	w := NewTemplateWriter(g, dir).WithWorkers(2)
	require.NoError(t, w.GenerateAll(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "doc.go"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, DefaultHeader)
	assert.Contains(t, content, "package units")
	assert.Contains(t, content, "Base:")
	assert.Contains(t, content, "Mechanical:")
	assert.Contains(t, content, "Distance, stored in meters (m)")

	m := w.Metrics()
	assert.Equal(t, 1, m.FilesGenerated)
	assert.Greater(t, m.TotalBytes, int64(0))
}

func TestTemplateWriterHeaderOverride(t *testing.T) {
	dir := t.TempDir()
	g := writerGraph(t, &Config{
		Package: "units",
		Header:  "Code generated by make units. DO NOT EDIT.",
	})
	require.NoError(t, NewTemplateWriter(g, dir).GenerateAll(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "doc.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "// Code generated by make units. DO NOT EDIT.")
}

func TestTemplateWriterCustomTemplates(t *testing.T) {
	dir := t.TempDir()
	extras := MustParse(NewTemplate("extras").Parse(
		"package {{ $.PackageName }}\n\n// KindCount is the number of generated quantity kinds.\nconst KindCount = {{ len $.Kinds }}\n"))
	g := writerGraph(t, &Config{Package: "units", Templates: []*Template{extras}})
	w := NewTemplateWriter(g, dir)
	require.NoError(t, w.GenerateAll(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "extras.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "const KindCount = 2")

	m := w.Metrics()
	assert.Equal(t, 2, m.FilesGenerated)
}

func TestTemplateWriterFormatFailure(t *testing.T) {
	dir := t.TempDir()
	broken := MustParse(NewTemplate("broken").Parse("this is not valid go\n"))
	g := writerGraph(t, &Config{Package: "units", Templates: []*Template{broken}})
	err := NewTemplateWriter(g, dir).GenerateAll(context.Background())

	require.Error(t, err)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "broken.go", genErr.File)

	// The raw output is kept next to the target for debugging.
	debug, readErr := os.ReadFile(filepath.Join(dir, "broken.go.error"))
	require.NoError(t, readErr)
	assert.Equal(t, "this is not valid go\n", string(debug))
}

func TestGoFileName(t *testing.T) {
	assert.Equal(t, "extras.go", goFileName("extras"))
	assert.Equal(t, "extras.go", goFileName("extras.go"))
}

func TestGenerateSupport(t *testing.T) {
	t.Run("renders into the configured target", func(t *testing.T) {
		dir := t.TempDir()
		g := writerGraph(t, &Config{Package: "units", Target: dir})
		require.NoError(t, GenerateSupport(g))

		_, err := os.Stat(filepath.Join(dir, "doc.go"))
		assert.NoError(t, err)
	})

	t.Run("missing target", func(t *testing.T) {
		g := writerGraph(t, &Config{Package: "units"})
		err := GenerateSupport(g)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "missing target directory")
	})
}
