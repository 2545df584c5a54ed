package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/quanta/compiler/gen"
)

const yamlCatalog = `
version: "1"
kinds:
  - name: distance
    category: base
    fields:
      - name: m
    units:
      - name: meters
        symbol: m
        scale: 1
        canonical: true
      - name: kilometers
        symbol: km
        scale: 1000
`

func TestLoadCatalog_Builtin(t *testing.T) {
	cat, err := loadCatalog(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.NotEmpty(t, cat.Kinds)
	assert.NotNil(t, cat.Kind("distance"))
	assert.NotNil(t, cat.Kind("temperature"))
}

func TestLoadCatalog_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0o644))

	cat, err := loadCatalog(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cat.Kinds, 1)
	assert.Equal(t, "distance", cat.Kinds[0].Name)
	assert.Len(t, cat.Kinds[0].Units, 2)
}

func TestLoadCatalog_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range []string{
		`CREATE TABLE kinds (name TEXT, category TEXT, description TEXT, interop TEXT)`,
		`CREATE TABLE kind_fields (kind TEXT, name TEXT, doc TEXT)`,
		`CREATE TABLE kind_units (kind TEXT, name TEXT, symbol TEXT, display TEXT, scale REAL, "offset" REAL, canonical BOOLEAN)`,
		`CREATE TABLE relations (left_kind TEXT, op TEXT, right_kind TEXT, result TEXT)`,
		`INSERT INTO kinds VALUES ('distance', 'base', '', 'Length')`,
		`INSERT INTO kind_fields VALUES ('distance', 'm', '')`,
		`INSERT INTO kind_units VALUES ('distance', 'meters', 'm', '', 1, 0, 1)`,
		`INSERT INTO kind_units VALUES ('distance', 'kilometers', 'km', '', 1000, 0, 0)`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	require.NoError(t, db.Close())

	cat, err := loadCatalog(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cat.Kinds, 1)
	k := cat.Kinds[0]
	assert.Equal(t, "distance", k.Name)
	assert.Equal(t, "Length", k.Interop)
	require.Len(t, k.Units, 2)
	assert.Equal(t, float64(1000), k.Units[0].Scale)
	assert.True(t, k.Units[1].Canonical)
}

func TestLoadCatalog_UnknownExtension(t *testing.T) {
	_, err := loadCatalog(context.Background(), "units.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog format")
}

func TestGenerate_WritesPackage(t *testing.T) {
	cat, err := loadCatalog(context.Background(), "")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "units")
	require.NoError(t, generate(cat, out, "github.com/acme/si/units", []string{"serde"}, 2))

	for _, name := range []string{"doc.go", "distance.go", "temperature.go", "codec.go"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
}

func TestGenerate_UnknownFeature(t *testing.T) {
	cat, err := loadCatalog(context.Background(), "")
	require.NoError(t, err)

	err = generate(cat, filepath.Join(t.TempDir(), "units"), "", []string{"nope"}, 0)
	require.Error(t, err)
	assert.True(t, gen.IsConfigError(err))
}

func TestRunGenerate_WatchRequiresCatalog(t *testing.T) {
	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--watch", "--out", t.TempDir()})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires --catalog")
}

func TestAddGenerateFlags(t *testing.T) {
	cmd := newGenerateCmd()
	for name, def := range map[string]string{
		"catalog": "",
		"out":     "units",
		"pkg":     "",
		"workers": "0",
		"watch":   "false",
	} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, def, f.DefValue, name)
	}
	require.NotNil(t, cmd.Flags().Lookup("feature"))
}

func TestSetting_FlagBeatsConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd := newGenerateCmd()
	viper.Set("out", "from-config")
	assert.Equal(t, "from-config", setting(cmd, "out"))

	require.NoError(t, cmd.Flags().Set("out", "from-flag"))
	assert.Equal(t, "from-flag", setting(cmd, "out"))
}

func TestRootRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "validate", "features", "bump"} {
		assert.True(t, names[want], want)
	}
}
