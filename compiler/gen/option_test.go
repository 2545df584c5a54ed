package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("Custom header")(c)

		require.NoError(t, err)
		assert.Equal(t, "Custom header", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithPackage(t *testing.T) {
	t.Run("sets package", func(t *testing.T) {
		c := &Config{}
		err := WithPackage("github.com/org/project/units")(c)

		require.NoError(t, err)
		assert.Equal(t, "github.com/org/project/units", c.Package)
	})

	t.Run("empty package returns error", func(t *testing.T) {
		c := &Config{}
		err := WithPackage("")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithTarget(t *testing.T) {
	t.Run("sets target directory", func(t *testing.T) {
		c := &Config{}
		err := WithTarget("./units")(c)

		require.NoError(t, err)
		assert.Equal(t, "./units", c.Target)
	})

	t.Run("empty target returns error", func(t *testing.T) {
		c := &Config{}
		err := WithTarget("")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithFeatures(t *testing.T) {
	t.Run("adds features", func(t *testing.T) {
		c := &Config{}
		err := WithFeatures(FeatureSerde, FeatureInterop)(c)

		require.NoError(t, err)
		require.Len(t, c.Features, 2)
		assert.Equal(t, "serde", c.Features[0].Name)
		assert.Equal(t, "interop", c.Features[1].Name)
	})

	t.Run("appends to existing features", func(t *testing.T) {
		c := &Config{Features: []Feature{FeatureSerde}}
		err := WithFeatures(FeatureSnapshot)(c)

		require.NoError(t, err)
		assert.Len(t, c.Features, 2)
	})
}

func TestWithFeatureNames(t *testing.T) {
	t.Run("resolves known names", func(t *testing.T) {
		c := &Config{}
		err := WithFeatureNames("serde", "numext")(c)

		require.NoError(t, err)
		require.Len(t, c.Features, 2)
		assert.Equal(t, FeatureSerde.Name, c.Features[0].Name)
		assert.Equal(t, FeatureNumExtended.Name, c.Features[1].Name)
	})

	t.Run("unknown name returns error", func(t *testing.T) {
		c := &Config{}
		err := WithFeatureNames("serde", "telepathy")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "telepathy")
	})
}

func TestWithWorkers(t *testing.T) {
	t.Run("sets worker count", func(t *testing.T) {
		c := &Config{}
		err := WithWorkers(4)(c)

		require.NoError(t, err)
		assert.Equal(t, 4, c.Workers)
	})

	t.Run("zero is allowed", func(t *testing.T) {
		c := &Config{}
		err := WithWorkers(0)(c)

		require.NoError(t, err)
		assert.Equal(t, 0, c.Workers)
	})

	t.Run("negative returns error", func(t *testing.T) {
		c := &Config{}
		err := WithWorkers(-1)(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithHooks(t *testing.T) {
	t.Run("adds hooks", func(t *testing.T) {
		c := &Config{}
		hook := func(next Generator) Generator { return next }
		err := WithHooks(hook)(c)

		require.NoError(t, err)
		assert.Len(t, c.Hooks, 1)
	})
}

func TestWithTemplates(t *testing.T) {
	t.Run("adds templates", func(t *testing.T) {
		c := &Config{}
		tmpl := MustParse(NewTemplate("extra").Parse(`{{ define "extra" }}package x{{ end }}`))
		err := WithTemplates(tmpl)(c)

		require.NoError(t, err)
		assert.Len(t, c.Templates, 1)
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithTarget("./units"),
			WithPackage("github.com/org/project/units"),
			WithWorkers(2),
		)

		require.NoError(t, err)
		assert.Equal(t, "./units", c.Target)
		assert.Equal(t, "github.com/org/project/units", c.Package)
		assert.Equal(t, 2, c.Workers)
	})

	t.Run("stops at first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithPackage(""),
			WithWorkers(7),
		)

		require.Error(t, err)
		assert.Zero(t, c.Workers)
	})
}

func TestApplyAll(t *testing.T) {
	t.Run("collects all errors", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage(""),
			WithTarget(""),
			WithWorkers(3),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "Target")
		assert.Equal(t, 3, c.Workers)
	})

	t.Run("nil when all options succeed", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(WithTarget("./units"))

		require.NoError(t, err)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("builds config", func(t *testing.T) {
		c, err := NewConfig(
			WithTarget("./units"),
			WithFeatures(FeatureSerde),
		)

		require.NoError(t, err)
		assert.Equal(t, "./units", c.Target)
		assert.Len(t, c.Features, 1)
	})

	t.Run("propagates option errors", func(t *testing.T) {
		c, err := NewConfig(WithPackage(""))

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestMustNewConfig(t *testing.T) {
	t.Run("returns config on success", func(t *testing.T) {
		c := MustNewConfig(WithTarget("./units"))
		assert.Equal(t, "./units", c.Target)
	})

	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewConfig(WithPackage(""))
		})
	})
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{"full path", Config{Package: "github.com/org/project/units"}, "units"},
		{"bare name", Config{Package: "units"}, "units"},
		{"falls back to target", Config{Target: "./out/units"}, "units"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.PackageName())
		})
	}
}
