package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/quanta"
	"github.com/syssam/quanta/compiler/gen"
)

// =============================================================================
// genSnapshot Tests
// =============================================================================

func TestGenSnapshot(t *testing.T) {
	helper := newTestHelper(motion(), gen.FeatureSnapshot)

	file := genSnapshot(helper)
	require.NotNil(t, file)

	code := file.GoString()
	assert.Contains(t, code, "package internal")
	assert.Contains(t, code, "const CatalogJSON = ")
	assert.Contains(t, code, `const GeneratorVersion = "`+quanta.Version+`"`)
	assert.Contains(t, code, "const RunID = ")
	assert.Contains(t, code, "func Catalog() (*catalog.Catalog, error)")
	assert.Contains(t, code, "catalog.UnmarshalCatalog([]byte(CatalogJSON))")
	// The embedded document carries the catalog content.
	assert.Contains(t, code, `\"kinds\":`)
	assert.Contains(t, code, "distance")
	assert.Contains(t, code, "frequency")
}

func TestGenSnapshot_RunIDIsContentDerived(t *testing.T) {
	a := genSnapshot(newTestHelper(motion(), gen.FeatureSnapshot)).GoString()
	b := genSnapshot(newTestHelper(motion(), gen.FeatureSnapshot)).GoString()
	// Same catalog, same snapshot, same run ID.
	assert.Equal(t, a, b)

	changed := motion()
	changed.Version = "2"
	c := genSnapshot(newTestHelper(changed, gen.FeatureSnapshot)).GoString()
	assert.NotEqual(t, a, c)
}
