package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/quanta/catalog"
	"github.com/syssam/quanta/compiler/gen"
)

// =============================================================================
// genKind Tests
// =============================================================================

func TestGenKind_Struct(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("distance")

	file := genKind(helper, k)
	require.NotNil(t, file)

	code := file.GoString()
	assert.Contains(t, code, "Code generated by quanta. DO NOT EDIT.")
	assert.Contains(t, code, "package units")
	assert.Contains(t, code, "type Distance[T quanta.NumLike] struct")
	assert.Contains(t, code, "M is the quantity expressed in meters.")
	assert.Contains(t, code, `json:"m" msgpack:"m"`)
}

func TestGenKind_NumExtendedConstraint(t *testing.T) {
	helper := newTestHelper(motion(), gen.FeatureNumExtended)
	k := helper.Graph().Kind("distance")

	code := genKind(helper, k).GoString()
	assert.Contains(t, code, "type Distance[T quanta.NumExtended] struct")
	assert.Contains(t, code, "func DistanceFromKm[T quanta.NumExtended](v T) Distance[T]")
}

func TestGenKind_LinearConversions(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("distance")

	code := genKind(helper, k).GoString()

	assert.Contains(t, code, "func DistanceFromM[T quanta.NumLike](v T) Distance[T]")
	assert.Contains(t, code, "func DistanceFromKm[T quanta.NumLike](v T) Distance[T]")
	assert.Contains(t, code, "M: v * T(1000)")

	assert.Contains(t, code, "func (d Distance[T]) ToM() T")
	assert.Contains(t, code, "return d.M\n")
	assert.Contains(t, code, "func (d Distance[T]) ToKm() T")
	assert.Contains(t, code, "return d.M / T(1000)")
}

func TestGenKind_CanonicalIdentityElided(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("time")

	code := genKind(helper, k).GoString()

	assert.Contains(t, code, "S: v")
	assert.NotContains(t, code, "S: v *")
	assert.NotContains(t, code, "S: v +")
}

func TestGenKind_AffineConversions(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("temperature")

	code := genKind(helper, k).GoString()

	// canonical = v*1 + 273.15, the identity scale is elided.
	assert.Contains(t, code, "K: v + T(273.15)")
	assert.Contains(t, code, "return t.K - T(273.15)")
}

func TestGenKind_AffineScaledConversions(t *testing.T) {
	c := catalog.New("1").AddKinds(
		catalog.Kind("temperature").
			Canonical("degrees kelvin", "K").
			UnitAffine("degrees fahrenheit", "F", 0.555555555555556, 255.3722222222222).
			Spec(),
	)
	helper := newTestHelper(c)
	k := helper.Graph().Kind("temperature")

	code := genKind(helper, k).GoString()

	assert.Contains(t, code, "K: v*T(0.555555555555556) + T(255.3722222222222)")
	assert.Contains(t, code, "return (t.K - T(255.3722222222222)) / T(0.555555555555556)")
}

func TestGenKind_LargeScaleKeepsENotation(t *testing.T) {
	c := catalog.New("1").AddKinds(
		catalog.Kind("mass").
			Canonical("kilograms", "kg").
			Unit("earth masses", "earth_mass", 5.9722e24).
			Spec(),
	)
	helper := newTestHelper(c)
	k := helper.Graph().Kind("mass")

	code := genKind(helper, k).GoString()

	assert.Contains(t, code, "func MassFromEarthMass[T quanta.NumLike](v T) Mass[T]")
	assert.Contains(t, code, "Kg: v * T(5.9722e+24)")
	assert.Contains(t, code, "return m.Kg / T(5.9722e+24)")
}

func TestGenKind_FieldDocOverride(t *testing.T) {
	c := catalog.New("1").AddKinds(
		catalog.Kind("time").
			Field("s", "S holds the elapsed seconds.").
			Canonical("seconds", "s").
			Spec(),
	)
	helper := newTestHelper(c)
	k := helper.Graph().Kind("time")

	code := genKind(helper, k).GoString()
	assert.Contains(t, code, "S holds the elapsed seconds.")
	assert.NotContains(t, code, "S is the quantity expressed in")
}

// =============================================================================
// genUnitInfo Tests
// =============================================================================

func TestGenUnitInfo(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("distance")

	f := helper.NewFile("units")
	genUnitInfo(helper, f, k)

	code := f.GoString()
	assert.Contains(t, code, "func (Distance[T]) UnitName() string")
	assert.Contains(t, code, `return "meters"`)
	assert.Contains(t, code, "func (Distance[T]) UnitSymbol() string")
	assert.Contains(t, code, `return "m"`)
	assert.Contains(t, code, "func (d Distance[T]) String() string")
	assert.Contains(t, code, `fmt.Sprintf("%v m", d.M)`)
}

func TestGenUnitInfo_DisplaySymbol(t *testing.T) {
	c := catalog.New("1").AddKinds(
		catalog.Kind("area").
			Canonical("square meters", "m2").
			DisplaySymbol("m²").
			Spec(),
	)
	helper := newTestHelper(c)
	k := helper.Graph().Kind("area")

	f := helper.NewFile("units")
	genUnitInfo(helper, f, k)

	code := f.GoString()
	// Both UnitSymbol and String report the display symbol.
	assert.Contains(t, code, `return "m²"`)
	assert.Contains(t, code, `fmt.Sprintf("%v m²", a.M2)`)
}
