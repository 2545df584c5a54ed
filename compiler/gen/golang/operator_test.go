package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/quanta/catalog"
	"github.com/syssam/quanta/compiler/gen"
)

// =============================================================================
// genOperators Tests
// =============================================================================

func TestGenOperators_Quotient(t *testing.T) {
	helper := newTestHelper(motion())
	g := helper.Graph()

	f := helper.NewFile("units")
	genOperators(helper, f, g.Kind("distance"))

	code := f.GoString()
	// distance / time = velocity derives both divisions on distance.
	assert.Contains(t, code, "func (d Distance[T]) DivTime(t Time[T]) Velocity[T]")
	assert.Contains(t, code, "Mps: d.M / t.S")
	assert.Contains(t, code, "func (d Distance[T]) DivVelocity(v Velocity[T]) Time[T]")
	assert.Contains(t, code, "S: d.M / v.Mps")
}

func TestGenOperators_Product(t *testing.T) {
	helper := newTestHelper(motion())
	g := helper.Graph()

	f := helper.NewFile("units")
	genOperators(helper, f, g.Kind("velocity"))

	code := f.GoString()
	// The same fact gives velocity the multiplication back to distance.
	assert.Contains(t, code, "func (v Velocity[T]) MulTime(t Time[T]) Distance[T]")
	assert.Contains(t, code, "M: v.Mps * t.S")
}

func TestGenOperators_SelfProduct(t *testing.T) {
	c := catalog.New("1").
		AddKinds(
			catalog.Kind("distance").Canonical("meters", "m").Spec(),
			catalog.Kind("area").Canonical("square meters", "m2").Spec(),
		).
		AddRelations(catalog.Mul("distance", "distance", "area"))
	helper := newTestHelper(c)

	f := helper.NewFile("units")
	genOperators(helper, f, helper.Graph().Kind("distance"))

	code := f.GoString()
	// The operand parameter steps aside from the receiver letter.
	assert.Contains(t, code, "func (d Distance[T]) MulDistance(o Distance[T]) Area[T]")
	assert.Contains(t, code, "M2: d.M * o.M")
}

func TestGenOperators_None(t *testing.T) {
	helper := newTestHelper(motion())

	f := helper.NewFile("units")
	genOperators(helper, f, helper.Graph().Kind("temperature"))

	code := f.GoString()
	assert.NotContains(t, code, "func (t Temperature[T]) Mul")
	assert.NotContains(t, code, "func (t Temperature[T]) Div")
}

// =============================================================================
// genReciprocal Tests
// =============================================================================

func TestGenReciprocal(t *testing.T) {
	helper := newTestHelper(motion())
	g := helper.Graph()

	f := helper.NewFile("units")
	genReciprocal(helper, f, g.Kind("time"))

	code := f.GoString()
	assert.Contains(t, code, "func (t Time[T]) Inv() Frequency[T]")
	assert.Contains(t, code, "Hz: T(1) / t.S")
	// The constructors dividing a scalar by the partner land in this
	// kind's file.
	assert.Contains(t, code, "func PerFrequency[T quanta.NumLike](v T, f Frequency[T]) Time[T]")
	assert.Contains(t, code, "S: v / f.Hz")
}

func TestGenReciprocal_PartnerSide(t *testing.T) {
	helper := newTestHelper(motion())
	g := helper.Graph()

	f := helper.NewFile("units")
	genReciprocal(helper, f, g.Kind("frequency"))

	code := f.GoString()
	assert.Contains(t, code, "func (f Frequency[T]) Inv() Time[T]")
	assert.Contains(t, code, "S: T(1) / f.Hz")
	assert.Contains(t, code, "func PerTime[T quanta.NumLike](v T, t Time[T]) Frequency[T]")
	assert.Contains(t, code, "Hz: v / t.S")
}

func TestGenReciprocal_PrimitiveBridges(t *testing.T) {
	helper := newTestHelper(motion())

	f := helper.NewFile("units")
	genReciprocal(helper, f, helper.Graph().Kind("frequency"))

	code := f.GoString()
	assert.Contains(t, code, "func PerTimeF64[T quanta.NumLike](v float64, t Time[T]) Frequency[T]")
	assert.Contains(t, code, "func PerTimeF32[T quanta.NumLike](v float32, t Time[T]) Frequency[T]")
	assert.Contains(t, code, "func PerTimeInt[T quanta.NumLike](v int, t Time[T]) Frequency[T]")
	assert.Contains(t, code, "func PerTimeI64[T quanta.NumLike](v int64, t Time[T]) Frequency[T]")
	assert.Contains(t, code, "Hz: T(v) / t.S")
}

func TestGenReciprocal_PrimitiveBridgesNumExtended(t *testing.T) {
	helper := newTestHelper(motion(), gen.FeatureNumExtended)

	f := helper.NewFile("units")
	genReciprocal(helper, f, helper.Graph().Kind("frequency"))

	code := f.GoString()
	assert.Contains(t, code, "func PerTimeF64[T quanta.NumExtended](v float64, t Time[T]) Frequency[T]")
	assert.Contains(t, code, "Hz: quanta.FromFloat64[T](v) / t.S")
	assert.Contains(t, code, "Hz: quanta.FromFloat64[T](float64(v)) / t.S")
}

func TestGenReciprocal_NoPartner(t *testing.T) {
	helper := newTestHelper(motion())

	f := helper.NewFile("units")
	genReciprocal(helper, f, helper.Graph().Kind("distance"))

	assert.NotContains(t, f.GoString(), "Inv")
}
