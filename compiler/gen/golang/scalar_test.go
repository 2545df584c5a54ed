package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/quanta/compiler/gen"
)

// =============================================================================
// genScalarOps Tests
// =============================================================================

func TestGenScalarOps_SameKind(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("distance")

	f := helper.NewFile("units")
	genScalarOps(helper, f, k)

	code := f.GoString()
	assert.Contains(t, code, "func (d Distance[T]) Add(o Distance[T]) Distance[T]")
	assert.Contains(t, code, "M: d.M + o.M")
	assert.Contains(t, code, "func (d Distance[T]) Sub(o Distance[T]) Distance[T]")
	assert.Contains(t, code, "M: d.M - o.M")
	assert.Contains(t, code, "func (d Distance[T]) Ratio(o Distance[T]) T")
	assert.Contains(t, code, "return d.M / o.M")
	assert.Contains(t, code, "func (d Distance[T]) Neg() Distance[T]")
	assert.Contains(t, code, "M: -d.M")
}

func TestGenScalarOps_AssignVariants(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("distance")

	f := helper.NewFile("units")
	genScalarOps(helper, f, k)

	code := f.GoString()
	// Assign variants mutate through a pointer receiver.
	assert.Contains(t, code, "func (d *Distance[T]) AddAssign(o Distance[T])")
	assert.Contains(t, code, "d.M += o.M")
	assert.Contains(t, code, "func (d *Distance[T]) SubAssign(o Distance[T])")
	assert.Contains(t, code, "d.M -= o.M")
	assert.Contains(t, code, "func (d *Distance[T]) MulAssign(v T)")
	assert.Contains(t, code, "d.M *= v")
	assert.Contains(t, code, "func (d *Distance[T]) DivAssign(v T)")
	assert.Contains(t, code, "d.M /= v")
}

func TestGenScalarOps_ScalarFactors(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("distance")

	f := helper.NewFile("units")
	genScalarOps(helper, f, k)

	code := f.GoString()
	assert.Contains(t, code, "func (d Distance[T]) Mul(v T) Distance[T]")
	assert.Contains(t, code, "M: d.M * v")
	assert.Contains(t, code, "func (d Distance[T]) Div(v T) Distance[T]")
	assert.Contains(t, code, "M: d.M / v")
}

func TestGenScalarOps_PrimitiveFactors(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("distance")

	f := helper.NewFile("units")
	genScalarOps(helper, f, k)

	code := f.GoString()
	assert.Contains(t, code, "func (d Distance[T]) MulF64(v float64) Distance[T]")
	assert.Contains(t, code, "func (d Distance[T]) MulF32(v float32) Distance[T]")
	assert.Contains(t, code, "func (d Distance[T]) MulInt(v int) Distance[T]")
	assert.Contains(t, code, "func (d Distance[T]) MulI64(v int64) Distance[T]")
	// Float storage converts the factor directly.
	assert.Contains(t, code, "M: d.M * T(v)")
	assert.NotContains(t, code, "FromFloat64")
}

func TestGenScalarOps_ReceiverOccupiesScalarName(t *testing.T) {
	helper := newTestHelper(motion())
	k := helper.Graph().Kind("velocity")

	f := helper.NewFile("units")
	genScalarOps(helper, f, k)

	code := f.GoString()
	// The velocity receiver is v, so the scalar parameter steps aside.
	assert.Contains(t, code, "func (v Velocity[T]) Mul(o T) Velocity[T]")
	assert.Contains(t, code, "Mps: v.Mps * o")
	assert.Contains(t, code, "func (v *Velocity[T]) DivAssign(o T)")
	assert.Contains(t, code, "v.Mps /= o")
	assert.Contains(t, code, "func (v Velocity[T]) MulF64(o float64) Velocity[T]")
	assert.Contains(t, code, "Mps: v.Mps * T(o)")
}

func TestGenScalarOps_PrimitiveFactorsNumExtended(t *testing.T) {
	helper := newTestHelper(motion(), gen.FeatureNumExtended)
	k := helper.Graph().Kind("distance")

	f := helper.NewFile("units")
	genScalarOps(helper, f, k)

	code := f.GoString()
	// Complex storage has no direct conversion from a run-time float64,
	// so the factor routes through the runtime bridge.
	assert.Contains(t, code, "M: d.M * quanta.FromFloat64[T](v)")
	assert.Contains(t, code, "M: d.M * quanta.FromFloat64[T](float64(v))")
	assert.NotContains(t, code, "T(v)")
}
