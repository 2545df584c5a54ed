// Package quanta is the runtime support package for generated quantity
// types. Generated code depends only on the numeric constraints and the
// float bridging helper defined here; everything else lives in the
// generated output package.
package quanta

// Version is the quanta module version. The release tooling bumps the
// trailing component (see internal/bump).
const Version = "0.4.2"

// NumLike is the numeric constraint for generated quantity types. Members
// carry the full capability set generated code relies on: addition,
// subtraction, multiplication, division, negation, copy semantics and %v
// formatting. Conversion literals convert directly with T(v).
type NumLike interface {
	~float32 | ~float64
}

// NumExtended is the widened constraint emitted under the numext feature.
// The set is exact (no ~ approximation) so FromFloat64 can enumerate every
// member: Go has no direct conversion from float64 to a complex type
// parameter, so conversion literals route through FromFloat64 instead.
type NumExtended interface {
	float32 | float64 | complex64 | complex128
}

// FromFloat64 converts a conversion literal into T. It is referenced by
// generated code when the numext feature widens the constraint to complex
// members.
func FromFloat64[T NumExtended](v float64) T {
	var t T
	switch p := any(&t).(type) {
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	case *complex64:
		*p = complex64(complex(v, 0))
	case *complex128:
		*p = complex(v, 0)
	}
	return t
}
