package quanta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFloat64(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		assert.Equal(t, float32(2.5), FromFloat64[float32](2.5))
	})

	t.Run("float64", func(t *testing.T) {
		assert.Equal(t, 2.5, FromFloat64[float64](2.5))
	})

	t.Run("complex64", func(t *testing.T) {
		got := FromFloat64[complex64](2.5)
		assert.Equal(t, float32(2.5), real(got))
		assert.Zero(t, imag(got))
	})

	t.Run("complex128", func(t *testing.T) {
		got := FromFloat64[complex128](-3.25)
		assert.Equal(t, -3.25, real(got))
		assert.Zero(t, imag(got))
	})
}
