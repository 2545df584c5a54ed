package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/quanta/compiler/gen"
)

// =============================================================================
// genCodec Tests
// =============================================================================

func TestGenCodec(t *testing.T) {
	helper := newTestHelper(motion(), gen.FeatureSerde)

	file := genCodec(helper)
	require.NotNil(t, file)

	code := file.GoString()
	// On the wire a quantity is its canonical-unit value.
	assert.Contains(t, code, "func (d Distance[T]) MarshalJSON() ([]byte, error)")
	assert.Contains(t, code, "return json.Marshal(d.M)")
	assert.Contains(t, code, "func (d *Distance[T]) UnmarshalJSON(data []byte) error")
	assert.Contains(t, code, "return json.Unmarshal(data, &d.M)")
	assert.Contains(t, code, "func (d Distance[T]) EncodeMsgpack(enc *msgpack.Encoder) error")
	assert.Contains(t, code, "return enc.Encode(d.M)")
	assert.Contains(t, code, "func (d *Distance[T]) DecodeMsgpack(dec *msgpack.Decoder) error")
	assert.Contains(t, code, "return dec.Decode(&d.M)")
	assert.Contains(t, code, "github.com/vmihailenco/msgpack/v5")
}

func TestGenCodec_CoversEveryKind(t *testing.T) {
	helper := newTestHelper(motion(), gen.FeatureSerde)

	code := genCodec(helper).GoString()
	for _, kind := range []string{"Distance", "Time", "Temperature", "Velocity", "Frequency"} {
		assert.Contains(t, code, kind+"[T]) MarshalJSON()")
		assert.Contains(t, code, kind+"[T]) DecodeMsgpack(")
	}
}
