package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnes(t *testing.T) {
	assert.Equal(t, uint64(0), ones(0))
	assert.Equal(t, uint64(0x1), ones(1))
	assert.Equal(t, uint64(0xff), ones(8))
	assert.Equal(t, uint64(0xffffffffffffffff), ones(64))
}

func TestRor(t *testing.T) {
	assert.Equal(t, uint64(0x1), ror(0x2, 1, 8))
	assert.Equal(t, uint64(0x80), ror(0x1, 1, 8))
	assert.Equal(t, uint64(0xf0f0f0f0), ror(0xf0f0f0f0, 0, 32))
	assert.Equal(t, uint64(0xffffffffffffffff), ror(0xffffffffffffffff, 13, 64))
}

func TestReplicate(t *testing.T) {
	assert.Equal(t, uint64(0xaaaaaaaaaaaaaaaa), replicate(0b10, 2, 64))
	assert.Equal(t, uint64(0xffffffff), replicate(0xf, 4, 32))
	assert.Equal(t, uint64(0x1), replicate(0x1, 1, 1))
}

func TestDecodeBitmaskKnownAlternating(t *testing.T) {
	value, ok := decodeBitmask(1, 0, 60, 1, true)
	require.True(t, ok)
	assert.Equal(t, uint64(0xaaaaaaaaaaaaaaaa), value)
}

func TestDecodeBitmaskRejectsAllOnesElement(t *testing.T) {
	// n=0 with imms all-ones leaves (n<<6)|(^imms&0x3f) at zero, so no
	// element size can be derived and the encoding is rejected as reserved.
	_, ok := decodeBitmask(1, 0, 0b111111, 0, true)
	assert.False(t, ok, "imms all-ones at the top level must be rejected for a logical op")
}

func TestDecodeBitmask32BitMinimal(t *testing.T) {
	value, ok := decodeBitmask(0, 0, 0, 0, true)
	require.True(t, ok)
	assert.Equal(t, uint64(1), value)
}

func TestMoveWidePreferredSmallImmediate(t *testing.T) {
	// s < 16, r == 0: single MOVZ of a small constant in the low halfword.
	assert.True(t, moveWidePreferred(1, 1, 0, 0))
}

func TestMoveWidePreferredAlternatingNotPreferred(t *testing.T) {
	assert.False(t, moveWidePreferred(1, 0, 60, 1))
}

func TestMoveWidePreferred32Bit(t *testing.T) {
	// sf=0 requires n==0; a nonzero n must be rejected outright.
	assert.False(t, moveWidePreferred(0, 1, 0, 0))
}

func TestMod16(t *testing.T) {
	assert.Equal(t, int32(0), mod16(0))
	assert.Equal(t, int32(0), mod16(16))
	assert.Equal(t, int32(15), mod16(-1))
	assert.Equal(t, int32(1), mod16(-15))
}
