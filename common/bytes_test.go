package common

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceToBytesFloat32(t *testing.T) {
	data := []float32{1, -2.5}
	b := SliceToBytes(data)
	require.Len(t, b, 8)
	assert.Equal(t, float32(1), math.Float32frombits(binary.NativeEndian.Uint32(b[0:4])))
	assert.Equal(t, float32(-2.5), math.Float32frombits(binary.NativeEndian.Uint32(b[4:8])))
}

func TestSliceToBytesSharesMemory(t *testing.T) {
	data := []uint16{1, 2, 3}
	b := SliceToBytes(data)
	data[1] = 0xFFFF
	assert.Equal(t, uint16(0xFFFF), binary.NativeEndian.Uint16(b[2:4]))
}

func TestSliceToBytesEmpty(t *testing.T) {
	assert.Nil(t, SliceToBytes([]int32{}))
	assert.Nil(t, SliceToBytes[uint8](nil))
}

func TestElementSize(t *testing.T) {
	assert.Equal(t, 4, ElementSize[float32]())
	assert.Equal(t, 2, ElementSize[uint16]())
	assert.Equal(t, 1, ElementSize[uint8]())
}
