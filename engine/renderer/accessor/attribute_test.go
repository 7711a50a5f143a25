package accessor

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/binding"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/program"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttribute(t *testing.T) {
	rec, p := newTestProgram(t)

	a, err := NewAttribute(p, "aColor")
	require.NoError(t, err)
	assert.Equal(t, "aColor", a.Name())
	assert.Equal(t, shader.TypeVec3, a.Type().Tag)
	assert.Equal(t, uint32(1), a.Location().Attrib())
	assert.False(t, a.Enabled())

	assert.Equal(t, []string{"GetAttribLocation"}, rec.CallNames())
	assert.False(t, rec.AttribEnabled(1))
}

func TestNewAttributeErrors(t *testing.T) {
	_, p := newTestProgram(t)

	tests := []struct {
		name string
		want error
	}{
		{"aMissing", shader.ErrUndeclared},
		{"uLight", program.ErrRoleMismatch},
		{"aUnused", program.ErrInvalidLocation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAttribute(p, tt.name)
			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, program.ErrInvalidLocation)
			assert.Contains(t, err.Error(), "accessor: "+tt.name)
		})
	}
}

func TestAttributeModeStateMachine(t *testing.T) {
	rec, p := newTestProgram(t)
	a, err := NewAttribute(p, "aPointSize")
	require.NoError(t, err)

	// disabled: fallback accepted, array buffer rejected
	assert.ErrorIs(t, a.SetArrayBuffer(AttribLayout{}), ErrInvalidMode)
	require.NoError(t, a.SetFallback(10))
	assert.Equal(t, []float32{10}, rec.Constants[2])

	a.EnableArray()
	a.EnableArray()
	assert.True(t, a.Enabled())
	assert.True(t, rec.AttribEnabled(2))
	assert.Len(t, rec.CallsNamed("EnableVertexAttribArray"), 1)

	// enabled: array buffer accepted, fallback rejected
	err = a.SetFallback(3)
	require.ErrorIs(t, err, ErrInvalidMode)
	assert.Contains(t, err.Error(), "aPointSize")
	require.NoError(t, a.SetArrayBuffer(AttribLayout{}))
	assert.Equal(t, []float32{10}, rec.Constants[2])

	a.DisableArray()
	a.DisableArray()
	assert.False(t, a.Enabled())
	assert.False(t, rec.AttribEnabled(2))
	assert.Len(t, rec.CallsNamed("DisableVertexAttribArray"), 1)
	require.NoError(t, a.SetFallback(4))
	assert.Equal(t, []float32{4}, rec.Constants[2])
}

func TestAttributeFallbackErrors(t *testing.T) {
	rec, p := newTestProgram(t)

	color, err := NewAttribute(p, "aColor")
	require.NoError(t, err)
	assert.ErrorIs(t, color.SetFallback(1, 0), ErrDataLength)
	assert.ErrorIs(t, color.SetFallback(1, 0, 0, 1), ErrDataLength)

	cell, err := NewAttribute(p, "aCell")
	require.NoError(t, err)
	assert.ErrorIs(t, cell.SetFallback(1, 2), ErrNoSetter)

	assert.Empty(t, rec.CallsNamed("VertexAttrib3fv"))
}

func TestAttributeInterleavedArrayBuffer(t *testing.T) {
	rec, p := newTestProgram(t)
	color, err := NewAttribute(p, "aColor")
	require.NoError(t, err)
	position, err := NewAttribute(p, "aPosition")
	require.NoError(t, err)

	layouts, err := InterleavedLayouts(shader.TypeVec3, shader.TypeVec2)
	require.NoError(t, err)

	va := binding.NewVertexArray(rec)
	vbo := binding.NewBuffer[float32](rec, device.BufferTargetArray)
	err = binding.BindAll(func() error {
		vbo.Upload([]float32{1, 0, 0, -1, -1, 0, 1, 0, 1, -1, 0, 0, 1, 0, 1})
		color.EnableArray()
		position.EnableArray()
		if err := color.SetArrayBuffer(layouts[0]); err != nil {
			return err
		}
		return position.SetArrayBuffer(layouts[1])
	}, va, vbo)
	require.NoError(t, err)

	ptr, ok := rec.PointerIn(va.Handle(), 1)
	require.True(t, ok)
	assert.Equal(t, devicetest.AttribPointer{
		Buffer: vbo.Handle(),
		Size:   3,
		Type:   device.DataTypeFloat,
		Stride: 20,
		Offset: 0,
	}, ptr)

	ptr, ok = rec.PointerIn(va.Handle(), 0)
	require.True(t, ok)
	assert.Equal(t, int32(2), ptr.Size)
	assert.Equal(t, int32(20), ptr.Stride)
	assert.Equal(t, uintptr(12), ptr.Offset)

	assert.True(t, rec.AttribEnabledIn(va.Handle(), 0))
	assert.False(t, rec.AttribEnabledIn(0, 0))
}

func TestAttributeLayoutForwardedVerbatim(t *testing.T) {
	rec, p := newTestProgram(t)
	color, err := NewAttribute(p, "aColor")
	require.NoError(t, err)

	color.EnableArray()
	require.NoError(t, color.SetArrayBuffer(AttribLayout{
		Stride:     7,
		Offset:     3,
		Normalized: true,
		Type:       device.DataTypeUnsignedByte,
	}))

	calls := rec.CallsNamed("VertexAttribPointer")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{uint32(1), int32(3), device.DataTypeUnsignedByte, true, int32(7), uintptr(3)}, calls[0].Args)
}

func TestAttributeIntegerPointer(t *testing.T) {
	rec, p := newTestProgram(t)
	cell, err := NewAttribute(p, "aCell")
	require.NoError(t, err)

	cell.EnableArray()
	require.NoError(t, cell.SetArrayBuffer(AttribLayout{Stride: 8, Normalized: true}))

	ptr, ok := rec.Pointer(7)
	require.True(t, ok)
	assert.True(t, ptr.Integer)
	assert.False(t, ptr.Normalized)
	assert.Equal(t, device.DataTypeInt, ptr.Type)
	assert.Equal(t, int32(2), ptr.Size)
	assert.Empty(t, rec.CallsNamed("VertexAttribPointer"))
}

func TestAttributeMatrixColumns(t *testing.T) {
	rec, p := newTestProgram(t)
	model, err := NewAttribute(p, "aModel")
	require.NoError(t, err)

	m := mgl32.Translate3D(1, 2, 3)
	require.NoError(t, model.SetFallback(m[:]...))
	require.Len(t, rec.CallsNamed("VertexAttrib4fv"), 4)
	for col := range 4 {
		c := m.Col(col)
		assert.Equal(t, c[:], rec.Constants[uint32(3+col)])
	}

	model.EnableArray()
	for slot := uint32(3); slot < 7; slot++ {
		assert.True(t, rec.AttribEnabled(slot))
	}
	assert.False(t, rec.AttribEnabled(7))

	require.NoError(t, model.SetArrayBuffer(AttribLayout{Stride: 64, Offset: 128}))
	for col := range 4 {
		ptr, ok := rec.Pointer(uint32(3 + col))
		require.True(t, ok)
		assert.Equal(t, int32(4), ptr.Size)
		assert.Equal(t, int32(64), ptr.Stride)
		assert.Equal(t, uintptr(128+col*16), ptr.Offset)
	}

	model.SetDivisor(1)
	for slot := uint32(3); slot < 7; slot++ {
		assert.Equal(t, uint32(1), rec.Divisor(slot))
	}
	assert.Len(t, rec.CallsNamed("VertexAttribDivisor"), 4)
}

func TestAttributeDivisorIgnoresMode(t *testing.T) {
	rec, p := newTestProgram(t)
	position, err := NewAttribute(p, "aPosition")
	require.NoError(t, err)

	position.SetDivisor(2)
	assert.Equal(t, uint32(2), rec.Divisor(0))
	position.EnableArray()
	position.SetDivisor(0)
	assert.Equal(t, uint32(0), rec.Divisor(0))
}
