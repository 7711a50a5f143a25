package shader

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeRequiredTypes(t *testing.T) {
	tests := []struct {
		tag       TypeTag
		kind      NativeKind
		count     int
		elemSize  int
		size      int
		uniform   UniformSetter
		attribute AttribSetter
	}{
		{TypeFloat, KindFloat, 1, 4, 4, UniformSetter1fv, AttribSetter1fv},
		{TypeVec2, KindFloat, 2, 4, 8, UniformSetter2fv, AttribSetter2fv},
		{TypeVec3, KindFloat, 3, 4, 12, UniformSetter3fv, AttribSetter3fv},
		{TypeVec4, KindFloat, 4, 4, 16, UniformSetter4fv, AttribSetter4fv},
		{TypeInt, KindInt, 1, 4, 4, UniformSetter1iv, AttribSetterNone},
		{TypeBool, KindBool, 1, 1, 1, UniformSetter1iv, AttribSetterNone},
		{TypeMat3, KindFloat, 9, 4, 36, UniformSetterMatrix3fv, AttribSetter3fv},
		{TypeMat4, KindFloat, 16, 4, 64, UniformSetterMatrix4fv, AttribSetter4fv},
	}
	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			d, err := Describe(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, d.Tag)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.count, d.ElementCount)
			assert.Equal(t, tt.elemSize, d.ElementSize)
			assert.Equal(t, tt.size, d.Size)
			assert.Equal(t, tt.uniform, d.UniformSetter)
			assert.Equal(t, tt.attribute, d.AttribSetter)
		})
	}
}

func TestRegistrySizeInvariant(t *testing.T) {
	for _, tag := range Types() {
		d := MustDescribe(tag)
		if d.Kind == KindBool {
			assert.Equal(t, 1, d.Size, "packed bool %s", tag)
			continue
		}
		assert.Equal(t, d.ElementCount*d.ElementSize, d.Size, "type %s", tag)
		assert.Zero(t, d.ElementCount%d.Columns, "type %s", tag)
	}
}

func TestAttribSetterOnlyForFloatTypes(t *testing.T) {
	for _, tag := range Types() {
		d := MustDescribe(tag)
		if d.Kind == KindFloat {
			assert.NotEqual(t, AttribSetterNone, d.AttribSetter, "type %s", tag)
		} else {
			assert.Equal(t, AttribSetterNone, d.AttribSetter, "type %s", tag)
		}
	}
}

func TestDescribeUnknownType(t *testing.T) {
	_, err := Describe("sampler2D")
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "sampler2D")

	assert.Panics(t, func() { MustDescribe("dvec3") })
	assert.False(t, Known("dvec3"))
	assert.True(t, Known(TypeVec3))
}

func TestMatrixColumns(t *testing.T) {
	assert.Equal(t, 2, MustDescribe(TypeMat2).ColumnSize())
	assert.Equal(t, 3, MustDescribe(TypeMat3).Columns)
	assert.Equal(t, 4, MustDescribe(TypeMat4).ColumnSize())
	assert.True(t, MustDescribe(TypeMat4).IsMatrix())
	assert.False(t, MustDescribe(TypeVec4).IsMatrix())
	assert.Equal(t, 1, MustDescribe(TypeVec4).Columns)
}

func TestSetterNames(t *testing.T) {
	assert.Equal(t, "uniformMatrix4fv", UniformSetterMatrix4fv.String())
	assert.Equal(t, "uniform1iv", MustDescribe(TypeBool).UniformSetter.String())
	assert.Equal(t, "vertexAttrib3fv", MustDescribe(TypeVec3).AttribSetter.String())
	assert.Equal(t, "none", MustDescribe(TypeInt).AttribSetter.String())
	assert.True(t, UniformSetter3iv.IsInteger())
	assert.False(t, UniformSetter3fv.IsInteger())
}

func TestKindDataType(t *testing.T) {
	assert.Equal(t, device.DataTypeFloat, MustDescribe(TypeMat4).DataType())
	assert.Equal(t, device.DataTypeInt, MustDescribe(TypeIVec2).DataType())
	assert.Equal(t, device.DataTypeBool, MustDescribe(TypeBool).DataType())
}

func TestInterleave(t *testing.T) {
	stride, offsets, err := Interleave(TypeVec3, TypeVec2)
	require.NoError(t, err)
	assert.Equal(t, 20, stride)
	assert.Equal(t, []int{0, 12}, offsets)

	stride, offsets, err = Interleave(TypeVec2, TypeFloat, TypeVec3)
	require.NoError(t, err)
	assert.Equal(t, 24, stride)
	assert.Equal(t, []int{0, 8, 12}, offsets)

	_, _, err = Interleave(TypeVec2, "vec5")
	assert.ErrorIs(t, err, ErrUnknownType)
}
