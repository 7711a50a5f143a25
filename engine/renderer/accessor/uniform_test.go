package accessor

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/program"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniformErrors(t *testing.T) {
	rec, p := newTestProgram(t)

	_, err := NewUniform(p, "aColor")
	assert.ErrorIs(t, err, program.ErrRoleMismatch)
	assert.ErrorIs(t, err, program.ErrInvalidLocation)

	_, err = NewUniform(p, "uMissing")
	assert.ErrorIs(t, err, shader.ErrUndeclared)
	assert.ErrorIs(t, err, program.ErrInvalidLocation)

	_, err = NewUniform(p, "uTexture")
	assert.ErrorIs(t, err, shader.ErrUnknownType)

	delete(rec.Uniforms, "uTime")
	_, err = NewUniform(p, "uTime")
	assert.ErrorIs(t, err, program.ErrInvalidLocation)
}

func TestUniformBindsProgramWhenNotInUse(t *testing.T) {
	rec, p := newTestProgram(t)
	proj, err := NewUniform(p, "uProjection")
	require.NoError(t, err)
	rec.Reset()

	m := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)
	require.NoError(t, proj.SetMat4(false, m))

	assert.Equal(t, []string{"UseProgram", "UniformMatrix4fv", "UseProgram"}, rec.CallNames())
	assert.Equal(t, []any{uint32(testProgramHandle)}, rec.Calls[0].Args)
	assert.Equal(t, []any{uint32(0)}, rec.Calls[2].Args)
	assert.False(t, p.InUse())

	v, ok := rec.Uniform(testProgramHandle, 0)
	require.True(t, ok)
	assert.Equal(t, m[:], v.Floats)
	assert.False(t, v.Transpose)
}

func TestUniformWithAnotherProgramCurrent(t *testing.T) {
	rec, p := newTestProgram(t)
	other, err := program.New(rec, 99, p.Shader())
	require.NoError(t, err)
	tm, err := NewUniform(p, "uTime")
	require.NoError(t, err)

	p.Enable()
	other.Enable()
	rec.Reset()
	require.False(t, p.InUse())

	require.NoError(t, tm.SetFloats(2))
	assert.Equal(t, []string{"UseProgram", "Uniform1fv", "UseProgram"}, rec.CallNames())
	assert.Equal(t, []any{uint32(99)}, rec.Calls[2].Args)
	assert.Equal(t, uint32(99), rec.CurrentProgram)

	v, ok := rec.Uniform(testProgramHandle, tm.Location().Uniform())
	require.True(t, ok)
	assert.Equal(t, []float32{2}, v.Floats)
	_, ok = rec.Uniform(99, tm.Location().Uniform())
	assert.False(t, ok)
}

func TestUniformInUseProgram(t *testing.T) {
	rec, p := newTestProgram(t)
	light, err := NewUniform(p, "uLight")
	require.NoError(t, err)

	p.Enable()
	rec.Reset()
	require.NoError(t, light.SetVec3(mgl32.Vec3{0.5, 1, -2}))
	assert.Equal(t, []string{"Uniform3fv"}, rec.CallNames())
	assert.True(t, p.InUse())

	v, ok := rec.Uniform(testProgramHandle, light.Location().Uniform())
	require.True(t, ok)
	assert.Equal(t, "Uniform3fv", v.Setter)
	assert.Equal(t, []float32{0.5, 1, -2}, v.Floats)
}

func TestUniformDispatch(t *testing.T) {
	rec, p := newTestProgram(t)
	p.Enable()
	ident3 := mgl32.Ident3()

	tests := []struct {
		name   string
		set    func(u Uniform) error
		setter string
		floats []float32
		ints   []int32
	}{
		{"uTime", func(u Uniform) error { return u.SetFloats(1.5) }, "Uniform1fv", []float32{1.5}, nil},
		{"uLight", func(u Uniform) error { return u.SetFloats(1, 2, 3) }, "Uniform3fv", []float32{1, 2, 3}, nil},
		{"uMode", func(u Uniform) error { return u.SetInts(4) }, "Uniform1iv", nil, []int32{4}},
		{"uGrid", func(u Uniform) error { return u.SetInts(1, 2, 3) }, "Uniform3iv", nil, []int32{1, 2, 3}},
		{"uWire", func(u Uniform) error { return u.SetBools(true) }, "Uniform1iv", nil, []int32{1}},
		{"uWire", func(u Uniform) error { return u.SetInts(0) }, "Uniform1iv", nil, []int32{0}},
		{"uFlags", func(u Uniform) error { return u.SetBools(false, true) }, "Uniform2iv", nil, []int32{0, 1}},
		{"uNormal", func(u Uniform) error { return u.SetMat3(false, mgl32.Ident3()) }, "UniformMatrix3fv", ident3[:], nil},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.setter, func(t *testing.T) {
			u, err := NewUniform(p, tt.name)
			require.NoError(t, err)
			require.NoError(t, tt.set(u))

			v, ok := rec.Uniform(testProgramHandle, u.Location().Uniform())
			require.True(t, ok)
			assert.Equal(t, tt.setter, v.Setter)
			if tt.ints != nil {
				assert.Equal(t, tt.ints, v.Ints)
			}
			if len(tt.floats) > 0 {
				assert.Equal(t, tt.floats, v.Floats)
			}
		})
	}
}

func TestUniformMatrixTranspose(t *testing.T) {
	rec, p := newTestProgram(t)
	normal, err := NewUniform(p, "uNormal")
	require.NoError(t, err)

	m := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.NoError(t, normal.SetMatrix(true, m...))

	calls := rec.CallsNamed("UniformMatrix3fv")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{int32(1), true, m}, calls[0].Args)
}

func TestUniformSetterMismatch(t *testing.T) {
	rec, p := newTestProgram(t)

	uniforms := make(map[string]Uniform)
	for _, name := range []string{"uLight", "uProjection", "uMode", "uTime"} {
		u, err := NewUniform(p, name)
		require.NoError(t, err)
		uniforms[name] = u
	}
	rec.Reset()

	tests := []struct {
		name string
		set  func(u Uniform) error
		want error
	}{
		{"uLight", func(u Uniform) error { return u.SetInts(1, 2, 3) }, ErrSetterMismatch},
		{"uLight", func(u Uniform) error { return u.SetMatrix(false, 1, 2, 3) }, ErrSetterMismatch},
		{"uProjection", func(u Uniform) error { return u.SetFloats(make([]float32, 16)...) }, ErrSetterMismatch},
		{"uProjection", func(u Uniform) error { return u.SetMat3(false, mgl32.Ident3()) }, ErrDataLength},
		{"uMode", func(u Uniform) error { return u.SetFloats(1) }, ErrSetterMismatch},
		{"uMode", func(u Uniform) error { return u.SetBools(true) }, ErrSetterMismatch},
		{"uTime", func(u Uniform) error { return u.SetVec2(mgl32.Vec2{1, 2}) }, ErrDataLength},
	}
	for _, tt := range tests {
		err := tt.set(uniforms[tt.name])
		require.ErrorIs(t, err, tt.want, tt.name)
		assert.Contains(t, err.Error(), "accessor: "+tt.name+":")
	}
	assert.Empty(t, rec.Calls)
}

func TestUniformDataLength(t *testing.T) {
	rec, p := newTestProgram(t)
	light, err := NewUniform(p, "uLight")
	require.NoError(t, err)
	flags, err := NewUniform(p, "uFlags")
	require.NoError(t, err)
	rec.Reset()

	assert.ErrorIs(t, light.SetFloats(1, 2), ErrDataLength)
	assert.ErrorIs(t, light.SetFloats(), ErrDataLength)
	assert.ErrorIs(t, flags.SetBools(true), ErrDataLength)
	assert.Empty(t, rec.Calls)
}
