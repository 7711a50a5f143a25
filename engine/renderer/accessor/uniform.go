package accessor

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/binding"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/program"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// uniform is the implementation of the Uniform interface.
type uniform struct {
	variable
}

// Uniform is a typed handle to one uniform variable of a program. Every setter checks that its value family matches
// the declared type and that the value count fills it. When the program is not the device's current program, the
// write is made inside a temporary binding of it and the previously current program is reinstated.
type Uniform interface {
	// Name returns the variable name.
	Name() string

	// Type returns the declared type descriptor.
	Type() shader.TypeDescriptor

	// Location returns the resolved location.
	Location() program.Location

	// SetFloats assigns a float, vec2, vec3 or vec4 uniform.
	SetFloats(v ...float32) error

	// SetInts assigns an int or ivec uniform. Bool uniforms accept ints as well.
	SetInts(v ...int32) error

	// SetBools assigns a bool or bvec uniform.
	SetBools(v ...bool) error

	// SetMatrix assigns a mat2, mat3 or mat4 uniform.
	//
	// Parameters:
	//   - transpose: whether m is row-major
	//   - m: the matrix elements, column-major unless transpose is set
	//
	// Returns:
	//   - error: wrapping ErrSetterMismatch or ErrDataLength
	SetMatrix(transpose bool, m ...float32) error

	// SetVec2 assigns a vec2 uniform.
	SetVec2(v mgl32.Vec2) error

	// SetVec3 assigns a vec3 uniform.
	SetVec3(v mgl32.Vec3) error

	// SetVec4 assigns a vec4 uniform.
	SetVec4(v mgl32.Vec4) error

	// SetMat3 assigns a mat3 uniform.
	SetMat3(transpose bool, m mgl32.Mat3) error

	// SetMat4 assigns a mat4 uniform.
	SetMat4(transpose bool, m mgl32.Mat4) error
}

var _ Uniform = &uniform{}

// NewUniform creates a handle to a declared uniform.
//
// Parameters:
//   - p: the program declaring the uniform
//   - name: the uniform name
//
// Returns:
//   - Uniform: the new handle
//   - error: wrapping shader.ErrUndeclared, shader.ErrUnknownType, program.ErrRoleMismatch or
//     program.ErrInvalidLocation
func NewUniform(p program.Program, name string) (Uniform, error) {
	v, err := newVariable(p, name, shader.RoleUniform)
	if err != nil {
		return nil, err
	}
	return &uniform{variable: v}, nil
}

func (u *uniform) Name() string {
	return u.loc.Name
}

func (u *uniform) Type() shader.TypeDescriptor {
	return u.desc
}

func (u *uniform) Location() program.Location {
	return u.loc
}

func (u *uniform) SetFloats(v ...float32) error {
	s := u.desc.UniformSetter
	if s.IsMatrix() || s.IsInteger() || s == shader.UniformSetterNone {
		return u.mismatch("floats")
	}
	if err := u.checkLength(len(v)); err != nil {
		return err
	}

	loc := u.loc.Uniform()
	return u.apply(func() {
		dev := u.prog.Device()
		switch s {
		case shader.UniformSetter1fv:
			dev.Uniform1fv(loc, v)
		case shader.UniformSetter2fv:
			dev.Uniform2fv(loc, v)
		case shader.UniformSetter3fv:
			dev.Uniform3fv(loc, v)
		case shader.UniformSetter4fv:
			dev.Uniform4fv(loc, v)
		}
	})
}

func (u *uniform) SetInts(v ...int32) error {
	if !u.desc.UniformSetter.IsInteger() {
		return u.mismatch("ints")
	}
	if err := u.checkLength(len(v)); err != nil {
		return err
	}
	return u.setInts(v)
}

func (u *uniform) SetBools(v ...bool) error {
	if u.desc.Kind != shader.KindBool {
		return u.mismatch("bools")
	}
	if err := u.checkLength(len(v)); err != nil {
		return err
	}

	ints := make([]int32, len(v))
	for i, b := range v {
		if b {
			ints[i] = 1
		}
	}
	return u.setInts(ints)
}

func (u *uniform) SetMatrix(transpose bool, m ...float32) error {
	s := u.desc.UniformSetter
	if !s.IsMatrix() {
		return u.mismatch("a matrix")
	}
	if err := u.checkLength(len(m)); err != nil {
		return err
	}

	loc := u.loc.Uniform()
	return u.apply(func() {
		dev := u.prog.Device()
		switch s {
		case shader.UniformSetterMatrix2fv:
			dev.UniformMatrix2fv(loc, transpose, m)
		case shader.UniformSetterMatrix3fv:
			dev.UniformMatrix3fv(loc, transpose, m)
		case shader.UniformSetterMatrix4fv:
			dev.UniformMatrix4fv(loc, transpose, m)
		}
	})
}

func (u *uniform) SetVec2(v mgl32.Vec2) error {
	return u.SetFloats(v[:]...)
}

func (u *uniform) SetVec3(v mgl32.Vec3) error {
	return u.SetFloats(v[:]...)
}

func (u *uniform) SetVec4(v mgl32.Vec4) error {
	return u.SetFloats(v[:]...)
}

func (u *uniform) SetMat3(transpose bool, m mgl32.Mat3) error {
	return u.SetMatrix(transpose, m[:]...)
}

func (u *uniform) SetMat4(transpose bool, m mgl32.Mat4) error {
	return u.SetMatrix(transpose, m[:]...)
}

// setInts dispatches to the integer setter of the declared type.
func (u *uniform) setInts(v []int32) error {
	loc := u.loc.Uniform()
	return u.apply(func() {
		dev := u.prog.Device()
		switch u.desc.UniformSetter {
		case shader.UniformSetter1iv:
			dev.Uniform1iv(loc, v)
		case shader.UniformSetter2iv:
			dev.Uniform2iv(loc, v)
		case shader.UniformSetter3iv:
			dev.Uniform3iv(loc, v)
		case shader.UniformSetter4iv:
			dev.Uniform4iv(loc, v)
		}
	})
}

// apply runs a device write with the program in use, binding it for the write if needed.
func (u *uniform) apply(write func()) error {
	if u.prog.InUse() {
		write()
		return nil
	}
	return binding.Bind(u.prog, func() error {
		write()
		return nil
	})
}

func (u *uniform) mismatch(family string) error {
	return u.errorf(ErrSetterMismatch, "%s is set with %s, not %s", u.desc.Tag, u.desc.UniformSetter, family)
}
