// Package gogl implements device.Device on top of the go-gl OpenGL 4.1 core bindings.
//
// A GL context must be current on the calling OS thread (see package window) before New is called, and every
// method must be called from that thread.
package gogl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// goglDevice is the go-gl implementation of device.Device.
type goglDevice struct{}

var _ device.Device = &goglDevice{}

// New loads the GL function pointers for the current context and returns a Device using them.
//
// Returns:
//   - device.Device: the device bound to the current context
//   - error: error if the GL entry points could not be loaded
func New() (device.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gogl: failed to initialize OpenGL bindings: %w", err)
	}
	return &goglDevice{}, nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// cstr returns a NUL-terminated copy of s for go-gl string parameters.
func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

func (d *goglDevice) CreateShader(stage device.ShaderStage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (d *goglDevice) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (d *goglDevice) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *goglDevice) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *goglDevice) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *goglDevice) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *goglDevice) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *goglDevice) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *goglDevice) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *goglDevice) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *goglDevice) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *goglDevice) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *goglDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *goglDevice) GetCurrentProgram() uint32 {
	return getBinding(gl.CURRENT_PROGRAM)
}

func (d *goglDevice) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, cstr(name))
}

func (d *goglDevice) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, cstr(name))
}

func (d *goglDevice) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (d *goglDevice) BindBuffer(target device.BufferTarget, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (d *goglDevice) GetBufferBinding(target device.BufferTarget) uint32 {
	switch target {
	case device.BufferTargetArray:
		return getBinding(gl.ARRAY_BUFFER_BINDING)
	case device.BufferTargetElementArray:
		return getBinding(gl.ELEMENT_ARRAY_BUFFER_BINDING)
	case device.BufferTargetUniform:
		return getBinding(gl.UNIFORM_BUFFER_BINDING)
	}
	return 0
}

func (d *goglDevice) BufferData(target device.BufferTarget, data []byte, usage device.BufferUsage) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), len(data), ptr, uint32(usage))
}

func (d *goglDevice) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *goglDevice) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *goglDevice) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (d *goglDevice) GetVertexArrayBinding() uint32 {
	return getBinding(gl.VERTEX_ARRAY_BINDING)
}

// getBinding reads an object-name state variable.
func getBinding(pname uint32) uint32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return uint32(v)
}

func (d *goglDevice) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (d *goglDevice) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *goglDevice) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (d *goglDevice) VertexAttribPointer(index uint32, size int32, xtype device.DataType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, offset)
}

func (d *goglDevice) VertexAttribIPointer(index uint32, size int32, xtype device.DataType, stride int32, offset uintptr) {
	gl.VertexAttribIPointerWithOffset(index, size, uint32(xtype), stride, offset)
}

func (d *goglDevice) VertexAttribDivisor(index, divisor uint32) {
	gl.VertexAttribDivisor(index, divisor)
}

func (d *goglDevice) VertexAttrib1fv(index uint32, v []float32) {
	gl.VertexAttrib1fv(index, &v[0])
}

func (d *goglDevice) VertexAttrib2fv(index uint32, v []float32) {
	gl.VertexAttrib2fv(index, &v[0])
}

func (d *goglDevice) VertexAttrib3fv(index uint32, v []float32) {
	gl.VertexAttrib3fv(index, &v[0])
}

func (d *goglDevice) VertexAttrib4fv(index uint32, v []float32) {
	gl.VertexAttrib4fv(index, &v[0])
}

func (d *goglDevice) Uniform1fv(location int32, v []float32) {
	gl.Uniform1fv(location, int32(len(v)), &v[0])
}

func (d *goglDevice) Uniform2fv(location int32, v []float32) {
	gl.Uniform2fv(location, int32(len(v)/2), &v[0])
}

func (d *goglDevice) Uniform3fv(location int32, v []float32) {
	gl.Uniform3fv(location, int32(len(v)/3), &v[0])
}

func (d *goglDevice) Uniform4fv(location int32, v []float32) {
	gl.Uniform4fv(location, int32(len(v)/4), &v[0])
}

func (d *goglDevice) Uniform1iv(location int32, v []int32) {
	gl.Uniform1iv(location, int32(len(v)), &v[0])
}

func (d *goglDevice) Uniform2iv(location int32, v []int32) {
	gl.Uniform2iv(location, int32(len(v)/2), &v[0])
}

func (d *goglDevice) Uniform3iv(location int32, v []int32) {
	gl.Uniform3iv(location, int32(len(v)/3), &v[0])
}

func (d *goglDevice) Uniform4iv(location int32, v []int32) {
	gl.Uniform4iv(location, int32(len(v)/4), &v[0])
}

func (d *goglDevice) UniformMatrix2fv(location int32, transpose bool, v []float32) {
	gl.UniformMatrix2fv(location, int32(len(v)/4), transpose, &v[0])
}

func (d *goglDevice) UniformMatrix3fv(location int32, transpose bool, v []float32) {
	gl.UniformMatrix3fv(location, int32(len(v)/9), transpose, &v[0])
}

func (d *goglDevice) UniformMatrix4fv(location int32, transpose bool, v []float32) {
	gl.UniformMatrix4fv(location, int32(len(v)/16), transpose, &v[0])
}

func (d *goglDevice) DrawArrays(mode device.DrawMode, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (d *goglDevice) DrawArraysInstanced(mode device.DrawMode, first, count, instanceCount int32) {
	gl.DrawArraysInstanced(uint32(mode), first, count, instanceCount)
}

func (d *goglDevice) DrawElements(mode device.DrawMode, count int32, xtype device.DataType, offset uintptr) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(xtype), offset)
}

func (d *goglDevice) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *goglDevice) Clear(mask uint32) {
	gl.Clear(mask)
}

func (d *goglDevice) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *goglDevice) Enable(capability device.Capability) {
	gl.Enable(uint32(capability))
}
