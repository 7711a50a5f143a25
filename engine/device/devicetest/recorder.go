// Package devicetest provides an in-memory device.Device that tracks GL binding state and records every call,
// so binding and accessor behaviour can be tested without a GPU.
package devicetest

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// Call is one recorded device call.
type Call struct {
	// Name is the device method name, e.g. "BindBuffer".
	Name string
	// Args are the call arguments in order. Slices are copied.
	Args []any
}

// String formats the call as Name(arg, arg, ...).
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// AttribPointer is the recorded source description of one attribute slot.
type AttribPointer struct {
	Buffer     uint32
	Size       int32
	Type       device.DataType
	Normalized bool
	Integer    bool
	Stride     int32
	Offset     uintptr
}

// UniformValue is the last value written to a uniform location.
type UniformValue struct {
	Setter    string
	Floats    []float32
	Ints      []int32
	Transpose bool
}

// BufferUpload is one BufferData call.
type BufferUpload struct {
	Target device.BufferTarget
	Buffer uint32
	Data   []byte
	Usage  device.BufferUsage
}

// vertexArrayState is the state captured by one vertex array object.
type vertexArrayState struct {
	elementBuffer uint32
	enabled       map[uint32]bool
	pointers      map[uint32]AttribPointer
	divisors      map[uint32]uint32
}

func newVertexArrayState() *vertexArrayState {
	return &vertexArrayState{
		enabled:  make(map[uint32]bool),
		pointers: make(map[uint32]AttribPointer),
		divisors: make(map[uint32]uint32),
	}
}

// Recorder is a fake device.Device. The zero value is not usable; create one with NewRecorder.
//
// Vertex array 0 is the default vertex array and always exists. Attribute enable flags, pointers, divisors and the
// element array binding live in whichever vertex array is bound, as in GL.
type Recorder struct {
	// Calls is every call made, in order.
	Calls []Call

	// Attribs maps active attribute names to the slot GetAttribLocation returns. Missing names return -1.
	Attribs map[string]int32
	// Uniforms maps active uniform names to the location GetUniformLocation returns. Missing names return -1.
	Uniforms map[string]int32

	// FailCompile makes CompileShader fail for any source containing this text, when non-empty.
	FailCompile string
	// FailLink makes every LinkProgram fail.
	FailLink bool

	// ArrayBuffer, CurrentVertexArray and CurrentProgram are the live bindings.
	ArrayBuffer        uint32
	UniformBuffer      uint32
	CurrentVertexArray uint32
	CurrentProgram     uint32

	// Buffers holds the store of every live buffer object.
	Buffers map[uint32][]byte
	// Uploads is every BufferData call, in order.
	Uploads []BufferUpload
	// Constants holds the current (constant) value of each attribute slot.
	Constants map[uint32][]float32
	// UniformValues holds the last value set at each uniform location, keyed by program then location.
	UniformValues map[uint32]map[int32]UniformValue

	// Draws counts draw calls.
	Draws int

	nextName     uint32
	shaders      map[uint32]string
	compiled     map[uint32]bool
	programs     map[uint32][]uint32
	linked       map[uint32]bool
	vertexArrays map[uint32]*vertexArrayState
}

var _ device.Device = &Recorder{}

// NewRecorder creates an empty Recorder with no active attributes or uniforms.
func NewRecorder() *Recorder {
	return &Recorder{
		Attribs:       make(map[string]int32),
		Uniforms:      make(map[string]int32),
		Buffers:       make(map[uint32][]byte),
		Constants:     make(map[uint32][]float32),
		UniformValues: make(map[uint32]map[int32]UniformValue),
		nextName:      1,
		shaders:       make(map[uint32]string),
		compiled:      make(map[uint32]bool),
		programs:      make(map[uint32][]uint32),
		linked:        make(map[uint32]bool),
		vertexArrays:  map[uint32]*vertexArrayState{0: newVertexArrayState()},
	}
}

func (r *Recorder) record(name string, args ...any) {
	for i, a := range args {
		switch v := a.(type) {
		case []byte:
			args[i] = append([]byte(nil), v...)
		case []float32:
			args[i] = append([]float32(nil), v...)
		case []int32:
			args[i] = append([]int32(nil), v...)
		}
	}
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) name() uint32 {
	n := r.nextName
	r.nextName++
	return n
}

func (r *Recorder) vao() *vertexArrayState {
	return r.vertexArrays[r.CurrentVertexArray]
}

// CallNames returns the names of all recorded calls, in order.
func (r *Recorder) CallNames() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// CallsNamed returns the recorded calls with the given name, in order.
func (r *Recorder) CallsNamed(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls and uploads but keeps all GL state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Uploads = nil
}

// ElementArrayBuffer returns the element array buffer captured by the bound vertex array.
func (r *Recorder) ElementArrayBuffer() uint32 {
	return r.vao().elementBuffer
}

// ElementArrayBufferOf returns the element array buffer captured by a vertex array object.
func (r *Recorder) ElementArrayBufferOf(vertexArray uint32) uint32 {
	if s, ok := r.vertexArrays[vertexArray]; ok {
		return s.elementBuffer
	}
	return 0
}

// AttribEnabled reports whether an attribute slot is enabled in the bound vertex array.
func (r *Recorder) AttribEnabled(index uint32) bool {
	return r.vao().enabled[index]
}

// AttribEnabledIn reports whether an attribute slot is enabled in a given vertex array.
func (r *Recorder) AttribEnabledIn(vertexArray, index uint32) bool {
	if s, ok := r.vertexArrays[vertexArray]; ok {
		return s.enabled[index]
	}
	return false
}

// Pointer returns the attribute pointer of a slot in the bound vertex array.
func (r *Recorder) Pointer(index uint32) (AttribPointer, bool) {
	p, ok := r.vao().pointers[index]
	return p, ok
}

// PointerIn returns the attribute pointer of a slot in a given vertex array.
func (r *Recorder) PointerIn(vertexArray, index uint32) (AttribPointer, bool) {
	s, ok := r.vertexArrays[vertexArray]
	if !ok {
		return AttribPointer{}, false
	}
	p, ok := s.pointers[index]
	return p, ok
}

// Divisor returns the instancing divisor of a slot in the bound vertex array.
func (r *Recorder) Divisor(index uint32) uint32 {
	return r.vao().divisors[index]
}

// Uniform returns the last value set at a uniform location of a program.
func (r *Recorder) Uniform(program uint32, location int32) (UniformValue, bool) {
	v, ok := r.UniformValues[program][location]
	return v, ok
}

// IsBuffer reports whether a buffer object exists.
func (r *Recorder) IsBuffer(buffer uint32) bool {
	_, ok := r.Buffers[buffer]
	return ok
}

// IsVertexArray reports whether a vertex array object exists.
func (r *Recorder) IsVertexArray(array uint32) bool {
	_, ok := r.vertexArrays[array]
	return ok && array != 0
}

// IsProgram reports whether a program object exists.
func (r *Recorder) IsProgram(program uint32) bool {
	_, ok := r.programs[program]
	return ok
}

func (r *Recorder) CreateShader(stage device.ShaderStage) uint32 {
	r.record("CreateShader", stage)
	n := r.name()
	r.shaders[n] = ""
	return n
}

func (r *Recorder) ShaderSource(shader uint32, source string) {
	r.record("ShaderSource", shader, source)
	r.shaders[shader] = source
}

func (r *Recorder) CompileShader(shader uint32) {
	r.record("CompileShader", shader)
	r.compiled[shader] = r.FailCompile == "" || !strings.Contains(r.shaders[shader], r.FailCompile)
}

func (r *Recorder) ShaderCompiled(shader uint32) bool {
	return r.compiled[shader]
}

func (r *Recorder) ShaderInfoLog(shader uint32) string {
	if r.compiled[shader] {
		return ""
	}
	return fmt.Sprintf("ERROR: 0:1: '%s' : syntax error", r.FailCompile)
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader", shader)
	delete(r.shaders, shader)
	delete(r.compiled, shader)
}

func (r *Recorder) CreateProgram() uint32 {
	r.record("CreateProgram")
	n := r.name()
	r.programs[n] = nil
	return n
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.record("AttachShader", program, shader)
	r.programs[program] = append(r.programs[program], shader)
}

func (r *Recorder) LinkProgram(program uint32) {
	r.record("LinkProgram", program)
	ok := !r.FailLink
	for _, s := range r.programs[program] {
		ok = ok && r.compiled[s]
	}
	r.linked[program] = ok
}

func (r *Recorder) ProgramLinked(program uint32) bool {
	return r.linked[program]
}

func (r *Recorder) ProgramInfoLog(program uint32) string {
	if r.linked[program] {
		return ""
	}
	return "error: linking failed"
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
	delete(r.programs, program)
	delete(r.linked, program)
	delete(r.UniformValues, program)
	if r.CurrentProgram == program {
		r.CurrentProgram = 0
	}
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
	r.CurrentProgram = program
}

// GetCurrentProgram is a state query and is not recorded.
func (r *Recorder) GetCurrentProgram() uint32 {
	return r.CurrentProgram
}

func (r *Recorder) GetAttribLocation(program uint32, name string) int32 {
	r.record("GetAttribLocation", program, name)
	if loc, ok := r.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	r.record("GetUniformLocation", program, name)
	if loc, ok := r.Uniforms[name]; ok {
		return loc
	}
	return device.NullLocation
}

func (r *Recorder) GenBuffer() uint32 {
	r.record("GenBuffer")
	n := r.name()
	r.Buffers[n] = nil
	return n
}

func (r *Recorder) BindBuffer(target device.BufferTarget, buffer uint32) {
	r.record("BindBuffer", target, buffer)
	switch target {
	case device.BufferTargetArray:
		r.ArrayBuffer = buffer
	case device.BufferTargetElementArray:
		r.vao().elementBuffer = buffer
	case device.BufferTargetUniform:
		r.UniformBuffer = buffer
	}
}

// GetBufferBinding is a state query and is not recorded.
func (r *Recorder) GetBufferBinding(target device.BufferTarget) uint32 {
	return r.bound(target)
}

// bound returns the buffer bound to target.
func (r *Recorder) bound(target device.BufferTarget) uint32 {
	switch target {
	case device.BufferTargetArray:
		return r.ArrayBuffer
	case device.BufferTargetElementArray:
		return r.vao().elementBuffer
	case device.BufferTargetUniform:
		return r.UniformBuffer
	}
	return 0
}

func (r *Recorder) BufferData(target device.BufferTarget, data []byte, usage device.BufferUsage) {
	r.record("BufferData", target, data, usage)
	buf := r.bound(target)
	stored := append([]byte(nil), data...)
	if buf != 0 {
		r.Buffers[buf] = stored
	}
	r.Uploads = append(r.Uploads, BufferUpload{Target: target, Buffer: buf, Data: stored, Usage: usage})
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.record("DeleteBuffer", buffer)
	delete(r.Buffers, buffer)
	if r.ArrayBuffer == buffer {
		r.ArrayBuffer = 0
	}
	if r.UniformBuffer == buffer {
		r.UniformBuffer = 0
	}
	for _, s := range r.vertexArrays {
		if s.elementBuffer == buffer {
			s.elementBuffer = 0
		}
	}
}

func (r *Recorder) GenVertexArray() uint32 {
	r.record("GenVertexArray")
	n := r.name()
	r.vertexArrays[n] = newVertexArrayState()
	return n
}

func (r *Recorder) BindVertexArray(array uint32) {
	r.record("BindVertexArray", array)
	r.CurrentVertexArray = array
}

// GetVertexArrayBinding is a state query and is not recorded.
func (r *Recorder) GetVertexArrayBinding() uint32 {
	return r.CurrentVertexArray
}

func (r *Recorder) DeleteVertexArray(array uint32) {
	r.record("DeleteVertexArray", array)
	if array == 0 {
		return
	}
	delete(r.vertexArrays, array)
	if r.CurrentVertexArray == array {
		r.CurrentVertexArray = 0
	}
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
	r.vao().enabled[index] = true
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.record("DisableVertexAttribArray", index)
	r.vao().enabled[index] = false
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype device.DataType, normalized bool, stride int32, offset uintptr) {
	r.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
	r.vao().pointers[index] = AttribPointer{
		Buffer:     r.ArrayBuffer,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
}

func (r *Recorder) VertexAttribIPointer(index uint32, size int32, xtype device.DataType, stride int32, offset uintptr) {
	r.record("VertexAttribIPointer", index, size, xtype, stride, offset)
	r.vao().pointers[index] = AttribPointer{
		Buffer:  r.ArrayBuffer,
		Size:    size,
		Type:    xtype,
		Integer: true,
		Stride:  stride,
		Offset:  offset,
	}
}

func (r *Recorder) VertexAttribDivisor(index, divisor uint32) {
	r.record("VertexAttribDivisor", index, divisor)
	r.vao().divisors[index] = divisor
}

func (r *Recorder) vertexAttrib(name string, n int, index uint32, v []float32) {
	r.record(name, index, v)
	r.Constants[index] = append([]float32(nil), v[:n]...)
}

func (r *Recorder) VertexAttrib1fv(index uint32, v []float32) {
	r.vertexAttrib("VertexAttrib1fv", 1, index, v)
}

func (r *Recorder) VertexAttrib2fv(index uint32, v []float32) {
	r.vertexAttrib("VertexAttrib2fv", 2, index, v)
}

func (r *Recorder) VertexAttrib3fv(index uint32, v []float32) {
	r.vertexAttrib("VertexAttrib3fv", 3, index, v)
}

func (r *Recorder) VertexAttrib4fv(index uint32, v []float32) {
	r.vertexAttrib("VertexAttrib4fv", 4, index, v)
}

func (r *Recorder) setUniform(location int32, value UniformValue) {
	if r.UniformValues[r.CurrentProgram] == nil {
		r.UniformValues[r.CurrentProgram] = make(map[int32]UniformValue)
	}
	r.UniformValues[r.CurrentProgram][location] = value
}

func (r *Recorder) uniformf(name string, location int32, v []float32) {
	r.record(name, location, v)
	r.setUniform(location, UniformValue{Setter: name, Floats: append([]float32(nil), v...)})
}

func (r *Recorder) uniformi(name string, location int32, v []int32) {
	r.record(name, location, v)
	r.setUniform(location, UniformValue{Setter: name, Ints: append([]int32(nil), v...)})
}

func (r *Recorder) uniformMatrix(name string, location int32, transpose bool, v []float32) {
	r.record(name, location, transpose, v)
	r.setUniform(location, UniformValue{Setter: name, Floats: append([]float32(nil), v...), Transpose: transpose})
}

func (r *Recorder) Uniform1fv(location int32, v []float32) { r.uniformf("Uniform1fv", location, v) }
func (r *Recorder) Uniform2fv(location int32, v []float32) { r.uniformf("Uniform2fv", location, v) }
func (r *Recorder) Uniform3fv(location int32, v []float32) { r.uniformf("Uniform3fv", location, v) }
func (r *Recorder) Uniform4fv(location int32, v []float32) { r.uniformf("Uniform4fv", location, v) }
func (r *Recorder) Uniform1iv(location int32, v []int32)   { r.uniformi("Uniform1iv", location, v) }
func (r *Recorder) Uniform2iv(location int32, v []int32)   { r.uniformi("Uniform2iv", location, v) }
func (r *Recorder) Uniform3iv(location int32, v []int32)   { r.uniformi("Uniform3iv", location, v) }
func (r *Recorder) Uniform4iv(location int32, v []int32)   { r.uniformi("Uniform4iv", location, v) }

func (r *Recorder) UniformMatrix2fv(location int32, transpose bool, v []float32) {
	r.uniformMatrix("UniformMatrix2fv", location, transpose, v)
}

func (r *Recorder) UniformMatrix3fv(location int32, transpose bool, v []float32) {
	r.uniformMatrix("UniformMatrix3fv", location, transpose, v)
}

func (r *Recorder) UniformMatrix4fv(location int32, transpose bool, v []float32) {
	r.uniformMatrix("UniformMatrix4fv", location, transpose, v)
}

func (r *Recorder) DrawArrays(mode device.DrawMode, first, count int32) {
	r.record("DrawArrays", mode, first, count)
	r.Draws++
}

func (r *Recorder) DrawArraysInstanced(mode device.DrawMode, first, count, instanceCount int32) {
	r.record("DrawArraysInstanced", mode, first, count, instanceCount)
	r.Draws++
}

func (r *Recorder) DrawElements(mode device.DrawMode, count int32, xtype device.DataType, offset uintptr) {
	r.record("DrawElements", mode, count, xtype, offset)
	r.Draws++
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask uint32) {
	r.record("Clear", mask)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) Enable(capability device.Capability) {
	r.record("Enable", capability)
}
