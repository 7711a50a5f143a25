// Package device describes the subset of OpenGL entry points used by the binding layer.
//
// Everything above this package talks to the GPU only through Device, so the shader typing core and the binding
// state model can run against the real driver (see package gogl) or against an in-memory recorder in tests
// (see package devicetest). All methods operate on the GL context current on the calling thread.
package device

// Device is the OpenGL entry-point surface consumed by the program, binding and accessor packages.
//
// Object names (shaders, programs, buffers, vertex arrays) are the raw uint32 GL names, 0 meaning "none".
// Location lookups return NullLocation (-1) when the name has no active location in the linked program.
type Device interface {
	// CreateShader creates an empty shader object for the given stage.
	//
	// Parameters:
	//   - stage: the pipeline stage of the shader
	//
	// Returns:
	//   - uint32: the shader object name, 0 on failure
	CreateShader(stage ShaderStage) uint32

	// ShaderSource replaces the source code of a shader object.
	ShaderSource(shader uint32, source string)

	// CompileShader compiles the source of a shader object.
	CompileShader(shader uint32)

	// ShaderCompiled reports the COMPILE_STATUS of a shader object.
	ShaderCompiled(shader uint32) bool

	// ShaderInfoLog returns the compiler log of a shader object.
	ShaderInfoLog(shader uint32) string

	// DeleteShader flags a shader object for deletion.
	DeleteShader(shader uint32)

	// CreateProgram creates an empty program object.
	CreateProgram() uint32

	// AttachShader attaches a compiled shader object to a program.
	AttachShader(program, shader uint32)

	// LinkProgram links the shaders attached to a program.
	LinkProgram(program uint32)

	// ProgramLinked reports the LINK_STATUS of a program object.
	ProgramLinked(program uint32) bool

	// ProgramInfoLog returns the linker log of a program object.
	ProgramInfoLog(program uint32) string

	// DeleteProgram flags a program object for deletion.
	DeleteProgram(program uint32)

	// UseProgram installs a program as part of the current rendering state. 0 uninstalls.
	UseProgram(program uint32)

	// GetCurrentProgram returns the program installed by the last UseProgram, or 0.
	GetCurrentProgram() uint32

	// GetAttribLocation returns the attribute slot bound to name in a linked program.
	//
	// Parameters:
	//   - program: the linked program
	//   - name: the attribute variable name
	//
	// Returns:
	//   - int32: the slot, or a negative value if the name is not an active attribute
	GetAttribLocation(program uint32, name string) int32

	// GetUniformLocation returns the location of a uniform variable in a linked program.
	//
	// Parameters:
	//   - program: the linked program
	//   - name: the uniform variable name
	//
	// Returns:
	//   - int32: the location, or NullLocation if the name is not an active uniform
	GetUniformLocation(program uint32, name string) int32

	// GenBuffer creates one buffer object name.
	GenBuffer() uint32

	// BindBuffer binds a buffer object to a target. Binding 0 unbinds the target.
	BindBuffer(target BufferTarget, buffer uint32)

	// GetBufferBinding returns the buffer bound to target, or 0. The element array binding is the one recorded in
	// the bound vertex array.
	GetBufferBinding(target BufferTarget) uint32

	// BufferData (re)allocates the store of the buffer bound to target and fills it with data.
	BufferData(target BufferTarget, data []byte, usage BufferUsage)

	// DeleteBuffer deletes a buffer object.
	DeleteBuffer(buffer uint32)

	// GenVertexArray creates one vertex array object name.
	GenVertexArray() uint32

	// BindVertexArray binds a vertex array object. Binding 0 unbinds.
	BindVertexArray(array uint32)

	// GetVertexArrayBinding returns the bound vertex array, or 0.
	GetVertexArrayBinding() uint32

	// DeleteVertexArray deletes a vertex array object.
	DeleteVertexArray(array uint32)

	// EnableVertexAttribArray makes an attribute slot read from the bound array buffer.
	EnableVertexAttribArray(index uint32)

	// DisableVertexAttribArray makes an attribute slot use its constant (current) value.
	DisableVertexAttribArray(index uint32)

	// VertexAttribPointer describes float data for an attribute slot in the currently bound array buffer.
	//
	// Parameters:
	//   - index: the attribute slot
	//   - size: components per vertex (1-4)
	//   - xtype: the element type of the data in the buffer
	//   - normalized: whether integer data is normalized to [0,1] or [-1,1]
	//   - stride: byte distance between consecutive records, 0 for tightly packed
	//   - offset: byte offset of the first component within the buffer
	VertexAttribPointer(index uint32, size int32, xtype DataType, normalized bool, stride int32, offset uintptr)

	// VertexAttribIPointer is VertexAttribPointer for integer attributes, which are never converted to float.
	VertexAttribIPointer(index uint32, size int32, xtype DataType, stride int32, offset uintptr)

	// VertexAttribDivisor sets how many instances pass before an attribute slot advances. 0 means per vertex.
	VertexAttribDivisor(index, divisor uint32)

	// VertexAttrib1fv sets the constant value of a float attribute slot.
	VertexAttrib1fv(index uint32, v []float32)
	// VertexAttrib2fv sets the constant value of a vec2 attribute slot.
	VertexAttrib2fv(index uint32, v []float32)
	// VertexAttrib3fv sets the constant value of a vec3 attribute slot.
	VertexAttrib3fv(index uint32, v []float32)
	// VertexAttrib4fv sets the constant value of a vec4 attribute slot.
	VertexAttrib4fv(index uint32, v []float32)

	// Uniform1fv through Uniform4iv set scalar and vector uniforms of the program in use.
	// len(v) is a multiple of the component count; each group fills one array element.
	Uniform1fv(location int32, v []float32)
	Uniform2fv(location int32, v []float32)
	Uniform3fv(location int32, v []float32)
	Uniform4fv(location int32, v []float32)
	Uniform1iv(location int32, v []int32)
	Uniform2iv(location int32, v []int32)
	Uniform3iv(location int32, v []int32)
	Uniform4iv(location int32, v []int32)

	// UniformMatrix2fv through UniformMatrix4fv set matrix uniforms of the program in use.
	// Matrices are column-major unless transpose is set.
	UniformMatrix2fv(location int32, transpose bool, v []float32)
	UniformMatrix3fv(location int32, transpose bool, v []float32)
	UniformMatrix4fv(location int32, transpose bool, v []float32)

	// DrawArrays renders primitives from the enabled attribute arrays.
	DrawArrays(mode DrawMode, first, count int32)

	// DrawArraysInstanced renders instanceCount instances of DrawArrays.
	DrawArraysInstanced(mode DrawMode, first, count, instanceCount int32)

	// DrawElements renders primitives indexed by the bound element array buffer.
	DrawElements(mode DrawMode, count int32, xtype DataType, offset uintptr)

	// ClearColor sets the color used by Clear.
	ClearColor(r, g, b, a float32)

	// Clear clears the buffers selected by mask (ColorBufferBit, DepthBufferBit).
	Clear(mask uint32)

	// Viewport sets the mapping from normalized device coordinates to window coordinates.
	Viewport(x, y, width, height int32)

	// Enable enables a server-side capability.
	Enable(capability Capability)
}
