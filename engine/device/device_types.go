package device

// DataType identifies the native element type of vertex or index data. Values are the GL enum values.
type DataType uint32

const (
	// DataTypeByte is a signed 8-bit integer.
	DataTypeByte DataType = 0x1400
	// DataTypeUnsignedByte is an unsigned 8-bit integer, used for small index buffers.
	DataTypeUnsignedByte DataType = 0x1401
	// DataTypeShort is a signed 16-bit integer.
	DataTypeShort DataType = 0x1402
	// DataTypeUnsignedShort is an unsigned 16-bit integer.
	DataTypeUnsignedShort DataType = 0x1403
	// DataTypeInt is a signed 32-bit integer.
	DataTypeInt DataType = 0x1404
	// DataTypeUnsignedInt is an unsigned 32-bit integer.
	DataTypeUnsignedInt DataType = 0x1405
	// DataTypeFloat is a 32-bit IEEE float.
	DataTypeFloat DataType = 0x1406
	// DataTypeBool is the GLSL boolean type.
	DataTypeBool DataType = 0x8B56
)

// String returns the GL enum name of the data type.
func (t DataType) String() string {
	switch t {
	case DataTypeByte:
		return "BYTE"
	case DataTypeUnsignedByte:
		return "UNSIGNED_BYTE"
	case DataTypeShort:
		return "SHORT"
	case DataTypeUnsignedShort:
		return "UNSIGNED_SHORT"
	case DataTypeInt:
		return "INT"
	case DataTypeUnsignedInt:
		return "UNSIGNED_INT"
	case DataTypeFloat:
		return "FLOAT"
	case DataTypeBool:
		return "BOOL"
	default:
		return "UNKNOWN"
	}
}

// BufferTarget is the binding point a buffer object is bound to.
type BufferTarget uint32

const (
	// BufferTargetArray holds vertex attribute data.
	BufferTargetArray BufferTarget = 0x8892
	// BufferTargetElementArray holds vertex indices. Its binding is captured by the bound vertex array.
	BufferTargetElementArray BufferTarget = 0x8893
	// BufferTargetUniform holds uniform block data.
	BufferTargetUniform BufferTarget = 0x8A11
)

// String returns the GL enum name of the buffer target.
func (t BufferTarget) String() string {
	switch t {
	case BufferTargetArray:
		return "ARRAY_BUFFER"
	case BufferTargetElementArray:
		return "ELEMENT_ARRAY_BUFFER"
	case BufferTargetUniform:
		return "UNIFORM_BUFFER"
	default:
		return "UNKNOWN_BUFFER"
	}
}

// BufferUsage is the hint passed to BufferData describing how often the contents change.
type BufferUsage uint32

const (
	// BufferUsageStaticDraw indicates data modified once (or rarely) and drawn many times.
	BufferUsageStaticDraw BufferUsage = 0x88E4
	// BufferUsageDynamicDraw indicates data modified repeatedly and drawn many times.
	BufferUsageDynamicDraw BufferUsage = 0x88E8
	// BufferUsageStreamDraw indicates data modified once and drawn a few times.
	BufferUsageStreamDraw BufferUsage = 0x88E0
)

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage uint32

const (
	// ShaderStageVertex is the vertex shader stage.
	ShaderStageVertex ShaderStage = 0x8B31
	// ShaderStageFragment is the fragment shader stage.
	ShaderStageFragment ShaderStage = 0x8B30
)

// String returns a short lowercase name for the stage, used in log and error messages.
func (s ShaderStage) String() string {
	switch s {
	case ShaderStageVertex:
		return "vertex"
	case ShaderStageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// DrawMode is the primitive topology of a draw call.
type DrawMode uint32

const (
	DrawModePoints        DrawMode = 0x0000
	DrawModeLines         DrawMode = 0x0001
	DrawModeTriangles     DrawMode = 0x0004
	DrawModeTriangleStrip DrawMode = 0x0005
)

// Capability is a server-side GL capability toggled with Enable.
type Capability uint32

const (
	// CapabilityBlend enables color blending.
	CapabilityBlend Capability = 0x0BE2
	// CapabilityDepthTest enables depth comparisons.
	CapabilityDepthTest Capability = 0x0B71
	// CapabilityProgramPointSize lets the vertex shader write gl_PointSize.
	CapabilityProgramPointSize Capability = 0x8642
)

const (
	// ColorBufferBit selects the color buffer in Clear.
	ColorBufferBit uint32 = 0x00004000
	// DepthBufferBit selects the depth buffer in Clear.
	DepthBufferBit uint32 = 0x00000100
)

// NullLocation is the value GL returns for a name with no active location.
const NullLocation int32 = -1
