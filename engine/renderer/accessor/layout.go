package accessor

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
)

// AttribLayout describes where an attribute's values sit in the bound array buffer.
type AttribLayout struct {
	// Stride is the byte distance between consecutive vertices. 0 means tightly packed.
	Stride int32

	// Offset is the byte offset of the first value within the buffer.
	Offset uintptr

	// Normalized maps integer source data to [0, 1] or [-1, 1]. Ignored for integer attributes.
	Normalized bool

	// Type is the element type of the source data. The zero value uses the declared type's native kind.
	Type device.DataType
}

// InterleavedLayouts computes the layouts of attributes packed back to back in one vertex, in the given order.
//
// Parameters:
//   - tags: the declared types of the packed attributes
//
// Returns:
//   - []AttribLayout: one layout per tag, sharing the vertex stride
//   - error: wrapping shader.ErrUnknownType
func InterleavedLayouts(tags ...shader.TypeTag) ([]AttribLayout, error) {
	stride, offsets, err := shader.Interleave(tags...)
	if err != nil {
		return nil, err
	}
	layouts := make([]AttribLayout, len(tags))
	for i, off := range offsets {
		layouts[i] = AttribLayout{Stride: int32(stride), Offset: uintptr(off)}
	}
	return layouts, nil
}
