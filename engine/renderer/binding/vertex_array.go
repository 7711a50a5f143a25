package binding

import "github.com/Carmen-Shannon/oxy-gl/engine/device"

// vertexArray is the implementation of the VertexArray interface.
type vertexArray struct {
	dev    device.Device
	handle uint32
	label  string

	// restore holds the vertex array bound at each unmatched Enable
	restore []uint32
}

// VertexArray is a GL vertex array object. While it is enabled, attribute array state and the element array
// buffer binding are recorded into it.
type VertexArray interface {
	Bindable

	// Label returns the debug label the vertex array was created with.
	Label() string

	// Handle returns the GL vertex array name, or 0 once released.
	Handle() uint32

	// Enabled reports whether the vertex array is the one currently bound on the device.
	Enabled() bool

	// Release deletes the vertex array object.
	Release()
}

var _ VertexArray = &vertexArray{}

// NewVertexArray generates a vertex array object.
//
// Parameters:
//   - dev: the device to create the vertex array on
//   - options: vertex array configuration
//
// Returns:
//   - VertexArray: the new vertex array
func NewVertexArray(dev device.Device, options ...VertexArrayBuilderOption) VertexArray {
	va := &vertexArray{dev: dev}
	for _, opt := range options {
		opt(va)
	}
	va.handle = dev.GenVertexArray()
	return va
}

func (va *vertexArray) Enable() {
	va.restore = append(va.restore, va.dev.GetVertexArrayBinding())
	va.dev.BindVertexArray(va.handle)
}

func (va *vertexArray) Disable() {
	var prev uint32
	if n := len(va.restore); n > 0 {
		prev = va.restore[n-1]
		va.restore = va.restore[:n-1]
	}
	va.dev.BindVertexArray(prev)
}

func (va *vertexArray) Label() string {
	return va.label
}

func (va *vertexArray) Handle() uint32 {
	return va.handle
}

func (va *vertexArray) Enabled() bool {
	return va.handle != 0 && va.dev.GetVertexArrayBinding() == va.handle
}

func (va *vertexArray) Release() {
	if va.handle == 0 {
		return
	}
	va.dev.DeleteVertexArray(va.handle)
	va.handle = 0
	va.restore = nil
}
