package binding

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// ErrNoData is returned by Update when nothing has been uploaded yet.
var ErrNoData = errors.New("buffer has no data")

// Element is the set of scalar types a Buffer can hold.
type Element interface {
	~float32 | ~int32 | ~uint32 | ~uint16 | ~uint8
}

// buffer is the implementation of the Buffer interface.
type buffer[T Element] struct {
	dev    device.Device
	handle uint32
	target device.BufferTarget
	usage  device.BufferUsage
	label  string

	// data is the shadow copy of the last upload. It aliases the caller's slice.
	data     []T
	uploaded bool

	// restore holds the buffer bound to target at each unmatched Enable
	restore []uint32
}

// Buffer is a GL buffer object bound to one target, holding a CPU-side shadow of its contents.
// The shadow is the caller's slice, so it can be modified in place and re-sent with Update.
type Buffer[T Element] interface {
	Bindable

	// Label returns the debug label the buffer was created with.
	Label() string

	// Handle returns the GL buffer name, or 0 once released.
	Handle() uint32

	// Target returns the binding target the buffer was created for.
	Target() device.BufferTarget

	// Usage returns the usage hint sent with every upload.
	Usage() device.BufferUsage

	// Enabled reports whether the buffer is the one currently bound to its target on the device.
	Enabled() bool

	// Upload replaces the buffer contents with data and keeps data as the shadow without copying it.
	// The buffer is bound for the transfer and the target's previous binding is restored afterwards.
	//
	// Parameters:
	//   - data: the new contents
	Upload(data []T)

	// Update re-sends the current shadow, picking up in-place modifications.
	//
	// Returns:
	//   - error: ErrNoData if Upload was never called
	Update() error

	// Data returns the shadow slice. Writes to it reach the GPU on the next Update.
	Data() []T

	// Len returns the number of elements in the shadow.
	Len() int

	// ByteSize returns the size of the shadow in bytes.
	ByteSize() int

	// Release deletes the buffer object.
	Release()
}

var _ Buffer[float32] = &buffer[float32]{}

// NewBuffer generates a buffer object for target. The buffer holds no data until Upload or WithData.
//
// Parameters:
//   - dev: the device to create the buffer on
//   - target: the binding target, e.g. device.BufferTargetArray
//   - options: buffer configuration
//
// Returns:
//   - Buffer[T]: the new buffer
func NewBuffer[T Element](dev device.Device, target device.BufferTarget, options ...BufferBuilderOption) Buffer[T] {
	cfg := bufferConfig{usage: device.BufferUsageStaticDraw}
	for _, opt := range options {
		opt(&cfg)
	}

	b := &buffer[T]{
		dev:    dev,
		handle: dev.GenBuffer(),
		target: target,
		usage:  cfg.usage,
		label:  cfg.label,
	}

	if cfg.data != nil {
		data, ok := cfg.data.([]T)
		if !ok {
			panic(fmt.Sprintf("binding: buffer %q: initial data is %T, expected %T", cfg.label, cfg.data, []T(nil)))
		}
		b.Upload(data)
	}
	return b
}

func (b *buffer[T]) Enable() {
	b.restore = append(b.restore, b.dev.GetBufferBinding(b.target))
	b.dev.BindBuffer(b.target, b.handle)
}

func (b *buffer[T]) Disable() {
	var prev uint32
	if n := len(b.restore); n > 0 {
		prev = b.restore[n-1]
		b.restore = b.restore[:n-1]
	}
	b.dev.BindBuffer(b.target, prev)
}

func (b *buffer[T]) Label() string {
	return b.label
}

func (b *buffer[T]) Handle() uint32 {
	return b.handle
}

func (b *buffer[T]) Target() device.BufferTarget {
	return b.target
}

func (b *buffer[T]) Usage() device.BufferUsage {
	return b.usage
}

func (b *buffer[T]) Enabled() bool {
	return b.handle != 0 && b.dev.GetBufferBinding(b.target) == b.handle
}

func (b *buffer[T]) Upload(data []T) {
	b.data = data
	b.uploaded = true
	b.transmit()
}

func (b *buffer[T]) Update() error {
	if !b.uploaded {
		return fmt.Errorf("binding: buffer %q: %w", b.label, ErrNoData)
	}
	b.transmit()
	return nil
}

func (b *buffer[T]) Data() []T {
	return b.data
}

func (b *buffer[T]) Len() int {
	return len(b.data)
}

func (b *buffer[T]) ByteSize() int {
	return len(b.data) * common.ElementSize[T]()
}

func (b *buffer[T]) Release() {
	if b.handle == 0 {
		return
	}
	b.dev.DeleteBuffer(b.handle)
	b.handle = 0
	b.restore = nil
}

// transmit sends the whole shadow to the device. Restoring the previous binding keeps an element array buffer
// recorded in an enclosing vertex array.
func (b *buffer[T]) transmit() {
	_ = Bind(b, func() error {
		b.dev.BufferData(b.target, common.SliceToBytes(b.data), b.usage)
		return nil
	})
}

// IndexType returns the device data type of an index element type, for DrawElements.
//
// Returns:
//   - device.DataType: DataTypeUnsignedByte, DataTypeUnsignedShort or DataTypeUnsignedInt
func IndexType[T uint8 | uint16 | uint32]() device.DataType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return device.DataTypeUnsignedByte
	case uint16:
		return device.DataTypeUnsignedShort
	default:
		return device.DataTypeUnsignedInt
	}
}
