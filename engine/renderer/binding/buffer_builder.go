package binding

import "github.com/Carmen-Shannon/oxy-gl/engine/device"

// bufferConfig collects buffer options before the element type is known.
type bufferConfig struct {
	usage device.BufferUsage
	label string
	data  any
}

// BufferBuilderOption is a functional option used to configure a Buffer during construction.
type BufferBuilderOption func(*bufferConfig)

// WithUsage sets the usage hint sent with every upload. The default is device.BufferUsageStaticDraw.
//
// Parameters:
//   - usage: the usage hint
//
// Returns:
//   - BufferBuilderOption: option function to apply
func WithUsage(usage device.BufferUsage) BufferBuilderOption {
	return func(c *bufferConfig) {
		c.usage = usage
	}
}

// WithLabel sets a debug label used in error messages.
//
// Parameters:
//   - label: the label
//
// Returns:
//   - BufferBuilderOption: option function to apply
func WithLabel(label string) BufferBuilderOption {
	return func(c *bufferConfig) {
		c.label = label
	}
}

// WithData uploads data when the buffer is created. Its element type must match the buffer's,
// otherwise NewBuffer panics.
//
// Parameters:
//   - data: the initial contents, kept as the shadow
//
// Returns:
//   - BufferBuilderOption: option function to apply
func WithData[T Element](data []T) BufferBuilderOption {
	return func(c *bufferConfig) {
		c.data = data
	}
}
