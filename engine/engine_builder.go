package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithWindow sets the window whose frame loop the engine drives.
//
// Parameters:
//   - w: an open Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithDevice sets the device the engine clears and sizes the viewport on.
//
// Parameters:
//   - d: a device whose context is current on the window's thread
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDevice(d device.Device) EngineBuilderOption {
	return func(e *engine) {
		e.device = d
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the logic tick rate in ticks per second. Values <= 0 are treated as 60Hz.
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.tickRate = tickDuration(fps)
	}
}

// WithClearColor sets the color the framebuffer is cleared to each frame.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClearColor(r, g, b, a float32) EngineBuilderOption {
	return func(e *engine) {
		e.clearColor = [4]float32{r, g, b, a}
	}
}

// WithClearMask sets which buffers are cleared each frame. The default clears color and depth.
//
// Parameters:
//   - mask: a combination of device.ColorBufferBit and device.DepthBufferBit
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClearMask(mask uint32) EngineBuilderOption {
	return func(e *engine) {
		e.clearMask = mask
	}
}

// WithClock replaces the time source, e.g. with a fake clock in tests.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(now func() time.Time) EngineBuilderOption {
	return func(e *engine) {
		e.now = now
	}
}
