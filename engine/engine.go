// Package engine drives the frame loop of a window: fixed-rate logic ticks, clearing, drawing and profiling, all on
// the thread that owns the OpenGL context.
package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// maxTicksPerFrame bounds catch-up ticks after a stall.
const maxTicksPerFrame = 8

// engine implements the Engine interface.
type engine struct {
	window window.Window
	device device.Device
	now    func() time.Time

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate     time.Duration
	accumulator  time.Duration
	lastFrame    time.Time
	tickCallback func(deltaTime float32)

	renderCallback func(deltaTime float32)
	resizeCallback func(width, height int)

	clearColor [4]float32
	clearMask  uint32
}

// Engine is the main entry point for the engine. It owns the frame loop of one window and its device.
//
// GL state belongs to the thread that created the context, so unlike a multi-threaded renderer every callback runs
// on the window's thread: ticks are stepped at a fixed rate from inside the frame loop.
type Engine interface {
	// Window returns the underlying window.
	Window() window.Window

	// Device returns the device draws are issued on.
	Device() device.Device

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the logic tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each logic tick.
	//
	// Parameters:
	//   - callback: function receiving the fixed tick length in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each frame after the framebuffer is cleared.
	//
	// Parameters:
	//   - callback: function receiving the time since the previous frame in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetResizeCallback registers the function called after the viewport follows a framebuffer resize.
	//
	// Parameters:
	//   - callback: function receiving the new framebuffer size in pixels
	SetResizeCallback(callback func(width, height int))

	// Frame runs one frame: pending ticks, clear, render callback, profiler.
	// Run calls it once per window iteration.
	Frame()

	// Run starts the frame loop and blocks until the window closes.
	Run()

	// Quit closes the window, ending Run.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine. WithWindow and WithDevice are required.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		now:        time.Now,
		tickRate:   time.Second / 60,
		clearColor: [4]float32{0, 0, 0, 1},
		clearMask:  device.ColorBufferBit | device.DepthBufferBit,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.window == nil || e.device == nil {
		panic("engine: a window and a device are required")
	}
	e.profiler = profiler.NewProfiler(profiler.WithClock(e.now))

	e.device.Viewport(0, 0, int32(e.window.Width()), int32(e.window.Height()))
	e.window.SetResizeCallback(func(width, height int) {
		e.device.Viewport(0, 0, int32(width), int32(height))
		if e.resizeCallback != nil {
			e.resizeCallback(width, height)
		}
	})
	e.window.SetUpdateCallback(e.Frame)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Device() device.Device {
	return e.device
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(fps float64) {
	e.tickRate = tickDuration(fps)
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.resizeCallback = callback
}

func (e *engine) Run() {
	e.lastFrame = e.now()
	e.window.Run()
}

func (e *engine) Quit() {
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] failed to close window: %v", err)
	}
}

func (e *engine) Frame() {
	now := e.now()
	if e.lastFrame.IsZero() {
		e.lastFrame = now
	}
	dt := now.Sub(e.lastFrame)
	e.lastFrame = now

	e.accumulator += dt
	for ticks := 0; e.accumulator >= e.tickRate; ticks++ {
		if ticks == maxTicksPerFrame {
			e.accumulator = 0
			break
		}
		if e.tickCallback != nil {
			e.tickCallback(float32(e.tickRate.Seconds()))
		}
		e.accumulator -= e.tickRate
	}

	e.device.ClearColor(e.clearColor[0], e.clearColor[1], e.clearColor[2], e.clearColor[3])
	e.device.Clear(e.clearMask)

	if e.renderCallback != nil {
		e.renderCallback(float32(dt.Seconds()))
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
}

// tickDuration converts a rate to a tick length, defaulting to 60Hz.
func tickDuration(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
