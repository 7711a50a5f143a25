package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, frame time and heap statistics, and writes them to the log at a fixed interval.
type Profiler struct {
	now            func() time.Time
	updateInterval time.Duration

	frameCount int
	lastTime   time.Time
	lastFrame  time.Time
	maxFrame   time.Duration

	fps      float64
	memStats runtime.MemStats
}

// NewProfiler creates a new Profiler with the given options. The update interval defaults to 1 second.
//
// Parameters:
//   - options: profiler configuration
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	p.lastFrame = p.lastTime
	return p
}

// Tick should be called once per presented frame.
// When the update interval has elapsed it logs the average FPS, the longest frame, heap usage and GC count.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	current := p.now()
	p.frameCount++
	if frame := current.Sub(p.lastFrame); frame > p.maxFrame {
		p.maxFrame = frame
	}
	p.lastFrame = current

	elapsed := current.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	p.fps = float64(p.frameCount) / elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)
	log.Printf("[Profiler] FPS: %.2f | Frame: %.2f ms avg, %.2f ms max | Heap: %.2f MB | GC: %d",
		p.fps,
		float64(elapsed.Microseconds())/1000/float64(p.frameCount),
		float64(p.maxFrame.Microseconds())/1000,
		float64(p.memStats.Alloc)/1024/1024,
		p.memStats.NumGC,
	)

	p.frameCount = 0
	p.maxFrame = 0
	p.lastTime = current
	return true
}

// FPS returns the frame rate measured over the last completed interval, or 0 before the first one.
func (p *Profiler) FPS() float64 {
	return p.fps
}
