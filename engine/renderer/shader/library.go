package shader

import (
	"errors"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// libraryEntry is one shader registered with a Library.
type libraryEntry struct {
	key     string
	options []ShaderBuilderOption
}

// library is the implementation of the Library interface.
type library struct {
	entries        []libraryEntry
	workers        int
	logDiagnostics bool

	// pool is created by the first Load and shared by every later one
	poolOnce sync.Once
	pool     worker.DynamicWorkerPool
}

// Library collects shader definitions and builds them together. Each shader is read and parsed on the worker
// pool; the stages of a single shader are always merged in stage order by one worker. The pool is started by the
// first Load and its workers live as long as the Library.
type Library interface {
	// Add registers a shader definition. A later Add with the same key replaces the earlier one.
	//
	// Parameters:
	//   - key: the shader key
	//   - options: the shader's builder options
	Add(key string, options ...ShaderBuilderOption)

	// Keys returns the registered keys in registration order.
	Keys() []string

	// Load builds every registered shader concurrently and waits for all of them.
	//
	// Returns:
	//   - map[string]Shader: the shaders that built successfully, keyed by key
	//   - error: the joined errors of the shaders that failed, or nil
	Load() (map[string]Shader, error)
}

var _ Library = &library{}

// NewLibrary creates an empty Library. The worker count defaults to one less than the number of CPUs.
//
// Parameters:
//   - options: library configuration
//
// Returns:
//   - Library: the new library
func NewLibrary(options ...LibraryOption) Library {
	l := &library{
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *library) Add(key string, options ...ShaderBuilderOption) {
	for i, e := range l.entries {
		if e.key == key {
			l.entries[i].options = options
			return
		}
	}
	l.entries = append(l.entries, libraryEntry{key: key, options: options})
}

func (l *library) Keys() []string {
	keys := make([]string, len(l.entries))
	for i, e := range l.entries {
		keys[i] = e.key
	}
	return keys
}

func (l *library) Load() (map[string]Shader, error) {
	shaders := make(map[string]Shader, len(l.entries))
	if len(l.entries) == 0 {
		return shaders, nil
	}

	l.poolOnce.Do(func() {
		l.pool = worker.NewDynamicWorkerPool(l.workers, l.workers*4, time.Second)
	})

	// pool.Wait() depends on worker idle-exit, so a WaitGroup is the barrier.
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs = make([]error, len(l.entries))
	)
	for i, e := range l.entries {
		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: e.key,
			Do: func() (any, error) {
				defer wg.Done()
				s, err := NewShader(e.key, e.options...)
				if err != nil {
					errs[i] = err
					return nil, err
				}
				mu.Lock()
				shaders[e.key] = s
				mu.Unlock()
				return s, nil
			},
		})
	}
	wg.Wait()

	if l.logDiagnostics {
		for _, e := range l.entries {
			s, ok := shaders[e.key]
			if !ok {
				continue
			}
			for _, d := range s.Diagnostics() {
				log.Printf("[Shader] %s: %s", e.key, d)
			}
		}
	}

	return shaders, errors.Join(errs...)
}
