// Package program wraps a linked GL program object together with the parsed shader it was built from, and resolves
// the runtime locations of the variables that shader declares.
package program

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	lru "github.com/hashicorp/golang-lru"
)

var (
	// ErrInvalidProgram is returned when a program handle is zero or the program has been released.
	ErrInvalidProgram = errors.New("invalid program")

	// ErrInvalidLocation is returned when a name has no location in the program: the device reports none, usually
	// because the linker optimized the variable away, or the name is undeclared or declared with another role.
	// Errors for the last two also wrap ErrUndeclared or ErrRoleMismatch.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrRoleMismatch is returned when a variable is resolved with a role other than the one it was declared with.
	ErrRoleMismatch = errors.New("variable declared with a different role")

	// ErrUndeclared is shader.ErrUndeclared, returned when resolving a name no stage declares.
	ErrUndeclared = shader.ErrUndeclared
)

// Location is the resolved runtime location of one declared variable.
type Location struct {
	shader.Variable

	// Value is the raw location reported by the device.
	Value int32
}

// Attrib returns the location as an attribute slot index.
func (l Location) Attrib() uint32 {
	return uint32(l.Value)
}

// Uniform returns the location as a uniform location.
func (l Location) Uniform() int32 {
	return l.Value
}

// cacheKey identifies one memoized resolution.
type cacheKey struct {
	handle uint32
	name   string
	role   shader.Role
}

// program is the implementation of the Program interface.
type program struct {
	dev    device.Device
	handle uint32
	shader shader.Shader

	// owned programs are deleted on Release
	owned bool

	// restore holds the program that was current at each unmatched Enable
	restore []uint32

	cacheSize int
	cache     *lru.Cache
}

// Program is a linked GL program paired with the shader whose sources it was linked from.
// It is the context object every accessor resolves against and binds through.
//
// Program satisfies binding.Bindable: Enable makes it the current program and Disable reinstates the program that
// was current before the matching Enable. Any number of programs may share a device.
type Program interface {
	// Device returns the device the program lives on.
	Device() device.Device

	// Handle returns the GL program name, or 0 once released.
	Handle() uint32

	// Shader returns the parsed shader the program was built from.
	Shader() shader.Shader

	// Resolve returns the location of a declared variable. The device is queried on every call unless a location
	// cache was configured, and resolving never enables an attribute array.
	//
	// Parameters:
	//   - name: the variable name
	//   - role: the role the variable is expected to be declared with
	//
	// Returns:
	//   - Location: the variable and its location
	//   - error: wrapping ErrUndeclared, ErrRoleMismatch, ErrInvalidLocation or ErrInvalidProgram
	Resolve(name string, role shader.Role) (Location, error)

	// Enable makes this the current program.
	Enable()

	// Disable reinstates the program that was current when the matching Enable ran, or 0.
	Disable()

	// InUse reports whether this is the device's current program.
	InUse() bool

	// Release forgets cached locations and deletes the program object if this Program owns it.
	// The Program must not be used afterwards.
	Release()
}

var _ Program = &program{}

// New wraps an already linked program object. The program is not owned unless WithOwnership is given.
//
// Parameters:
//   - dev: the device the program was linked on
//   - handle: the GL program name
//   - sh: the shader the program was linked from
//   - options: program configuration
//
// Returns:
//   - Program: the wrapped program
//   - error: ErrInvalidProgram if handle is 0, or an error creating the location cache
func New(dev device.Device, handle uint32, sh shader.Shader, options ...ProgramBuilderOption) (Program, error) {
	if handle == 0 {
		return nil, fmt.Errorf("program: %s: %w", sh.Key(), ErrInvalidProgram)
	}

	p := &program{
		dev:    dev,
		handle: handle,
		shader: sh,
	}
	for _, opt := range options {
		opt(p)
	}

	if p.cacheSize > 0 {
		cache, err := lru.New(p.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("program: %s: failed to create location cache: %w", sh.Key(), err)
		}
		p.cache = cache
	}

	return p, nil
}

func (p *program) Device() device.Device {
	return p.dev
}

func (p *program) Handle() uint32 {
	return p.handle
}

func (p *program) Shader() shader.Shader {
	return p.shader
}

func (p *program) Enable() {
	p.restore = append(p.restore, p.dev.GetCurrentProgram())
	p.dev.UseProgram(p.handle)
}

func (p *program) Disable() {
	var prev uint32
	if n := len(p.restore); n > 0 {
		prev = p.restore[n-1]
		p.restore = p.restore[:n-1]
	}
	p.dev.UseProgram(prev)
}

func (p *program) InUse() bool {
	return p.handle != 0 && p.dev.GetCurrentProgram() == p.handle
}

func (p *program) Release() {
	if p.handle == 0 {
		return
	}
	if p.cache != nil {
		p.cache.Purge()
	}
	if p.owned {
		p.dev.DeleteProgram(p.handle)
	}
	p.handle = 0
	p.restore = nil
}
