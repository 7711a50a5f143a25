// Package accessor provides typed handles to the attribute and uniform variables of a program.
// An accessor is created from a program and a variable name; its declared type decides which device entry point
// every write goes through.
package accessor

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/program"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
)

var (
	// ErrInvalidMode is returned when an attribute operation is not legal in the attribute's current mode.
	ErrInvalidMode = errors.New("operation not valid in current mode")

	// ErrNoSetter is returned when the variable's type has no entry point for the requested operation.
	ErrNoSetter = errors.New("type has no setter for this operation")

	// ErrSetterMismatch is returned when a uniform is written with values of the wrong family, e.g. ints for a vec3.
	ErrSetterMismatch = errors.New("setter does not match declared type")

	// ErrDataLength is returned when the number of values does not match the declared type's element count.
	ErrDataLength = errors.New("wrong number of values")
)

// variable is the state shared by attribute and uniform accessors.
type variable struct {
	prog program.Program
	loc  program.Location
	desc shader.TypeDescriptor
}

// newVariable types and resolves one declared variable.
func newVariable(p program.Program, name string, role shader.Role) (variable, error) {
	desc, err := p.Shader().Describe(name)
	if err != nil {
		return variable{}, fmt.Errorf("accessor: %s: %w", name, err)
	}
	loc, err := p.Resolve(name, role)
	if err != nil {
		return variable{}, fmt.Errorf("accessor: %s: %w", name, err)
	}
	return variable{prog: p, loc: loc, desc: desc}, nil
}

// errorf formats an error naming the variable.
func (v *variable) errorf(err error, format string, args ...any) error {
	return fmt.Errorf("accessor: %s: %s: %w", v.loc.Name, fmt.Sprintf(format, args...), err)
}

// checkLength verifies n values fill the declared type exactly.
func (v *variable) checkLength(n int) error {
	if n != v.desc.ElementCount {
		return v.errorf(ErrDataLength, "%s takes %d values, got %d", v.desc.Tag, v.desc.ElementCount, n)
	}
	return nil
}
