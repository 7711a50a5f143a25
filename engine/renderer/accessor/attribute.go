package accessor

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/program"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
)

// attribute is the implementation of the Attribute interface.
type attribute struct {
	variable
	enabled bool
}

// Attribute is a typed handle to one vertex attribute of a program.
//
// An attribute is either Disabled, reading the constant set by SetFallback, or Enabled, reading per-vertex values
// from the array buffer described by SetArrayBuffer. Matrix attributes occupy one slot per column starting at
// their location; every operation applies to all of them.
//
// The enable flag lives in whichever vertex array is bound on the device. The accessor tracks the mode it last set
// and does not observe vertex array switches.
type Attribute interface {
	// Name returns the variable name.
	Name() string

	// Type returns the declared type descriptor.
	Type() shader.TypeDescriptor

	// Location returns the resolved location.
	Location() program.Location

	// Enabled reports whether the attribute reads from an array buffer.
	Enabled() bool

	// EnableArray switches the attribute to read from the array buffer. Calling it again has no effect.
	EnableArray()

	// DisableArray switches the attribute back to its constant value. Calling it again has no effect.
	DisableArray()

	// SetFallback sets the constant value used while the attribute is disabled.
	//
	// Parameters:
	//   - data: exactly as many values as the declared type has elements, column-major for matrices
	//
	// Returns:
	//   - error: wrapping ErrInvalidMode, ErrNoSetter or ErrDataLength
	SetFallback(data ...float32) error

	// SetArrayBuffer points the attribute at the array buffer currently bound on the device.
	// The layout fields are passed through without validation.
	//
	// Parameters:
	//   - layout: stride, offset and normalization of the source data
	//
	// Returns:
	//   - error: wrapping ErrInvalidMode or ErrNoSetter
	SetArrayBuffer(layout AttribLayout) error

	// SetDivisor sets the instancing divisor. 0 advances per vertex, n advances every n instances.
	//
	// Parameters:
	//   - divisor: the divisor for every slot of the attribute
	SetDivisor(divisor uint32)
}

var _ Attribute = &attribute{}

// NewAttribute creates a handle to a declared attribute. The attribute starts Disabled, and creating it never
// touches the enable state on the device.
//
// Parameters:
//   - p: the program declaring the attribute
//   - name: the attribute name
//
// Returns:
//   - Attribute: the new handle
//   - error: wrapping shader.ErrUndeclared, shader.ErrUnknownType, program.ErrRoleMismatch or
//     program.ErrInvalidLocation
func NewAttribute(p program.Program, name string) (Attribute, error) {
	v, err := newVariable(p, name, shader.RoleAttribute)
	if err != nil {
		return nil, err
	}
	return &attribute{variable: v}, nil
}

func (a *attribute) Name() string {
	return a.loc.Name
}

func (a *attribute) Type() shader.TypeDescriptor {
	return a.desc
}

func (a *attribute) Location() program.Location {
	return a.loc
}

func (a *attribute) Enabled() bool {
	return a.enabled
}

func (a *attribute) EnableArray() {
	if a.enabled {
		return
	}
	dev := a.prog.Device()
	for i := range a.desc.Columns {
		dev.EnableVertexAttribArray(a.slot(i))
	}
	a.enabled = true
}

func (a *attribute) DisableArray() {
	if !a.enabled {
		return
	}
	dev := a.prog.Device()
	for i := range a.desc.Columns {
		dev.DisableVertexAttribArray(a.slot(i))
	}
	a.enabled = false
}

func (a *attribute) SetFallback(data ...float32) error {
	if a.enabled {
		return a.errorf(ErrInvalidMode, "constant value set while reading from an array buffer")
	}
	if a.desc.AttribSetter == shader.AttribSetterNone {
		return a.errorf(ErrNoSetter, "%s has no constant attribute setter", a.desc.Tag)
	}
	if err := a.checkLength(len(data)); err != nil {
		return err
	}

	dev := a.prog.Device()
	size := a.desc.ColumnSize()
	for i := range a.desc.Columns {
		col := data[i*size : (i+1)*size]
		switch a.desc.AttribSetter {
		case shader.AttribSetter1fv:
			dev.VertexAttrib1fv(a.slot(i), col)
		case shader.AttribSetter2fv:
			dev.VertexAttrib2fv(a.slot(i), col)
		case shader.AttribSetter3fv:
			dev.VertexAttrib3fv(a.slot(i), col)
		case shader.AttribSetter4fv:
			dev.VertexAttrib4fv(a.slot(i), col)
		}
	}
	return nil
}

func (a *attribute) SetArrayBuffer(layout AttribLayout) error {
	if !a.enabled {
		return a.errorf(ErrInvalidMode, "array buffer set while disabled")
	}
	if a.desc.Kind == shader.KindBool {
		return a.errorf(ErrNoSetter, "%s cannot be read from an array buffer", a.desc.Tag)
	}

	xtype := layout.Type
	if xtype == 0 {
		xtype = a.desc.DataType()
	}

	dev := a.prog.Device()
	size := a.desc.ColumnSize()
	columnBytes := uintptr(size * a.desc.ElementSize)
	for i := range a.desc.Columns {
		offset := layout.Offset + uintptr(i)*columnBytes
		if a.desc.Kind == shader.KindInt {
			dev.VertexAttribIPointer(a.slot(i), int32(size), xtype, layout.Stride, offset)
			continue
		}
		dev.VertexAttribPointer(a.slot(i), int32(size), xtype, layout.Normalized, layout.Stride, offset)
	}
	return nil
}

func (a *attribute) SetDivisor(divisor uint32) {
	dev := a.prog.Device()
	for i := range a.desc.Columns {
		dev.VertexAttribDivisor(a.slot(i), divisor)
	}
}

// slot returns the attribute slot of column i.
func (a *attribute) slot(i int) uint32 {
	return a.loc.Attrib() + uint32(i)
}
