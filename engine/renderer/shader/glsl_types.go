package shader

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

// ErrUnknownType is returned when a GLSL type name is not present in the type registry.
var ErrUnknownType = errors.New("unknown GLSL type")

// TypeTag is a GLSL type name as written in shader source, e.g. "vec3" or "mat4".
type TypeTag string

const (
	TypeFloat TypeTag = "float"
	TypeVec2  TypeTag = "vec2"
	TypeVec3  TypeTag = "vec3"
	TypeVec4  TypeTag = "vec4"
	TypeInt   TypeTag = "int"
	TypeIVec2 TypeTag = "ivec2"
	TypeIVec3 TypeTag = "ivec3"
	TypeIVec4 TypeTag = "ivec4"
	TypeBool  TypeTag = "bool"
	TypeBVec2 TypeTag = "bvec2"
	TypeBVec3 TypeTag = "bvec3"
	TypeBVec4 TypeTag = "bvec4"
	TypeMat2  TypeTag = "mat2"
	TypeMat3  TypeTag = "mat3"
	TypeMat4  TypeTag = "mat4"
)

// NativeKind is the scalar element kind a GLSL type is made of.
type NativeKind int

const (
	KindFloat NativeKind = iota
	KindInt
	KindBool
)

// String returns the lowercase name of the kind.
func (k NativeKind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// DataType returns the device data type used when describing this kind to the GPU.
func (k NativeKind) DataType() device.DataType {
	switch k {
	case KindInt:
		return device.DataTypeInt
	case KindBool:
		return device.DataTypeBool
	default:
		return device.DataTypeFloat
	}
}

// UniformSetter names the GL entry point that assigns a uniform of a given type.
type UniformSetter int

const (
	UniformSetterNone UniformSetter = iota
	UniformSetter1fv
	UniformSetter2fv
	UniformSetter3fv
	UniformSetter4fv
	UniformSetter1iv
	UniformSetter2iv
	UniformSetter3iv
	UniformSetter4iv
	UniformSetterMatrix2fv
	UniformSetterMatrix3fv
	UniformSetterMatrix4fv
)

var uniformSetterNames = map[UniformSetter]string{
	UniformSetterNone:      "none",
	UniformSetter1fv:       "uniform1fv",
	UniformSetter2fv:       "uniform2fv",
	UniformSetter3fv:       "uniform3fv",
	UniformSetter4fv:       "uniform4fv",
	UniformSetter1iv:       "uniform1iv",
	UniformSetter2iv:       "uniform2iv",
	UniformSetter3iv:       "uniform3iv",
	UniformSetter4iv:       "uniform4iv",
	UniformSetterMatrix2fv: "uniformMatrix2fv",
	UniformSetterMatrix3fv: "uniformMatrix3fv",
	UniformSetterMatrix4fv: "uniformMatrix4fv",
}

// String returns the GL entry point name, e.g. "uniformMatrix4fv".
func (s UniformSetter) String() string {
	if name, ok := uniformSetterNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsMatrix reports whether the setter takes a leading transpose flag.
func (s UniformSetter) IsMatrix() bool {
	return s == UniformSetterMatrix2fv || s == UniformSetterMatrix3fv || s == UniformSetterMatrix4fv
}

// IsInteger reports whether the setter takes int32 data.
func (s UniformSetter) IsInteger() bool {
	return s >= UniformSetter1iv && s <= UniformSetter4iv
}

// AttribSetter names the GL entry point that assigns a constant value to an attribute slot.
type AttribSetter int

const (
	AttribSetterNone AttribSetter = iota
	AttribSetter1fv
	AttribSetter2fv
	AttribSetter3fv
	AttribSetter4fv
)

// String returns the GL entry point name, e.g. "vertexAttrib3fv".
func (s AttribSetter) String() string {
	switch s {
	case AttribSetter1fv:
		return "vertexAttrib1fv"
	case AttribSetter2fv:
		return "vertexAttrib2fv"
	case AttribSetter3fv:
		return "vertexAttrib3fv"
	case AttribSetter4fv:
		return "vertexAttrib4fv"
	default:
		return "none"
	}
}

// TypeDescriptor holds the native layout of a GLSL type and the setters used to assign it.
type TypeDescriptor struct {
	// Tag is the GLSL type name.
	Tag TypeTag

	// Kind is the scalar element kind.
	Kind NativeKind

	// ElementCount is the number of scalar elements (1-4 for vectors, 4/9/16 for matrices).
	ElementCount int

	// ElementSize is the byte size of one scalar element.
	ElementSize int

	// Size is the total byte size. ElementCount*ElementSize, except packed bools which are 1 byte.
	Size int

	// Columns is the number of attribute slots the type occupies: the column count for matrices, 1 otherwise.
	Columns int

	// UniformSetter is the entry point used to assign a uniform of this type.
	UniformSetter UniformSetter

	// AttribSetter is the entry point used to assign one column of a constant attribute value.
	// AttribSetterNone for types that cannot be a constant attribute.
	AttribSetter AttribSetter
}

// IsMatrix reports whether the type is a matrix type.
func (d TypeDescriptor) IsMatrix() bool {
	return d.UniformSetter.IsMatrix()
}

// DataType returns the device data type of the type's elements.
func (d TypeDescriptor) DataType() device.DataType {
	return d.Kind.DataType()
}

// ColumnSize returns the element count of one attribute slot (one matrix column).
func (d TypeDescriptor) ColumnSize() int {
	return d.ElementCount / d.Columns
}

// newTypeDescriptor builds a registry row, deriving the element size and total size from the kind.
func newTypeDescriptor(tag TypeTag, kind NativeKind, count, columns int, us UniformSetter, as AttribSetter) TypeDescriptor {
	d := TypeDescriptor{
		Tag:           tag,
		Kind:          kind,
		ElementCount:  count,
		ElementSize:   4,
		Columns:       columns,
		UniformSetter: us,
		AttribSetter:  as,
	}
	if kind == KindBool {
		d.ElementSize = 1
		d.Size = 1
		return d
	}
	d.Size = d.ElementCount * d.ElementSize
	return d
}

// glslTypeRegistry maps GLSL type names to their descriptors. Rows are added here and nowhere else.
var glslTypeRegistry = map[TypeTag]TypeDescriptor{
	TypeFloat: newTypeDescriptor(TypeFloat, KindFloat, 1, 1, UniformSetter1fv, AttribSetter1fv),
	TypeVec2:  newTypeDescriptor(TypeVec2, KindFloat, 2, 1, UniformSetter2fv, AttribSetter2fv),
	TypeVec3:  newTypeDescriptor(TypeVec3, KindFloat, 3, 1, UniformSetter3fv, AttribSetter3fv),
	TypeVec4:  newTypeDescriptor(TypeVec4, KindFloat, 4, 1, UniformSetter4fv, AttribSetter4fv),

	TypeInt:   newTypeDescriptor(TypeInt, KindInt, 1, 1, UniformSetter1iv, AttribSetterNone),
	TypeIVec2: newTypeDescriptor(TypeIVec2, KindInt, 2, 1, UniformSetter2iv, AttribSetterNone),
	TypeIVec3: newTypeDescriptor(TypeIVec3, KindInt, 3, 1, UniformSetter3iv, AttribSetterNone),
	TypeIVec4: newTypeDescriptor(TypeIVec4, KindInt, 4, 1, UniformSetter4iv, AttribSetterNone),

	// GL assigns bool uniforms through the integer setters.
	TypeBool:  newTypeDescriptor(TypeBool, KindBool, 1, 1, UniformSetter1iv, AttribSetterNone),
	TypeBVec2: newTypeDescriptor(TypeBVec2, KindBool, 2, 1, UniformSetter2iv, AttribSetterNone),
	TypeBVec3: newTypeDescriptor(TypeBVec3, KindBool, 3, 1, UniformSetter3iv, AttribSetterNone),
	TypeBVec4: newTypeDescriptor(TypeBVec4, KindBool, 4, 1, UniformSetter4iv, AttribSetterNone),

	TypeMat2: newTypeDescriptor(TypeMat2, KindFloat, 4, 2, UniformSetterMatrix2fv, AttribSetter2fv),
	TypeMat3: newTypeDescriptor(TypeMat3, KindFloat, 9, 3, UniformSetterMatrix3fv, AttribSetter3fv),
	TypeMat4: newTypeDescriptor(TypeMat4, KindFloat, 16, 4, UniformSetterMatrix4fv, AttribSetter4fv),
}

// Describe returns the descriptor registered for a GLSL type name.
//
// Parameters:
//   - tag: the GLSL type name, e.g. "vec3"
//
// Returns:
//   - TypeDescriptor: the registered descriptor
//   - error: an error wrapping ErrUnknownType if the tag is not registered
func Describe(tag TypeTag) (TypeDescriptor, error) {
	d, ok := glslTypeRegistry[tag]
	if !ok {
		return TypeDescriptor{}, fmt.Errorf("shader: type %q: %w", tag, ErrUnknownType)
	}
	return d, nil
}

// MustDescribe is Describe for statically known tags. It panics on an unknown tag.
func MustDescribe(tag TypeTag) TypeDescriptor {
	d, err := Describe(tag)
	if err != nil {
		panic(err)
	}
	return d
}

// Known reports whether tag is registered.
func Known(tag TypeTag) bool {
	_, ok := glslTypeRegistry[tag]
	return ok
}

// Types returns every registered type tag in sorted order.
func Types() []TypeTag {
	tags := make([]TypeTag, 0, len(glslTypeRegistry))
	for tag := range glslTypeRegistry {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Interleave computes the record stride and per-attribute byte offsets of a tightly packed interleaved vertex
// layout containing the given types in order.
//
// Parameters:
//   - tags: the attribute types in record order
//
// Returns:
//   - int: the stride, the sum of all type sizes
//   - []int: the offset of each attribute, the sum of the sizes before it
//   - error: an error wrapping ErrUnknownType if any tag is not registered
func Interleave(tags ...TypeTag) (int, []int, error) {
	offsets := make([]int, len(tags))
	stride := 0
	for i, tag := range tags {
		d, err := Describe(tag)
		if err != nil {
			return 0, nil, err
		}
		offsets[i] = stride
		stride += d.Size
	}
	return stride, offsets, nil
}
