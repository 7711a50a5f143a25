package shader

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
)

var (
	// ErrUndeclared is returned when a variable name is not declared in any stage source.
	ErrUndeclared = errors.New("variable not declared in shader source")

	// ErrMissingStage is returned when a shader is built without a vertex or fragment source.
	ErrMissingStage = errors.New("missing shader stage source")
)

// stageOrder is the order stage sources are scanned and merged in. Later stages win on duplicate names.
var stageOrder = []device.ShaderStage{device.ShaderStageVertex, device.ShaderStageFragment}

// shader is the implementation of the Shader interface.
// It holds the stage sources of one program and the typed variable mapping extracted from them.
type shader struct {
	key     string
	sources map[device.ShaderStage]string
	paths   map[device.ShaderStage]string
	result  ParseResult
}

// Shader is the parsed source of one GL program: its vertex and fragment stage sources and the
// variables they declare. It is built once and never mutated.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for library lookups and log messages.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the trimmed source of one stage.
	//
	// Parameters:
	//   - stage: the pipeline stage
	//
	// Returns:
	//   - string: the stage source, or empty if the stage is not present
	Source(stage device.ShaderStage) string

	// Stages returns the stages present, in merge order.
	//
	// Returns:
	//   - []device.ShaderStage: vertex first, then fragment
	Stages() []device.ShaderStage

	// Variables returns the merged name to variable mapping. The map must not be modified.
	//
	// Returns:
	//   - map[string]Variable: every declared attribute and uniform keyed by name
	Variables() map[string]Variable

	// Variable looks up one declared variable.
	//
	// Parameters:
	//   - name: the variable name
	//
	// Returns:
	//   - Variable: the declaration
	//   - bool: false if the name is not declared
	Variable(name string) (Variable, bool)

	// Attributes returns the declared attribute variables sorted by name.
	Attributes() []Variable

	// Uniforms returns the declared uniform variables sorted by name.
	Uniforms() []Variable

	// Diagnostics returns the findings of declaration extraction in scan order.
	Diagnostics() []Diagnostic

	// Describe returns the type descriptor of a declared variable. This is where an unregistered declared type
	// surfaces as an error.
	//
	// Parameters:
	//   - name: the variable name
	//
	// Returns:
	//   - TypeDescriptor: the descriptor of the declared type
	//   - error: wrapping ErrUndeclared or ErrUnknownType
	Describe(name string) (TypeDescriptor, error)
}

var _ Shader = &shader{}

// NewShader creates a Shader from stage sources and extracts its declared variables.
// Both a vertex and a fragment source must be supplied, either inline or from a file.
//
// Parameters:
//   - key: a unique identifier for the shader
//   - options: the stage sources and other configuration
//
// Returns:
//   - Shader: the parsed shader
//   - error: error if a source file cannot be read or a stage is missing
func NewShader(key string, options ...ShaderBuilderOption) (Shader, error) {
	s := &shader{
		key:     key,
		sources: make(map[device.ShaderStage]string),
		paths:   make(map[device.ShaderStage]string),
	}
	for _, opt := range options {
		opt(s)
	}

	for stage, path := range s.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("shader: %s: failed to read %s source %q: %w", key, stage, path, err)
		}
		s.sources[stage] = string(data)
	}

	sources := make([]string, 0, len(stageOrder))
	for _, stage := range stageOrder {
		src, ok := s.sources[stage]
		if !ok {
			return nil, fmt.Errorf("shader: %s: %s stage: %w", key, stage, ErrMissingStage)
		}
		src = strings.TrimSpace(src)
		s.sources[stage] = src
		sources = append(sources, src)
	}

	s.result = ExtractDeclarations(sources...)
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source(stage device.ShaderStage) string {
	return s.sources[stage]
}

func (s *shader) Stages() []device.ShaderStage {
	return slices.Clone(stageOrder)
}

func (s *shader) Variables() map[string]Variable {
	return s.result.Variables
}

func (s *shader) Variable(name string) (Variable, bool) {
	v, ok := s.result.Variables[name]
	return v, ok
}

func (s *shader) Attributes() []Variable {
	return s.variablesWithRole(RoleAttribute)
}

func (s *shader) Uniforms() []Variable {
	return s.variablesWithRole(RoleUniform)
}

func (s *shader) Diagnostics() []Diagnostic {
	return s.result.Diagnostics
}

func (s *shader) Describe(name string) (TypeDescriptor, error) {
	v, ok := s.result.Variables[name]
	if !ok {
		return TypeDescriptor{}, fmt.Errorf("shader: %s: %q: %w", s.key, name, ErrUndeclared)
	}
	d, err := Describe(v.Type)
	if err != nil {
		return TypeDescriptor{}, fmt.Errorf("shader: %s: %q: %w", s.key, name, err)
	}
	return d, nil
}

// variablesWithRole returns the variables of one role sorted by name.
func (s *shader) variablesWithRole(role Role) []Variable {
	var out []Variable
	for _, v := range s.result.Variables {
		if v.Role == role {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b Variable) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
