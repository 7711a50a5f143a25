package shader

import "fmt"

// Role tells whether a declared variable is a per-vertex input or a uniform.
type Role int

const (
	// RoleAttribute is an `in` declaration, optionally with a layout qualifier.
	RoleAttribute Role = iota
	// RoleUniform is a `uniform` declaration.
	RoleUniform
)

// String returns "attribute" or "uniform".
func (r Role) String() string {
	if r == RoleUniform {
		return "uniform"
	}
	return "attribute"
}

// Variable is one declared shader variable after merging all stages.
type Variable struct {
	// Name is the identifier as declared.
	Name string

	// Type is the declared type name. It is not validated against the registry until the variable is typed.
	Type TypeTag

	// Role is attribute for `in` declarations and uniform for `uniform` declarations.
	Role Role

	// Stage is the index of the source the winning declaration came from.
	Stage int

	// Line is the 1-based line of the winning declaration within its source.
	Line int
}

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind int

const (
	// DiagnosticUnknownType marks a declaration whose type is not in the registry.
	DiagnosticUnknownType DiagnosticKind = iota
	// DiagnosticRedeclared marks a declaration that overwrote an earlier one with a different type or role.
	DiagnosticRedeclared
)

// String returns a short name for the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticUnknownType:
		return "unknown-type"
	case DiagnosticRedeclared:
		return "redeclared"
	default:
		return "unknown"
	}
}

// Diagnostic is an informational finding of the declaration extractor. Diagnostics never stop extraction.
type Diagnostic struct {
	Kind    DiagnosticKind
	Stage   int
	Line    int
	Name    string
	Message string
}

// String formats the diagnostic as "stage N line M: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("stage %d line %d: %s", d.Stage, d.Line, d.Message)
}

// ParseResult is the output of ExtractDeclarations.
type ParseResult struct {
	// Variables maps each declared name to its last declaration.
	Variables map[string]Variable

	// Diagnostics lists findings in scan order.
	Diagnostics []Diagnostic
}

// Types returns the plain name to type mapping of the result.
func (r ParseResult) Types() map[string]TypeTag {
	out := make(map[string]TypeTag, len(r.Variables))
	for name, v := range r.Variables {
		out[name] = v.Type
	}
	return out
}
