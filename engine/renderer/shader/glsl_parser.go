package shader

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// declarationRegex matches the three top-level declaration shapes on a whitespace-collapsed line and captures
	// the qualifier keyword and everything after it:
	//   layout(location = 0) in vec2 aPosition;
	//   in vec3 vColor;
	//   uniform mat4 uModel;
	declarationRegex = regexp.MustCompile(`^(?:layout\s*\([^)]*\)\s*(in)|(in)|(uniform))\s+(.+;)$`)

	// whitespaceRegex matches runs of whitespace.
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// ExtractDeclarations scans GLSL stage sources line by line and returns the declared attribute and uniform
// variables, merged across stages in the order given. A name declared more than once keeps its last declaration.
//
// Extraction is textual: the type of a declaration is not checked against the registry here. Declarations with an
// unregistered type are kept and reported as DiagnosticUnknownType; typing them later fails with ErrUnknownType.
// Location numbers in layout qualifiers are discarded.
//
// Parameters:
//   - sources: the stage sources, e.g. vertex then fragment
//
// Returns:
//   - ParseResult: the merged variables and any diagnostics
func ExtractDeclarations(sources ...string) ParseResult {
	result := ParseResult{
		Variables: make(map[string]Variable),
	}

	for stage, source := range sources {
		for i, raw := range strings.Split(source, "\n") {
			v, ok := parseDeclarationLine(raw)
			if !ok {
				continue
			}
			v.Stage = stage
			v.Line = i + 1

			if !Known(v.Type) {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{
					Kind:    DiagnosticUnknownType,
					Stage:   stage,
					Line:    v.Line,
					Name:    v.Name,
					Message: fmt.Sprintf("%s %q has unregistered type %q", v.Role, v.Name, v.Type),
				})
			}
			if prev, exists := result.Variables[v.Name]; exists && (prev.Type != v.Type || prev.Role != v.Role) {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{
					Kind:  DiagnosticRedeclared,
					Stage: stage,
					Line:  v.Line,
					Name:  v.Name,
					Message: fmt.Sprintf("%q redeclared as %s %s, overriding %s %s from stage %d line %d",
						v.Name, v.Role, v.Type, prev.Role, prev.Type, prev.Stage, prev.Line),
				})
			}
			result.Variables[v.Name] = v
		}
	}

	return result
}

// parseDeclarationLine extracts a variable from a single source line. The type and name are the last two
// whitespace-separated tokens of the declaration, so precision and interpolation qualifiers are skipped.
//
// Parameters:
//   - line: one raw source line
//
// Returns:
//   - Variable: the declared name, type and role
//   - bool: false if the line is not a declaration
func parseDeclarationLine(line string) (Variable, bool) {
	line = normalizeLine(line)
	if line == "" {
		return Variable{}, false
	}

	m := declarationRegex.FindStringSubmatch(line)
	if m == nil {
		return Variable{}, false
	}

	tokens := strings.Fields(m[4])
	if len(tokens) < 2 {
		return Variable{}, false
	}
	name := strings.TrimSuffix(tokens[len(tokens)-1], ";")
	typeName := tokens[len(tokens)-2]
	if name == "" || typeName == "" {
		return Variable{}, false
	}

	role := RoleAttribute
	if m[3] == "uniform" {
		role = RoleUniform
	}

	return Variable{
		Name: name,
		Type: TypeTag(typeName),
		Role: role,
	}, true
}

// normalizeLine drops a trailing // comment, trims the line, collapses whitespace runs to one space and
// attaches a detached terminating semicolon to the preceding token.
func normalizeLine(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	line = whitespaceRegex.ReplaceAllString(line, " ")
	return strings.ReplaceAll(line, " ;", ";")
}
