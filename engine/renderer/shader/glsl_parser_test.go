package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointsVertexSource = `#version 300 es
    #pragma vscode_glsllint_stage: vert
    layout(location = 1) in float aPointSize;
    layout(location = 0) in vec2 aPosition;
    layout(location = 2) in vec3 aColor;
    out vec3 vColor;
    void main() {
        vColor = aColor;
        gl_PointSize = aPointSize;
        gl_Position = vec4(aPosition, 0.0, 1.0);
    }`

const pointsFragmentSource = `#version 300 es
    #pragma vscode_glsllint_stage: frag
    precision mediump float;
    out vec4 fragColor;
    void main() {
        fragColor = vec4(1.0);
    }`

func TestExtractLayoutAttributes(t *testing.T) {
	src := "layout(location=1) in float aPointSize;\nlayout(location=0) in vec2 aPosition;\nlayout(location=2) in vec3 aColor;"
	result := ExtractDeclarations(src, pointsFragmentSource)

	assert.Equal(t, map[string]TypeTag{
		"aPointSize": TypeFloat,
		"aPosition":  TypeVec2,
		"aColor":     TypeVec3,
	}, result.Types())
	assert.Empty(t, result.Diagnostics)
}

func TestExtractFullSource(t *testing.T) {
	result := ExtractDeclarations(pointsVertexSource, pointsFragmentSource)

	assert.Equal(t, map[string]TypeTag{
		"aPointSize": TypeFloat,
		"aPosition":  TypeVec2,
		"aColor":     TypeVec3,
	}, result.Types())

	v := result.Variables["aPosition"]
	assert.Equal(t, RoleAttribute, v.Role)
	assert.Equal(t, 0, v.Stage)
	assert.Equal(t, 4, v.Line)
}

func TestExtractDeclarationShapes(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *Variable
	}{
		{"layout", "layout(location = 3) in vec4 aTint;", &Variable{Name: "aTint", Type: TypeVec4, Role: RoleAttribute}},
		{"layout no spaces", "layout(location=3)in vec4 aTint;", &Variable{Name: "aTint", Type: TypeVec4, Role: RoleAttribute}},
		{"bare in", "in vec3 vColor;", &Variable{Name: "vColor", Type: TypeVec3, Role: RoleAttribute}},
		{"uniform", "uniform mat4 uModel;", &Variable{Name: "uModel", Type: TypeMat4, Role: RoleUniform}},
		{"precision qualifier", "uniform highp float uTime;", &Variable{Name: "uTime", Type: TypeFloat, Role: RoleUniform}},
		{"extra whitespace", "   uniform \t  vec2    uOffset  ;  ", &Variable{Name: "uOffset", Type: TypeVec2, Role: RoleUniform}},
		{"trailing comment", "in vec2 aUV; // texture coordinates", &Variable{Name: "aUV", Type: TypeVec2, Role: RoleAttribute}},
		{"out", "out vec3 vColor;", nil},
		{"void", "void main() {", nil},
		{"int statement", "int count = 3;", nil},
		{"comment", "// uniform mat4 uHidden;", nil},
		{"pragma", "#pragma vscode_glsllint_stage: vert", nil},
		{"precision", "precision mediump float;", nil},
		{"uniform block", "uniform Camera {", nil},
		{"missing semicolon", "uniform mat4 uModel", nil},
		{"qualifier only", "in;", nil},
		{"layout qualifier only", "layout(location = 0) in;", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractDeclarations(tt.line)
			if tt.want == nil {
				assert.Empty(t, result.Variables)
				return
			}
			require.Len(t, result.Variables, 1)
			got := result.Variables[tt.want.Name]
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Type, got.Type)
			assert.Equal(t, tt.want.Role, got.Role)
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	vert := "layout(location = 0) in vec2 aPosition;\nuniform mat4 uProj;\nuniform float uTime;"
	frag := "in vec3 vColor;\nuniform vec4 uTint;"

	first := ExtractDeclarations(vert, frag)
	second := ExtractDeclarations(vert, frag)
	assert.Equal(t, first, second)
}

func TestExtractLastDeclarationWins(t *testing.T) {
	vert := "uniform vec3 uLight;\nin vec2 aPosition;"
	frag := "uniform vec4 uLight;"

	result := ExtractDeclarations(vert, frag)
	assert.Equal(t, TypeVec4, result.Variables["uLight"].Type)
	assert.Equal(t, 1, result.Variables["uLight"].Stage)

	require.Len(t, result.Diagnostics, 1)
	d := result.Diagnostics[0]
	assert.Equal(t, DiagnosticRedeclared, d.Kind)
	assert.Equal(t, "uLight", d.Name)
	assert.Equal(t, 1, d.Stage)
	assert.Equal(t, 1, d.Line)

	reversed := ExtractDeclarations(frag, vert)
	assert.Equal(t, TypeVec3, reversed.Variables["uLight"].Type)
}

func TestExtractSameDeclarationTwiceIsQuiet(t *testing.T) {
	result := ExtractDeclarations("uniform float uTime;", "uniform float uTime;")
	assert.Equal(t, TypeFloat, result.Variables["uTime"].Type)
	assert.Empty(t, result.Diagnostics)
}

func TestExtractUnknownTypeIsDeferred(t *testing.T) {
	result := ExtractDeclarations("uniform sampler2D uTexture;\nin vec2 aUV;")

	require.Contains(t, result.Variables, "uTexture")
	assert.Equal(t, TypeTag("sampler2D"), result.Variables["uTexture"].Type)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, DiagnosticUnknownType, result.Diagnostics[0].Kind)
	assert.Equal(t, "stage 0 line 1: uniform \"uTexture\" has unregistered type \"sampler2D\"", result.Diagnostics[0].String())
}

func TestExtractNoSources(t *testing.T) {
	result := ExtractDeclarations()
	assert.NotNil(t, result.Variables)
	assert.Empty(t, result.Variables)
}
