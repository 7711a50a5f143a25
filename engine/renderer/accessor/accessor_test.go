package accessor

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/device/devicetest"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/program"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/stretchr/testify/require"
)

const testProgramHandle = 9

const testVertexSource = `#version 410 core
layout(location = 0) in vec2 aPosition;
layout(location = 1) in vec3 aColor;
layout(location = 2) in float aPointSize;
layout(location = 3) in mat4 aModel;
layout(location = 7) in ivec2 aCell;
in vec4 aUnused;
uniform mat4 uProjection;
uniform mat3 uNormal;
uniform vec3 uLight;
uniform float uTime;
uniform int uMode;
uniform ivec3 uGrid;
uniform bool uWire;
uniform bvec2 uFlags;
uniform sampler2D uTexture;
void main() {
    gl_Position = uProjection * aModel * vec4(aPosition, 0.0, 1.0);
}`

const testFragmentSource = `#version 410 core
out vec4 fragColor;
void main() {
    fragColor = vec4(1.0);
}`

// newTestProgram wraps a fake linked program whose active variables are the ones the sources use.
func newTestProgram(t *testing.T) (*devicetest.Recorder, program.Program) {
	t.Helper()
	sh, err := shader.NewShader("test",
		shader.WithVertexSource(testVertexSource),
		shader.WithFragmentSource(testFragmentSource),
	)
	require.NoError(t, err)

	rec := devicetest.NewRecorder()
	for name, loc := range map[string]int32{"aPosition": 0, "aColor": 1, "aPointSize": 2, "aModel": 3, "aCell": 7} {
		rec.Attribs[name] = loc
	}
	for i, name := range []string{"uProjection", "uNormal", "uLight", "uTime", "uMode", "uGrid", "uWire", "uFlags", "uTexture"} {
		rec.Uniforms[name] = int32(i)
	}

	p, err := program.New(rec, testProgramHandle, sh)
	require.NoError(t, err)
	rec.Reset()
	return rec, p
}
