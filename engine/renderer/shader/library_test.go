package shader

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryLoad(t *testing.T) {
	lib := NewLibrary(WithWorkers(3))
	for i := range 8 {
		lib.Add(fmt.Sprintf("quad-%d", i), WithVertexSource(quadVertexSource), WithFragmentSource(quadFragmentSource))
	}

	shaders, err := lib.Load()
	require.NoError(t, err)
	require.Len(t, shaders, 8)
	for key, s := range shaders {
		assert.Equal(t, key, s.Key())
		assert.Len(t, s.Variables(), 7)
	}
}

func TestLibraryReusesWorkers(t *testing.T) {
	lib := NewLibrary(WithWorkers(2))
	for i := range 4 {
		lib.Add(fmt.Sprintf("quad-%d", i), WithVertexSource(quadVertexSource), WithFragmentSource(quadFragmentSource))
	}

	_, err := lib.Load()
	require.NoError(t, err)
	pool := lib.(*library).pool
	require.NotNil(t, pool)
	goroutines := runtime.NumGoroutine()

	for range 10 {
		shaders, err := lib.Load()
		require.NoError(t, err)
		require.Len(t, shaders, 4)
	}
	assert.Same(t, pool, lib.(*library).pool)
	assert.LessOrEqual(t, runtime.NumGoroutine(), goroutines)
}

func TestLibraryAddReplaces(t *testing.T) {
	lib := NewLibrary()
	lib.Add("a", WithVertexSource("in vec2 aOld;"), WithFragmentSource(""))
	lib.Add("b", WithVertexSource(""), WithFragmentSource(""))
	lib.Add("a", WithVertexSource("in vec3 aNew;"), WithFragmentSource(""))

	assert.Equal(t, []string{"a", "b"}, lib.Keys())

	shaders, err := lib.Load()
	require.NoError(t, err)
	_, ok := shaders["a"].Variable("aNew")
	assert.True(t, ok)
	_, ok = shaders["a"].Variable("aOld")
	assert.False(t, ok)
}

func TestLibraryLoadCollectsErrors(t *testing.T) {
	lib := NewLibrary(WithWorkers(2), WithDiagnosticLogging(true))
	lib.Add("good", WithVertexSource(quadVertexSource), WithFragmentSource(quadFragmentSource))
	lib.Add("no-fragment", WithVertexSource(quadVertexSource))
	lib.Add("no-file",
		WithSourceFromPath(device.ShaderStageVertex, filepath.Join(t.TempDir(), "missing.vert")),
		WithFragmentSource(quadFragmentSource),
	)

	shaders, err := lib.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingStage)
	assert.Contains(t, err.Error(), "no-file")
	assert.Len(t, shaders, 1)
	assert.Contains(t, shaders, "good")
}

func TestLibraryLoadEmpty(t *testing.T) {
	shaders, err := NewLibrary().Load()
	require.NoError(t, err)
	assert.Empty(t, shaders)
}
