package shader

import "github.com/Carmen-Shannon/oxy-gl/engine/device"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithVertexSource sets the vertex stage source.
//
// Parameters:
//   - source: the GLSL vertex shader source
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithVertexSource(source string) ShaderBuilderOption {
	return WithStageSource(device.ShaderStageVertex, source)
}

// WithFragmentSource sets the fragment stage source.
//
// Parameters:
//   - source: the GLSL fragment shader source
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithFragmentSource(source string) ShaderBuilderOption {
	return WithStageSource(device.ShaderStageFragment, source)
}

// WithStageSource sets the source of any stage. It replaces a path set for the same stage.
//
// Parameters:
//   - stage: the pipeline stage
//   - source: the GLSL source
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithStageSource(stage device.ShaderStage, source string) ShaderBuilderOption {
	return func(s *shader) {
		delete(s.paths, stage)
		s.sources[stage] = source
	}
}

// WithSourceFromPath reads the source of a stage from a file when the shader is built.
//
// Parameters:
//   - stage: the pipeline stage
//   - path: the file to read the GLSL source from
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithSourceFromPath(stage device.ShaderStage, path string) ShaderBuilderOption {
	return func(s *shader) {
		delete(s.sources, stage)
		s.paths[stage] = path
	}
}
