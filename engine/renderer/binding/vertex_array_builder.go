package binding

// VertexArrayBuilderOption is a functional option used to configure a VertexArray during construction.
type VertexArrayBuilderOption func(*vertexArray)

// WithVertexArrayLabel sets a debug label for the vertex array.
//
// Parameters:
//   - label: the label
//
// Returns:
//   - VertexArrayBuilderOption: option function to apply
func WithVertexArrayLabel(label string) VertexArrayBuilderOption {
	return func(va *vertexArray) {
		va.label = label
	}
}
