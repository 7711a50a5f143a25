package shader

// LibraryOption is a functional option used to configure a Library during construction.
type LibraryOption func(*library)

// WithWorkers sets the maximum number of shaders parsed in parallel. Values below 1 are raised to 1.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LibraryOption: option function to apply
func WithWorkers(n int) LibraryOption {
	return func(l *library) {
		l.workers = max(n, 1)
	}
}

// WithDiagnosticLogging logs every extraction diagnostic of the loaded shaders.
//
// Parameters:
//   - enabled: whether to log diagnostics after Load
//
// Returns:
//   - LibraryOption: option function to apply
func WithDiagnosticLogging(enabled bool) LibraryOption {
	return func(l *library) {
		l.logDiagnostics = enabled
	}
}
