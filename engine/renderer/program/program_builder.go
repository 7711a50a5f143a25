package program

// ProgramBuilderOption is a functional option used to configure a Program during construction.
type ProgramBuilderOption func(*program)

// WithLocationCache memoizes successful resolutions in an LRU cache of the given size.
// Failed resolutions are never cached. A size of 0 or less disables the cache.
//
// Parameters:
//   - size: the maximum number of cached locations
//
// Returns:
//   - ProgramBuilderOption: option function to apply
func WithLocationCache(size int) ProgramBuilderOption {
	return func(p *program) {
		p.cacheSize = size
	}
}

// WithOwnership makes Release delete the program object.
//
// Parameters:
//   - owned: whether the Program owns its GL program object
//
// Returns:
//   - ProgramBuilderOption: option function to apply
func WithOwnership(owned bool) ProgramBuilderOption {
	return func(p *program) {
		p.owned = owned
	}
}
