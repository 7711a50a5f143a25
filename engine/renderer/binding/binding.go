// Package binding provides the GL objects that are bound into the device's global state around an operation:
// buffers and vertex arrays. Programs from the program package bind the same way.
package binding

// Bindable is a GL object that can be made current on the device and unbound again.
type Bindable interface {
	// Enable binds the object.
	Enable()

	// Disable reinstates whatever occupied the binding point when the matching Enable ran.
	Disable()
}

// Bind enables b, runs op and disables b again, also when op panics. Nested scopes restore innermost first, so
// the binding point ends up holding what it held before the call.
//
// Parameters:
//   - b: the object to bind for the duration of op
//   - op: the operation to run while b is bound
//
// Returns:
//   - error: the error returned by op
func Bind(b Bindable, op func() error) error {
	b.Enable()
	defer b.Disable()
	return op()
}

// BindAll enables every object in the given order, runs op once and then disables every object in the same order.
// A vertex array listed before its element array buffer is therefore unbound first and keeps the buffer recorded.
// The objects should occupy distinct binding points.
//
// Parameters:
//   - op: the operation to run while all objects are bound
//   - objs: the objects to bind
//
// Returns:
//   - error: the error returned by op
func BindAll(op func() error, objs ...Bindable) error {
	for _, b := range objs {
		b.Enable()
	}
	defer func() {
		for _, b := range objs {
			b.Disable()
		}
	}()
	return op()
}
