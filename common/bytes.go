// Package common contains small helpers shared by the engine packages. They are plain functions over plain data.
package common

import "unsafe"

// SliceToBytes reinterprets a numeric slice as its raw bytes for GPU buffer uploads.
// The returned slice shares memory with data, so later writes to data are visible through it.
//
// Parameters:
//   - data: source slice of a fixed-size element type
//
// Returns:
//   - []byte: byte view of data, or nil if data is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), size*len(data))
}

// ElementSize returns the size in bytes of one element of type T.
func ElementSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
