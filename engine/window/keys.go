package window

import "github.com/go-gl/glfw/v3.3/glfw"

// Key codes passed to the key down and key up callbacks. Printable keys are their ASCII values.
const (
	KeyW      = uint32(glfw.KeyW)
	KeyA      = uint32(glfw.KeyA)
	KeyS      = uint32(glfw.KeyS)
	KeyD      = uint32(glfw.KeyD)
	KeyQ      = uint32(glfw.KeyQ)
	KeyE      = uint32(glfw.KeyE)
	KeyT      = uint32(glfw.KeyT)
	KeySpace  = uint32(glfw.KeySpace)
	KeyEscape = uint32(glfw.KeyEscape)
)
