package program

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
)

var (
	// ErrCompile is returned when a stage source fails to compile.
	ErrCompile = errors.New("shader compilation failed")

	// ErrLink is returned when the compiled stages fail to link.
	ErrLink = errors.New("program link failed")
)

// Link compiles every stage of a shader, links them into a new program object and wraps it.
// The returned Program owns the program object unless WithOwnership(false) is given.
// The compiler or linker info log is logged and included in the returned error; nothing is left allocated on failure.
//
// Parameters:
//   - dev: the device to compile and link on
//   - sh: the shader to build
//   - options: program configuration
//
// Returns:
//   - Program: the linked program
//   - error: wrapping ErrCompile or ErrLink
func Link(dev device.Device, sh shader.Shader, options ...ProgramBuilderOption) (Program, error) {
	stages := sh.Stages()
	objects := make([]uint32, 0, len(stages))
	deleteObjects := func() {
		for _, obj := range objects {
			dev.DeleteShader(obj)
		}
	}

	for _, stage := range stages {
		obj := dev.CreateShader(stage)
		dev.ShaderSource(obj, sh.Source(stage))
		dev.CompileShader(obj)
		if !dev.ShaderCompiled(obj) {
			info := dev.ShaderInfoLog(obj)
			log.Printf("[Program] %s: %s stage failed to compile:\n%s", sh.Key(), stage, info)
			dev.DeleteShader(obj)
			deleteObjects()
			return nil, fmt.Errorf("program: %s: %s stage: %w: %s", sh.Key(), stage, ErrCompile, info)
		}
		objects = append(objects, obj)
	}

	handle := dev.CreateProgram()
	for _, obj := range objects {
		dev.AttachShader(handle, obj)
	}
	dev.LinkProgram(handle)
	// stage objects are flagged for deletion; the program keeps them alive while attached
	deleteObjects()

	if !dev.ProgramLinked(handle) {
		info := dev.ProgramInfoLog(handle)
		log.Printf("[Program] %s: failed to link:\n%s", sh.Key(), info)
		dev.DeleteProgram(handle)
		return nil, fmt.Errorf("program: %s: %w: %s", sh.Key(), ErrLink, info)
	}

	p, err := New(dev, handle, sh, append([]ProgramBuilderOption{WithOwnership(true)}, options...)...)
	if err != nil {
		dev.DeleteProgram(handle)
		return nil, err
	}
	return p, nil
}

// MustLink is like Link but panics on error.
func MustLink(dev device.Device, sh shader.Shader, options ...ProgramBuilderOption) Program {
	p, err := Link(dev, sh, options...)
	if err != nil {
		panic(err)
	}
	return p
}
