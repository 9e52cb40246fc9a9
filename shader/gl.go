package shader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// GLCompiler compiles and links with the current GL context.
type GLCompiler struct{}

// Compile compiles every source, links them into one program and deletes
// the shader objects. Nothing is left allocated on failure.
func (GLCompiler) Compile(sources []Source) (uint32, error) {
	shaders := make([]uint32, 0, len(sources))
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()

	for _, src := range sources {
		s := gl.CreateShader(src.Type)
		shaders = append(shaders, s)
		glShaderSource(s, src.Text)
		gl.CompileShader(s)
		if err := checkShaderCompileStatus(s, src.Path); err != nil {
			return 0, err
		}
	}

	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	for _, s := range shaders {
		gl.DetachShader(program, s)
	}
	if err := checkProgramLinkStatus(program, sources); err != nil {
		gl.DeleteProgram(program)
		return 0, err
	}
	return program, nil
}

func (GLCompiler) Delete(program uint32) {
	gl.DeleteProgram(program)
}

// glShaderSource is a helper to correctly pass GLSL source to OpenGL
func glShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func checkShaderCompileStatus(shader uint32, path string) error {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return fmt.Errorf("failed to compile shader %s:\n%v", path, strings.TrimRight(log, "\x00"))
	}
	return nil
}

func checkProgramLinkStatus(program uint32, sources []Source) error {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		names := make([]string, len(sources))
		for i, s := range sources {
			names[i] = filepath.Base(s.Path)
		}
		return fmt.Errorf("failed to link program (%s):\n%v", strings.Join(names, ", "), strings.TrimRight(log, "\x00"))
	}
	return nil
}
