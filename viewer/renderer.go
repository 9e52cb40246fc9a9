package viewer

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/toxichemicals/GO/holy-terrain/gpu"
	"github.com/toxichemicals/GO/holy-terrain/scene"
	"github.com/toxichemicals/GO/holy-terrain/texture"
	"github.com/toxichemicals/GO/holy-terrain/transform"
)

// Uniform locations fixed by layout(location = N) in the shaders.
const (
	uniformMVP          = 0
	uniformNormalMatrix = 1
	uniformLightDir     = 2
	uniformLightDiffuse = 3
	uniformAmbient      = 4
)

// glRenderer draws scene instances with the current GL context. arrays
// holds a vertex array for every mesh the scene uses.
type glRenderer struct {
	state   *State
	arrays  map[string]*gpu.VertexArray
	texture *texture.Texture
	light   scene.Light
	normal  mgl32.Mat3
}

func (r *glRenderer) Begin(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *glRenderer) Draw(in scene.Instance, frame transform.Frame) {
	gl.UseProgram(r.state.ProgramFor(in).ID())

	mvp := frame.Instance(in.Offset)
	gl.UniformMatrix4fv(uniformMVP, 1, false, &mvp[0])
	gl.UniformMatrix3fv(uniformNormalMatrix, 1, false, &r.normal[0])
	gl.Uniform3fv(uniformLightDir, 1, &r.light.Direction[0])
	gl.Uniform3fv(uniformLightDiffuse, 1, &r.light.Diffuse[0])
	gl.Uniform3fv(uniformAmbient, 1, &r.light.Ambient[0])

	if in.Textured && r.texture != nil {
		r.texture.Bind(0)
	}
	r.arrays[in.Mesh].Draw()
}
