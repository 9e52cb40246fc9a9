// Package scene describes the fixed set of mesh instances and the light the
// viewer draws.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/toxichemicals/GO/holy-terrain/transform"
)

// Mesh keys used by Instance.Mesh.
const (
	MeshTerrain    = "terrain"
	MeshLandingPad = "landingpad"
)

// Instance places one mesh in the world.
type Instance struct {
	Name     string
	Mesh     string
	Offset   mgl32.Vec3
	Textured bool // drawn with the textured program and the terrain texture
}

// Light is a single directional light with an ambient term.
type Light struct {
	Direction mgl32.Vec3
	Diffuse   mgl32.Vec3
	Ambient   mgl32.Vec3
}

type Scene struct {
	Instances []Instance
	Light     Light

	// NormalBase is the transform the shared normal matrix is derived from.
	// Every instance is translation-only, so one normal matrix serves all of
	// them; instances that rotate or scale need their own.
	NormalBase mgl32.Mat4
}

// Default returns the terrain with two landing pads.
func Default() Scene {
	return Scene{
		Instances: []Instance{
			{Name: "terrain", Mesh: MeshTerrain, Textured: true},
			{Name: "pad-1", Mesh: MeshLandingPad, Offset: mgl32.Vec3{21, -0.95, -10}},
			{Name: "pad-2", Mesh: MeshLandingPad, Offset: mgl32.Vec3{50, -0.9, 3}},
		},
		Light: Light{
			Direction: mgl32.Vec3{-1, 1, 0.5}.Normalize(),
			Diffuse:   mgl32.Vec3{0.9, 0.9, 0.6},
			Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
		},
		NormalBase: transform.Translation(mgl32.Vec3{0, 0, -10}),
	}
}

// NormalMatrix returns the normal matrix shared by all instances.
func (s Scene) NormalMatrix() mgl32.Mat3 {
	return transform.NormalMatrix(s.NormalBase)
}

// Meshes returns the distinct mesh keys in first-use order.
func (s Scene) Meshes() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, in := range s.Instances {
		if !seen[in.Mesh] {
			seen[in.Mesh] = true
			keys = append(keys, in.Mesh)
		}
	}
	return keys
}
