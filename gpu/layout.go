// Package gpu uploads mesh data into vertex array objects.
package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/toxichemicals/GO/holy-terrain/mesh"
)

// Shader input locations shared by every program.
const (
	LocationPosition uint32 = 0
	LocationColor    uint32 = 1
	LocationNormal   uint32 = 2
	LocationTexCoord uint32 = 3
)

// Stream is one tightly packed float attribute bound to a shader location.
type Stream struct {
	Location   uint32
	Components int32
	Data       []float32
}

// Layout flattens the non-empty attributes of m into one stream each.
func Layout(m *mesh.MeshData) []Stream {
	var streams []Stream
	add3 := func(loc uint32, vs []mgl32.Vec3) {
		if len(vs) == 0 {
			return
		}
		data := make([]float32, 0, 3*len(vs))
		for _, v := range vs {
			data = append(data, v[0], v[1], v[2])
		}
		streams = append(streams, Stream{Location: loc, Components: 3, Data: data})
	}

	add3(LocationPosition, m.Positions)
	add3(LocationColor, m.Colors)
	add3(LocationNormal, m.Normals)
	if len(m.TexCoords) > 0 {
		data := make([]float32, 0, 2*len(m.TexCoords))
		for _, v := range m.TexCoords {
			data = append(data, v[0], v[1])
		}
		streams = append(streams, Stream{Location: LocationTexCoord, Components: 2, Data: data})
	}
	return streams
}
