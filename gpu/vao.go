package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/toxichemicals/GO/holy-terrain/mesh"
)

// VertexArray owns a VAO and knows how many vertices to draw from it.
type VertexArray struct {
	vao   uint32
	count int32
}

// NewVertexArray uploads m with one VBO per attribute stream. The VBOs are
// deleted once the VAO holds them; the driver keeps the storage alive for as
// long as the VAO references it.
func NewVertexArray(m *mesh.MeshData) (*VertexArray, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("upload mesh: %w", err)
	}
	if m.VertexCount() == 0 {
		return nil, fmt.Errorf("upload mesh: %w: no vertices", mesh.ErrInvalidMesh)
	}
	streams := Layout(m)

	vbos := make([]uint32, len(streams))
	gl.GenBuffers(int32(len(vbos)), &vbos[0])
	for i, s := range streams {
		gl.BindBuffer(gl.ARRAY_BUFFER, vbos[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(s.Data)*4, gl.Ptr(s.Data), gl.STATIC_DRAW)
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	for i, s := range streams {
		gl.BindBuffer(gl.ARRAY_BUFFER, vbos[i])
		gl.VertexAttribPointerWithOffset(s.Location, s.Components, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(s.Location)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.DeleteBuffers(int32(len(vbos)), &vbos[0])

	return &VertexArray{vao: vao, count: int32(m.VertexCount())}, nil
}

func (v *VertexArray) Count() int32 { return v.count }

// Draw issues a non-indexed triangle draw over the whole array.
func (v *VertexArray) Draw() {
	gl.BindVertexArray(v.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, v.count)
	gl.BindVertexArray(0)
}

// Release deletes the VAO. It is safe to call more than once.
func (v *VertexArray) Release() {
	if v.vao != 0 {
		gl.DeleteVertexArrays(1, &v.vao)
		v.vao = 0
	}
}
