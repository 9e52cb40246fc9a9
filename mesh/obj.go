package mesh

import (
	"fmt"
	"log/slog"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
)

// LoadOBJ reads a Wavefront OBJ file and its material library. Polygons are
// fan-triangulated and expanded to one vertex per triangle corner. Each
// vertex takes the diffuse colour of its face's material. If any face lacks
// texture coordinates the whole mesh is returned without them.
func LoadOBJ(path string) (MeshData, error) {
	// An empty mtl path makes the decoder follow the file's mtllib and fall
	// back to a default material when there is none.
	dec, err := obj.Decode(path, "")
	if err != nil {
		return MeshData{}, fmt.Errorf("failed to parse OBJ file %s: %w", path, err)
	}
	for _, w := range dec.Warnings {
		slog.Debug("obj decoder warning", "path", path, "warning", w)
	}

	b := objBuilder{dec: dec, uvs: true}
	var out MeshData
	for i := range dec.Objects {
		part, err := b.object(&dec.Objects[i])
		if err != nil {
			return MeshData{}, fmt.Errorf("OBJ file %s, object %q: %w", path, dec.Objects[i].Name, err)
		}
		if out, err = Concatenate(out, part); err != nil {
			return MeshData{}, fmt.Errorf("OBJ file %s: %w", path, err)
		}
	}
	if !b.uvs {
		out.TexCoords = nil
	}
	if out.VertexCount() == 0 {
		return MeshData{}, fmt.Errorf("%w: OBJ file %s has no faces", ErrInvalidMesh, path)
	}

	slog.Debug("loaded OBJ", "path", path, "vertices", out.VertexCount(), "texcoords", out.HasTexCoords())
	return out, nil
}

type objBuilder struct {
	dec *obj.Decoder
	uvs bool // false once any face without texture coordinates is seen
}

func (b *objBuilder) object(o *obj.Object) (MeshData, error) {
	var m MeshData
	for fi := range o.Faces {
		f := &o.Faces[fi]
		if len(f.Vertices) < 3 {
			return MeshData{}, fmt.Errorf("%w: face %d has %d vertices", ErrInvalidMesh, fi, len(f.Vertices))
		}
		color := b.materialColor(f.Material)

		// Fan triangulation around the first corner.
		for k := 1; k+1 < len(f.Vertices); k++ {
			corners := [3]int{0, k, k + 1}
			var pos [3]mgl32.Vec3
			for c, ci := range corners {
				p, ok := b.position(f.Vertices[ci])
				if !ok {
					return MeshData{}, fmt.Errorf("%w: face %d references missing vertex %d", ErrInvalidMesh, fi, f.Vertices[ci])
				}
				pos[c] = p
			}
			flat := faceNormal(pos[0], pos[1], pos[2])

			for c, ci := range corners {
				m.Positions = append(m.Positions, pos[c])
				m.Colors = append(m.Colors, color)

				n, ok := b.normal(f.Normals, ci)
				if !ok {
					n = flat
				}
				m.Normals = append(m.Normals, n)

				uv, ok := b.texCoord(f.Uvs, ci)
				if !ok {
					b.uvs = false
				}
				m.TexCoords = append(m.TexCoords, uv)
			}
		}
	}
	return m, nil
}

func (b *objBuilder) materialColor(name string) mgl32.Vec3 {
	mat, ok := b.dec.Materials[name]
	if !ok || mat == nil {
		return defaultColor
	}
	return mgl32.Vec3{mat.Diffuse.R, mat.Diffuse.G, mat.Diffuse.B}
}

func (b *objBuilder) position(idx int) (mgl32.Vec3, bool) {
	return vec3At(b.dec.Vertices, idx)
}

func (b *objBuilder) normal(indices []int, corner int) (mgl32.Vec3, bool) {
	if corner >= len(indices) {
		return mgl32.Vec3{}, false
	}
	n, ok := vec3At(b.dec.Normals, indices[corner])
	if !ok || n.Len() == 0 {
		return mgl32.Vec3{}, false
	}
	return n.Normalize(), true
}

func (b *objBuilder) texCoord(indices []int, corner int) (mgl32.Vec2, bool) {
	if corner >= len(indices) {
		return mgl32.Vec2{}, false
	}
	idx := indices[corner]
	if idx < 0 || 2*idx+1 >= len(b.dec.Uvs) {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{b.dec.Uvs[2*idx], b.dec.Uvs[2*idx+1]}, true
}

// vec3At reads the idx-th packed triple; missing indices are reported by the
// decoder as out-of-range values.
func vec3At(data []float32, idx int) (mgl32.Vec3, bool) {
	if idx < 0 || 3*idx+2 >= len(data) {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{data[3*idx], data[3*idx+1], data[3*idx+2]}, true
}
