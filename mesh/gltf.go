package mesh

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF reads every triangle primitive of a glTF or GLB document into one
// non-indexed mesh. The primitive's base colour factor becomes the flat
// vertex colour. Primitives without TEXCOORD_0 drop texture coordinates for
// the whole mesh, matching LoadOBJ.
func LoadGLTF(path string) (MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return MeshData{}, fmt.Errorf("failed to open glTF file %s: %w", path, err)
	}

	var out MeshData
	uvs := true
	for _, m := range doc.Meshes {
		for pi, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				slog.Warn("skipping non-triangle glTF primitive", "path", path, "mesh", m.Name, "primitive", pi)
				continue
			}
			part, hasUV, err := loadPrimitive(doc, prim)
			if err != nil {
				return MeshData{}, fmt.Errorf("glTF file %s, mesh %q primitive %d: %w", path, m.Name, pi, err)
			}
			uvs = uvs && hasUV
			if out, err = Concatenate(out, part); err != nil {
				return MeshData{}, fmt.Errorf("glTF file %s: %w", path, err)
			}
		}
	}
	if !uvs {
		out.TexCoords = nil
	}
	if out.VertexCount() == 0 {
		return MeshData{}, fmt.Errorf("%w: glTF file %s has no triangles", ErrInvalidMesh, path)
	}

	slog.Debug("loaded glTF", "path", path, "vertices", out.VertexCount(), "texcoords", out.HasTexCoords())
	return out, nil
}

func loadPrimitive(doc *gltf.Document, prim *gltf.Primitive) (MeshData, bool, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return MeshData{}, false, fmt.Errorf("%w: no POSITION attribute", ErrInvalidMesh)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return MeshData{}, false, fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return MeshData{}, false, fmt.Errorf("read normals: %w", err)
		}
	}

	var texCoords [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if texCoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return MeshData{}, false, fmt.Errorf("read texture coordinates: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		if indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
			return MeshData{}, false, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return MeshData{}, false, fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrInvalidMesh, len(indices))
	}

	color := primitiveColor(doc, prim)
	m := MeshData{
		Positions: make([]mgl32.Vec3, 0, len(indices)),
		Colors:    make([]mgl32.Vec3, 0, len(indices)),
		Normals:   make([]mgl32.Vec3, 0, len(indices)),
		TexCoords: make([]mgl32.Vec2, 0, len(indices)),
	}
	for t := 0; t < len(indices); t += 3 {
		var tri [3]mgl32.Vec3
		for c := 0; c < 3; c++ {
			i := int(indices[t+c])
			if i >= len(positions) {
				return MeshData{}, false, fmt.Errorf("%w: index %d out of range", ErrInvalidMesh, i)
			}
			tri[c] = positions[i]
		}
		flat := faceNormal(tri[0], tri[1], tri[2])

		for c := 0; c < 3; c++ {
			i := int(indices[t+c])
			m.Positions = append(m.Positions, tri[c])
			m.Colors = append(m.Colors, color)
			if i < len(normals) {
				m.Normals = append(m.Normals, normals[i])
			} else {
				m.Normals = append(m.Normals, flat)
			}
			if i < len(texCoords) {
				m.TexCoords = append(m.TexCoords, texCoords[i])
			} else {
				m.TexCoords = append(m.TexCoords, mgl32.Vec2{})
			}
		}
	}
	return m, len(texCoords) > 0, nil
}

func primitiveColor(doc *gltf.Document, prim *gltf.Primitive) mgl32.Vec3 {
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return defaultColor
	}
	pbr := doc.Materials[*prim.Material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return defaultColor
	}
	f := pbr.BaseColorFactor
	return mgl32.Vec3{float32(f[0]), float32(f[1]), float32(f[2])}
}
