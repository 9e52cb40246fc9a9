// Package mesh holds CPU-side triangle meshes and the loaders that build them
// from model files.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrInvalidMesh       = errors.New("mesh: invalid mesh data")
	ErrUnsupportedFormat = errors.New("mesh: unsupported model format")

	errAttributeMismatch = fmt.Errorf("%w: attribute sets differ", ErrInvalidMesh)
	defaultColor         = mgl32.Vec3{1, 1, 1}
)

// MeshData is a fully expanded triangle list: every three consecutive
// positions form one triangle and there is no index buffer. Colors, Normals
// and TexCoords are either empty or parallel to Positions.
type MeshData struct {
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
}

// VertexCount returns the number of vertices.
func (m *MeshData) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles.
func (m *MeshData) TriangleCount() int { return len(m.Positions) / 3 }

// HasTexCoords reports whether the mesh carries texture coordinates.
func (m *MeshData) HasTexCoords() bool { return len(m.TexCoords) > 0 }

// Validate checks the attribute length invariant.
func (m *MeshData) Validate() error {
	n := len(m.Positions)
	if n%3 != 0 {
		return fmt.Errorf("%w: %d positions is not a whole number of triangles", ErrInvalidMesh, n)
	}
	check := func(name string, l int) error {
		if l != 0 && l != n {
			return fmt.Errorf("%w: %d %s for %d positions", ErrInvalidMesh, l, name, n)
		}
		return nil
	}
	if err := check("colors", len(m.Colors)); err != nil {
		return err
	}
	if err := check("normals", len(m.Normals)); err != nil {
		return err
	}
	return check("texcoords", len(m.TexCoords))
}

// Concatenate appends b to a. Both meshes must carry the same set of
// attributes.
func Concatenate(a, b MeshData) (MeshData, error) {
	if a.VertexCount() == 0 {
		return b, nil
	}
	if b.VertexCount() == 0 {
		return a, nil
	}
	same := func(x, y int) bool { return (x == 0) == (y == 0) }
	if !same(len(a.Colors), len(b.Colors)) ||
		!same(len(a.Normals), len(b.Normals)) ||
		!same(len(a.TexCoords), len(b.TexCoords)) {
		return MeshData{}, errAttributeMismatch
	}

	out := MeshData{
		Positions: append(append(make([]mgl32.Vec3, 0, len(a.Positions)+len(b.Positions)), a.Positions...), b.Positions...),
		Colors:    append(append([]mgl32.Vec3(nil), a.Colors...), b.Colors...),
		Normals:   append(append([]mgl32.Vec3(nil), a.Normals...), b.Normals...),
		TexCoords: append(append([]mgl32.Vec2(nil), a.TexCoords...), b.TexCoords...),
	}
	return out, nil
}

// faceNormal returns the unit normal of a counter-clockwise triangle, or +Y
// for degenerate triangles.
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
