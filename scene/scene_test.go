package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultScene(t *testing.T) {
	s := Default()
	if len(s.Instances) != 3 {
		t.Fatalf("instances = %d, want 3", len(s.Instances))
	}
	if in := s.Instances[0]; in.Mesh != MeshTerrain || !in.Textured || in.Offset != (mgl32.Vec3{}) {
		t.Fatalf("terrain instance = %+v", in)
	}
	for _, in := range s.Instances[1:] {
		if in.Mesh != MeshLandingPad || in.Textured {
			t.Fatalf("pad instance = %+v", in)
		}
	}
	if got := s.Meshes(); len(got) != 2 || got[0] != MeshTerrain || got[1] != MeshLandingPad {
		t.Fatalf("Meshes() = %v", got)
	}
	if l := s.Light.Direction.Len(); !mgl32.FloatEqual(l, 1) {
		t.Fatalf("light direction length = %v, want 1", l)
	}
}

func TestNormalMatrixIsIdentityForTranslation(t *testing.T) {
	if n := Default().NormalMatrix(); !n.ApproxEqualThreshold(mgl32.Ident3(), 1e-6) {
		t.Fatalf("NormalMatrix() = %v, want identity", n)
	}
}
