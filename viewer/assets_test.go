package viewer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/toxichemicals/GO/holy-terrain/config"
	"github.com/toxichemicals/GO/holy-terrain/scene"
)

func TestMeshFilesCoverEveryInstance(t *testing.T) {
	a := config.Default().Assets
	sc := scene.Default()

	files, err := meshFiles(a, sc)
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[string]string)
	for _, f := range files {
		got[f.key] = f.path
	}
	for _, in := range sc.Instances {
		if _, ok := got[in.Mesh]; !ok {
			t.Fatalf("instance %s uses mesh %q with no file", in.Name, in.Mesh)
		}
	}
	if len(files) != 2 {
		t.Fatalf("%d mesh files, want one per distinct mesh", len(files))
	}
	if got[scene.MeshLandingPad] != filepath.Join("assets", "landingpad.obj") {
		t.Fatalf("landing pad path = %q", got[scene.MeshLandingPad])
	}
}

func TestMeshFilesRejectUnknownMesh(t *testing.T) {
	sc := scene.Default()
	sc.Instances = append(sc.Instances, scene.Instance{Name: "tower", Mesh: "tower"})

	_, err := meshFiles(config.Default().Assets, sc)
	if err == nil || !strings.Contains(err.Error(), `"tower"`) {
		t.Fatalf("err = %v, want unconfigured mesh error", err)
	}
}
