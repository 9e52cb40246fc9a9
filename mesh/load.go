package mesh

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load picks a loader from the file extension.
func Load(path string) (MeshData, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return MeshData{}, fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, ext, path)
	}
}
