package viewer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/schollz/progressbar/v3"
	"github.com/toxichemicals/GO/holy-terrain/config"
	"github.com/toxichemicals/GO/holy-terrain/core"
	"github.com/toxichemicals/GO/holy-terrain/gpu"
	"github.com/toxichemicals/GO/holy-terrain/mesh"
	"github.com/toxichemicals/GO/holy-terrain/scene"
	"github.com/toxichemicals/GO/holy-terrain/shader"
	"github.com/toxichemicals/GO/holy-terrain/texture"
)

// assets are the GPU objects created at startup. All of them are tracked by
// the Resources they were loaded into.
type assets struct {
	programs map[string]*shader.Program
	arrays   map[string]*gpu.VertexArray
	texture  *texture.Texture
}

// meshFile is a scene mesh key and the file it is loaded from.
type meshFile struct {
	key, path string
}

// meshFiles resolves every mesh the scene draws to a configured file, in
// first-use order. A scene mesh with no configured file is an error.
func meshFiles(a config.Assets, sc scene.Scene) ([]meshFile, error) {
	names := map[string]string{
		scene.MeshTerrain:    a.Terrain,
		scene.MeshLandingPad: a.LandingPad,
	}
	var files []meshFile
	for _, key := range sc.Meshes() {
		name, ok := names[key]
		if !ok {
			return nil, fmt.Errorf("no file configured for mesh %q", key)
		}
		files = append(files, meshFile{key: key, path: a.Path(name)})
	}
	return files, nil
}

func loadAssets(cfg config.Config, sc scene.Scene, res *core.Resources, progress io.Writer, log *slog.Logger) (*assets, error) {
	a := cfg.Assets
	files, err := meshFiles(a, sc)
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(2+len(files)+1,
		progressbar.OptionSetDescription("loading assets"),
		progressbar.OptionSetWriter(progress),
	)
	defer bar.Finish()

	out := &assets{
		programs: make(map[string]*shader.Program),
		arrays:   make(map[string]*gpu.VertexArray),
	}

	programs := []struct {
		name         string
		vertex, frag string
	}{
		{ProgramDefault, a.DefaultVertex, a.DefaultFragment},
		{ProgramTextured, a.TexturedVertex, a.TexturedFragment},
	}
	for _, p := range programs {
		bar.Describe("shader " + p.name)
		prog, err := shader.New(shader.GLCompiler{},
			shader.Stage{Type: gl.VERTEX_SHADER, Path: a.Path(p.vertex)},
			shader.Stage{Type: gl.FRAGMENT_SHADER, Path: a.Path(p.frag)},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s program: %w", p.name, err)
		}
		res.Track(prog)
		out.programs[p.name] = prog
		bar.Add(1)
	}

	for _, f := range files {
		key, path := f.key, f.path
		bar.Describe("mesh " + key)

		data, err := mesh.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load mesh %s: %w", path, err)
		}
		vao, err := gpu.NewVertexArray(&data)
		if err != nil {
			return nil, fmt.Errorf("failed to upload mesh %s: %w", path, err)
		}
		res.Track(vao)
		out.arrays[key] = vao
		log.Debug("mesh loaded", "path", path, "vertices", vao.Count(), "textured", data.HasTexCoords())
		bar.Add(1)
	}

	path := a.Path(a.TerrainTexture)
	bar.Describe("texture")
	tex, err := texture.Load2D(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	res.Track(tex)
	out.texture = tex
	w, h := tex.Size()
	log.Debug("texture loaded", "path", path, "width", w, "height", h)
	bar.Add(1)

	if err := core.Checkpoint("asset upload"); err != nil {
		return nil, err
	}
	return out, nil
}
