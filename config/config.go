// Package config loads the viewer's startup configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config flag
// is given.
const DefaultPath = "holy-terrain.yaml"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Assets names the startup files. Relative names are resolved against Dir.
type Assets struct {
	Dir              string `yaml:"dir"`
	DefaultVertex    string `yaml:"default_vertex"`
	DefaultFragment  string `yaml:"default_fragment"`
	TexturedVertex   string `yaml:"textured_vertex"`
	TexturedFragment string `yaml:"textured_fragment"`
	Terrain          string `yaml:"terrain"`
	LandingPad       string `yaml:"landing_pad"`
	TerrainTexture   string `yaml:"terrain_texture"`
}

type Config struct {
	Window   Window `yaml:"window"`
	Assets   Assets `yaml:"assets"`
	GLDebug  bool   `yaml:"gl_debug"`
	Progress bool   `yaml:"progress"`
}

// Default returns the built-in configuration: a 1280x720 vsynced window and
// the stock asset set under ./assets.
func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Holy Terrain",
			VSync:  true,
		},
		Assets: Assets{
			Dir:              "assets",
			DefaultVertex:    "default.vert",
			DefaultFragment:  "default.frag",
			TexturedVertex:   "textures.vert",
			TexturedFragment: "textures.frag",
			Terrain:          "parlahti.obj",
			LandingPad:       "landingpad.obj",
			TerrainTexture:   "L4343A-4k.jpeg",
		},
		Progress: true,
	}
}

// Load reads path over the defaults. A missing file yields the defaults; a
// malformed or invalid one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	for name, v := range map[string]string{
		"default_vertex":    c.Assets.DefaultVertex,
		"default_fragment":  c.Assets.DefaultFragment,
		"textured_vertex":   c.Assets.TexturedVertex,
		"textured_fragment": c.Assets.TexturedFragment,
		"terrain":           c.Assets.Terrain,
		"landing_pad":       c.Assets.LandingPad,
		"terrain_texture":   c.Assets.TerrainTexture,
	} {
		if v == "" {
			return fmt.Errorf("assets.%s is empty", name)
		}
	}
	return nil
}

// Path resolves an asset name against the asset directory.
func (a Assets) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.Dir, name)
}
