package viewer

import (
	"io"
	"log/slog"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/toxichemicals/GO/holy-terrain/config"
	"github.com/toxichemicals/GO/holy-terrain/core"
	"github.com/toxichemicals/GO/holy-terrain/scene"
)

// Run opens the window, loads the scene and runs the frame loop until the
// window is closed. It must be called from the main OS thread.
func Run(cfg config.Config, log *slog.Logger) error {
	c := core.NewCore(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, core.Options{
		VSync: cfg.Window.VSync,
		Debug: cfg.GLDebug,
	})
	defer c.Shutdown()
	if err := c.Init(); err != nil {
		return err
	}
	c.Info().Print(os.Stdout)

	// Released before Shutdown destroys the context.
	var res core.Resources
	defer res.Release()

	var progress io.Writer = io.Discard
	if cfg.Progress {
		progress = os.Stderr
	}

	sc := scene.Default()
	a, err := loadAssets(cfg, sc, &res, progress, log)
	if err != nil {
		return err
	}

	state := NewState(a.programs)
	input := &Input{State: state, Window: c, Log: log}
	c.OnKey(func(key glfw.Key, action glfw.Action) {
		input.Key(MapKey(key), MapAction(action))
	})
	c.OnCursorPos(input.CursorPos)

	renderer := &glRenderer{
		state:   state,
		arrays:  a.arrays,
		texture: a.texture,
		light:   sc.Light,
		normal:  sc.NormalMatrix(),
	}
	loop := &Loop{Surface: c, Renderer: renderer, Scene: sc, State: state}
	log.Info("viewer started", "instances", len(sc.Instances))
	return loop.Run()
}
