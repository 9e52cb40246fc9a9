package viewer

import (
	"fmt"
	"time"

	"github.com/toxichemicals/GO/holy-terrain/scene"
	"github.com/toxichemicals/GO/holy-terrain/transform"
)

// Surface is the window as seen by the frame loop.
type Surface interface {
	ShouldClose() bool
	PollEvents()
	WaitEvents()
	FramebufferSize() (int, int)
	SwapBuffers()
}

// Renderer issues the draw calls for one frame.
type Renderer interface {
	Begin(width, height int)
	Draw(in scene.Instance, frame transform.Frame)
}

type Loop struct {
	Surface  Surface
	Renderer Renderer
	Scene    scene.Scene
	State    *State

	// Now defaults to time.Now.
	Now func() time.Time

	last time.Time
}

func (l *Loop) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

// Step runs one frame. It reports false without drawing when the window was
// asked to close while minimized.
func (l *Loop) Step() (bool, error) {
	if l.last.IsZero() {
		l.last = l.now()
	}

	l.Surface.PollEvents()

	w, h := l.Surface.FramebufferSize()
	for w == 0 || h == 0 {
		if l.Surface.ShouldClose() {
			return false, nil
		}
		l.Surface.WaitEvents()
		w, h = l.Surface.FramebufferSize()
	}

	l.Renderer.Begin(w, h)

	t := l.now()
	dt := float32(t.Sub(l.last).Seconds())
	l.last = t

	cam := l.State.Camera
	cam.Integrate(dt)

	frame, err := transform.NewFrame(cam.Theta, cam.Phi, cam.Position, w, h)
	if err != nil {
		return false, fmt.Errorf("build frame: %w", err)
	}
	for _, in := range l.Scene.Instances {
		l.Renderer.Draw(in, frame)
	}

	l.Surface.SwapBuffers()
	return true, nil
}

// Run steps until the window should close.
func (l *Loop) Run() error {
	for !l.Surface.ShouldClose() {
		if _, err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}
