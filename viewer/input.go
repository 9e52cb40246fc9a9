package viewer

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/toxichemicals/GO/holy-terrain/camera"
)

// Window is the part of the window the input handlers act on.
type Window interface {
	SetShouldClose(bool)
	SetCursorHidden(bool)
}

// Input routes window events into the camera and performs the commands the
// camera hands back.
type Input struct {
	State  *State
	Window Window
	Log    *slog.Logger
}

func (in *Input) Key(key camera.Key, action camera.Action) {
	switch in.State.Camera.HandleKey(key, action) {
	case camera.CommandQuit:
		in.Window.SetShouldClose(true)
	case camera.CommandReload:
		in.State.ReloadPrograms(in.Log)
	case camera.CommandToggle:
		in.Window.SetCursorHidden(in.State.Camera.Active)
		in.Log.Debug("camera toggled", "active", in.State.Camera.Active)
	}
}

func (in *Input) CursorPos(x, y float64) {
	in.State.Camera.HandleMotion(x, y)
}

var keyMap = map[glfw.Key]camera.Key{
	glfw.KeyEscape:      camera.KeyEscape,
	glfw.KeyR:           camera.KeyReload,
	glfw.KeySpace:       camera.KeyToggle,
	glfw.KeyW:           camera.KeyForward,
	glfw.KeyS:           camera.KeyBackward,
	glfw.KeyA:           camera.KeyLeft,
	glfw.KeyD:           camera.KeyRight,
	glfw.KeyE:           camera.KeyUp,
	glfw.KeyQ:           camera.KeyDown,
	glfw.KeyLeftShift:   camera.KeySprint,
	glfw.KeyLeftControl: camera.KeyCrouch,
}

// MapKey translates a GLFW key code. Unbound keys map to camera.KeyUnknown.
func MapKey(k glfw.Key) camera.Key {
	if ck, ok := keyMap[k]; ok {
		return ck
	}
	return camera.KeyUnknown
}

func MapAction(a glfw.Action) camera.Action {
	switch a {
	case glfw.Press:
		return camera.Press
	case glfw.Repeat:
		return camera.Repeat
	default:
		return camera.Release
	}
}
