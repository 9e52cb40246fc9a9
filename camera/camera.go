// Package camera holds the free-flying camera pose and turns keyboard and
// pointer events into movement flags and look angles.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera and input constants
const (
	MouseSensitivity float32 = 0.01 // radians per pixel

	SpeedWalk   float32 = 5.0 // units per second
	SpeedSprint float32 = 10.0
	SpeedCrouch float32 = 2.5

	DefaultRadius float32 = 10.0
	MinRadius     float32 = 0.1

	MaxPitch = math32.Pi / 2
)

var worldUp = mgl32.Vec3{0, 1, 0}

// State is the camera pose plus the input flags that drive it. It is only
// touched from the thread that owns the window.
type State struct {
	Active bool

	MoveForward, MoveBackward bool
	MoveLeft, MoveRight       bool
	MoveUp, MoveDown          bool
	Sprint, Crouch            bool

	Phi   float32 // yaw
	Theta float32 // pitch, clamped to [-MaxPitch, MaxPitch]

	// Radius is kept from the orbit camera this one replaced. Nothing reads
	// it for rendering, but it is still floor-clamped every frame.
	Radius float32

	Position mgl32.Vec3

	LastX, LastY float32
}

// New returns an inactive camera at the origin looking down -Z.
func New() *State {
	return &State{Radius: DefaultRadius}
}

// HandleKey applies a key event and reports the side effect the caller must
// perform. Escape, reload and toggle work whether or not the camera is active;
// movement keys are ignored while it is inactive.
func (s *State) HandleKey(key Key, action Action) Command {
	if action == Press {
		switch key {
		case KeyEscape:
			return CommandQuit
		case KeyReload:
			return CommandReload
		case KeyToggle:
			s.Active = !s.Active
			return CommandToggle
		}
	}

	if !s.Active {
		return CommandNone
	}

	flag := s.flagFor(key)
	if flag == nil {
		return CommandNone
	}
	switch action {
	case Press:
		*flag = true
	case Release:
		*flag = false
	}
	return CommandNone
}

func (s *State) flagFor(key Key) *bool {
	switch key {
	case KeyForward:
		return &s.MoveForward
	case KeyBackward:
		return &s.MoveBackward
	case KeyLeft:
		return &s.MoveLeft
	case KeyRight:
		return &s.MoveRight
	case KeyUp:
		return &s.MoveUp
	case KeyDown:
		return &s.MoveDown
	case KeySprint:
		return &s.Sprint
	case KeyCrouch:
		return &s.Crouch
	}
	return nil
}

// HandleMotion applies a pointer position. The last position is recorded
// even while inactive so that activating the camera does not cause a jump.
func (s *State) HandleMotion(x, y float64) {
	fx, fy := float32(x), float32(y)
	if s.Active {
		s.Phi += (fx - s.LastX) * MouseSensitivity
		s.Theta = mgl32.Clamp(s.Theta+(fy-s.LastY)*MouseSensitivity, -MaxPitch, MaxPitch)
	}
	s.LastX, s.LastY = fx, fy
}

// Speed returns the movement speed for the current flags. Sprint wins over
// crouch when both are held.
func (s *State) Speed() float32 {
	switch {
	case s.Sprint:
		return SpeedSprint
	case s.Crouch:
		return SpeedCrouch
	default:
		return SpeedWalk
	}
}

// Forward is the unit look direction for the current yaw and pitch.
func (s *State) Forward() mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Sin(s.Phi),
		math32.Sin(s.Theta),
		-math32.Cos(s.Phi),
	}.Normalize()
}

// Left is the unit strafe direction, perpendicular to Forward and world up.
func (s *State) Left() mgl32.Vec3 {
	return worldUp.Cross(s.Forward()).Normalize()
}

// Integrate advances the position by dt seconds of movement.
//
// Forward and backward movement subtract the Y component instead of adding
// it; strafing does not. Simultaneous directions add up without being
// renormalised, so diagonal movement is faster.
func (s *State) Integrate(dt float32) {
	step := s.Speed() * dt

	if s.MoveForward {
		s.moveLook(s.Forward().Mul(step))
	}
	if s.MoveBackward {
		s.moveLook(s.Forward().Mul(-step))
	}
	if s.MoveLeft {
		s.Position = s.Position.Add(s.Left().Mul(step))
	}
	if s.MoveRight {
		s.Position = s.Position.Add(s.Left().Mul(-step))
	}
	if s.MoveUp {
		s.Position[1] += step
	}
	if s.MoveDown {
		s.Position[1] -= step
	}

	if s.Radius <= MinRadius {
		s.Radius = MinRadius
	}
}

func (s *State) moveLook(d mgl32.Vec3) {
	s.Position[0] += d[0]
	s.Position[1] -= d[1]
	s.Position[2] += d[2]
}
