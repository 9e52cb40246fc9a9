// Package transform composes the per-frame model, view and projection
// matrices. Matrices are mgl32 column-major values and are uploaded to GL
// without transposition.
package transform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection parameters
const (
	FieldOfView float32 = 60.0 // degrees, vertical
	NearPlane   float32 = 0.1
	FarPlane    float32 = 100.0
)

// ErrEmptyFramebuffer is returned when the drawable has no area, e.g. while
// the window is minimized.
var ErrEmptyFramebuffer = errors.New("transform: framebuffer has zero size")

func RotationX(theta float32) mgl32.Mat4 { return mgl32.HomogRotate3DX(theta) }

func RotationY(phi float32) mgl32.Mat4 { return mgl32.HomogRotate3DY(phi) }

func Translation(v mgl32.Vec3) mgl32.Mat4 { return mgl32.Translate3D(v[0], v[1], v[2]) }

// World2Camera rotates world space into camera space: pitch, then yaw.
func World2Camera(theta, phi float32) mgl32.Mat4 {
	return RotationX(theta).Mul4(RotationY(phi))
}

// Model2World moves the scene opposite to the camera position.
func Model2World(pos mgl32.Vec3) mgl32.Mat4 {
	return Translation(pos.Mul(-1))
}

// Projection returns the perspective projection for a framebuffer of the
// given size.
func Projection(width, height int) (mgl32.Mat4, error) {
	if width <= 0 || height <= 0 {
		return mgl32.Mat4{}, ErrEmptyFramebuffer
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane), nil
}

// NormalMatrix is the upper-left 3x3 of the inverse transpose of model.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Inv().Transpose().Mat3()
}

// Frame holds the matrices shared by every draw call of one frame.
type Frame struct {
	Projection      mgl32.Mat4
	World2Camera    mgl32.Mat4
	Model2World     mgl32.Mat4
	ProjCameraWorld mgl32.Mat4
}

// NewFrame builds the frame matrices from the camera angles and position.
func NewFrame(theta, phi float32, pos mgl32.Vec3, width, height int) (Frame, error) {
	proj, err := Projection(width, height)
	if err != nil {
		return Frame{}, err
	}
	f := Frame{
		Projection:   proj,
		World2Camera: World2Camera(theta, phi),
		Model2World:  Model2World(pos),
	}
	f.ProjCameraWorld = f.Projection.Mul4(f.World2Camera).Mul4(f.Model2World)
	return f, nil
}

// Instance returns the full transform for a scene instance placed at offset.
func (f Frame) Instance(offset mgl32.Vec3) mgl32.Mat4 {
	return f.ProjCameraWorld.Mul4(Translation(offset))
}
