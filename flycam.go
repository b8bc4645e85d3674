// Package flycam provides free-fly (3D) and pan (2D) camera controllers for
// ark worlds driven by ebiten input. Keybinds follow Minecraft:
//   - W / A / S / D - move along the horizontal plane
//   - Space - move upward
//   - Left shift - move downward
//
// Attach a FlyCamera or FlyCamera2D to an entity alongside a Transform and
// install Plugin to drive them:
//
//	tool := app.New(64)
//	flycam.Plugin{}.Install(tool)
//	cam, tr := flycam.NewFlyCamera(), flycam.NewTransform(0, 0, 0)
//	ecs.NewMap2[flycam.FlyCamera, flycam.Transform](&tool.World).NewEntity(&cam, &tr)
package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// KeyState reports which keys are currently held. *input.State implements it;
// tests can substitute a plain map.
type KeyState interface {
	Pressed(k ebiten.Key) bool
}

// FlyCamera configures and tracks a free-fly 3D camera.
type FlyCamera struct {
	// Accel is the acceleration applied while a movement key is held.
	Accel float32
	// MaxSpeed caps the magnitude of Velocity.
	MaxSpeed float32
	// Sensitivity scales mouse motion into yaw and pitch changes.
	Sensitivity float32
	// Friction decelerates the camera while no movement key is held.
	Friction float32
	// Velocity is the current velocity, kept up to date by the movement
	// system.
	Velocity mgl32.Vec3
	// Yaw and Pitch are the current look angles in degrees, kept up to date
	// by the look system.
	Yaw   float32
	Pitch float32

	KeyForward  ebiten.Key
	KeyBackward ebiten.Key
	KeyLeft     ebiten.Key
	KeyRight    ebiten.Key
	KeyUp       ebiten.Key
	KeyDown     ebiten.Key

	// DeriveAngles makes the look system seed Yaw and Pitch from the
	// transform's rotation on its first update instead of starting at zero.
	// Cleared once the seed has happened.
	DeriveAngles bool

	// Enabled toggles keyboard and mouse control of the camera. A disabled
	// camera's transform stays frozen no matter the input.
	Enabled bool
}

// NewFlyCamera returns a FlyCamera with the default tuning and bindings.
func NewFlyCamera() FlyCamera {
	return FlyCamera{
		Accel:        1.5,
		MaxSpeed:     0.5,
		Sensitivity:  3.0,
		Friction:     1.0,
		KeyForward:   ebiten.KeyW,
		KeyBackward:  ebiten.KeyS,
		KeyLeft:      ebiten.KeyA,
		KeyRight:     ebiten.KeyD,
		KeyUp:        ebiten.KeySpace,
		KeyDown:      ebiten.KeyShiftLeft,
		DeriveAngles: true,
		Enabled:      true,
	}
}

// FlyCamera2D configures and tracks a keyboard-panned 2D camera. It moves in
// the world XY plane and leaves the transform's rotation and Z alone.
type FlyCamera2D struct {
	// Accel is the acceleration applied while a movement key is held.
	Accel float64
	// MaxSpeed caps the magnitude of Velocity.
	MaxSpeed float64
	// Friction decelerates the camera while no movement key is held.
	Friction float64
	// Velocity is the current velocity, kept up to date by the movement
	// system.
	Velocity cp.Vector

	KeyLeft  ebiten.Key
	KeyRight ebiten.Key
	KeyUp    ebiten.Key
	KeyDown  ebiten.Key

	// Enabled toggles keyboard control of the camera. A disabled camera's
	// transform stays frozen no matter the input.
	Enabled bool
}

// NewFlyCamera2D returns a FlyCamera2D with the default tuning and bindings.
func NewFlyCamera2D() FlyCamera2D {
	return FlyCamera2D{
		Accel:    30,
		MaxSpeed: 10,
		Friction: 17.5,
		KeyLeft:  ebiten.KeyA,
		KeyRight: ebiten.KeyD,
		KeyUp:    ebiten.KeyW,
		KeyDown:  ebiten.KeyS,
		Enabled:  true,
	}
}

// Axis converts a pair of opposing key states into a signed axis value in
// {-1, 0, 1}.
func Axis(keys KeyState, plus, minus ebiten.Key) float32 {
	var axis float32
	if keys.Pressed(plus) {
		axis += 1
	}
	if keys.Pressed(minus) {
		axis -= 1
	}
	return axis
}
