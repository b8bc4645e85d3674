package flycam

import "github.com/go-gl/mathgl/mgl32"

// Transform is the position and orientation record shared with the host's
// rendering. The look and movement systems read and overwrite it every tick.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform returns an identity-rotation transform at the given position.
func NewTransform(x, y, z float32) Transform {
	return Transform{
		Position: mgl32.Vec3{x, y, z},
		Rotation: mgl32.QuatIdent(),
	}
}
