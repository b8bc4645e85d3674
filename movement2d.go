package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

// Move advances the 2D camera's velocity from the held movement keys and
// applies it to the transform's X and Y. Integration mirrors FlyCamera.Move:
// accelerate toward the held axes, oppose with friction that snaps to zero on
// overshoot, clamp to MaxSpeed, then add the velocity to the position.
func (c *FlyCamera2D) Move(dt float64, keys KeyState, tr *Transform) {
	if !c.Enabled || dt <= 0 {
		return
	}

	axisH := float64(Axis(keys, c.KeyRight, c.KeyLeft))
	axisV := float64(Axis(keys, c.KeyUp, c.KeyDown))

	accel := cp.Vector{X: axisH, Y: axisV}
	if accel.Length() != 0 {
		accel = accel.Normalize().Mult(c.Accel)
	}

	friction := cp.Vector{}
	if c.Velocity.Length() != 0 {
		friction = c.Velocity.Normalize().Mult(-c.Friction)
	}

	c.Velocity = c.Velocity.Add(accel.Mult(dt)).Clamp(c.MaxSpeed)

	damped := c.Velocity.Add(friction.Mult(dt))
	if signum64(c.Velocity.X) != signum64(damped.X) ||
		signum64(c.Velocity.Y) != signum64(damped.Y) {
		c.Velocity = cp.Vector{}
	} else {
		c.Velocity = damped
	}

	tr.Position = tr.Position.Add(mgl32.Vec3{
		float32(c.Velocity.X),
		float32(c.Velocity.Y),
		0,
	})
}
