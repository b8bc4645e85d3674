package flycam

import "github.com/go-gl/mathgl/mgl32"

// Move advances the camera's velocity from the held movement keys and applies
// it to the transform. dt is the tick's elapsed time in seconds.
//
// Acceleration is built in the camera's yaw-flattened local frame, so forward
// motion follows the view heading without climbing or diving with pitch.
// Friction opposes the current velocity and snaps it to exactly zero instead
// of overshooting past it, and speed is clamped to MaxSpeed after every step.
func (c *FlyCamera) Move(dt float64, keys KeyState, tr *Transform) {
	if !c.Enabled || dt <= 0 {
		return
	}

	axisH := Axis(keys, c.KeyRight, c.KeyLeft)
	axisV := Axis(keys, c.KeyBackward, c.KeyForward)
	axisFloat := Axis(keys, c.KeyUp, c.KeyDown)

	accel := forwardWalkVector(tr.Rotation).Mul(axisV).
		Add(strafeVector(tr.Rotation).Mul(axisH)).
		Add(worldUp.Mul(axisFloat))
	if accel.Len() != 0 {
		accel = accel.Normalize().Mul(c.Accel)
	}

	friction := mgl32.Vec3{}
	if c.Velocity.Len() != 0 {
		friction = c.Velocity.Normalize().Mul(-c.Friction)
	}

	c.Velocity = c.Velocity.Add(accel.Mul(float32(dt)))
	if c.Velocity.Len() > c.MaxSpeed {
		c.Velocity = c.Velocity.Normalize().Mul(c.MaxSpeed)
	}

	damped := c.Velocity.Add(friction.Mul(float32(dt)))
	if frictionOvershot(c.Velocity, damped) {
		c.Velocity = mgl32.Vec3{}
	} else {
		c.Velocity = damped
	}

	tr.Position = tr.Position.Add(c.Velocity)
}

// frictionOvershot reports whether applying friction flipped the sign of any
// velocity component, meaning the decelerating step crossed zero.
func frictionOvershot(before, after mgl32.Vec3) bool {
	return signum32(before.X()) != signum32(after.X()) ||
		signum32(before.Y()) != signum32(after.Y()) ||
		signum32(before.Z()) != signum32(after.Z())
}
