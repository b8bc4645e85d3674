package flycam

import "math"

// Pitch is clamped short of straight up and down to keep the yaw-then-pitch
// reconstruction away from the gimbal singularity.
const (
	minPitch = -89.0
	maxPitch = 89.9
)

// Look applies an accumulated mouse delta to the camera's yaw and pitch and
// rebuilds the transform's rotation from them. dx and dy are the summed mouse
// motion since the last tick in pixels; dt is the tick's elapsed time in
// seconds.
func (c *FlyCamera) Look(dt float64, dx, dy float32, tr *Transform) {
	if !c.Enabled || dt <= 0 {
		return
	}
	// A poisoned accumulation would corrupt yaw and pitch for every frame
	// after this one.
	if math.IsNaN(float64(dx)) || math.IsNaN(float64(dy)) {
		return
	}

	if c.DeriveAngles {
		c.Yaw, c.Pitch = YawPitch(tr.Rotation)
		c.DeriveAngles = false
	}

	if dx == 0 && dy == 0 {
		return
	}

	c.Yaw -= dx * c.Sensitivity * float32(dt)
	c.Pitch += dy * c.Sensitivity * float32(dt)
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < minPitch {
		c.Pitch = minPitch
	}

	tr.Rotation = RotationFor(c.Yaw, c.Pitch)
}
