package flycam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// forwardVector is the camera's local +Z axis in world space. The camera
// looks down its local -Z, so this points behind the view; movement code
// scales it by a signed axis and never cares which way it faces.
func forwardVector(rot mgl32.Quat) mgl32.Vec3 {
	return rot.Rotate(mgl32.Vec3{0, 0, 1}).Normalize()
}

// forwardWalkVector is forwardVector flattened onto the horizontal plane, so
// walking forward never gains or loses height however far the camera pitches.
func forwardWalkVector(rot mgl32.Quat) mgl32.Vec3 {
	f := forwardVector(rot)
	return mgl32.Vec3{f.X(), 0, f.Z()}.Normalize()
}

// strafeVector is forwardWalkVector rotated 90 degrees around world up.
func strafeVector(rot mgl32.Quat) mgl32.Vec3 {
	return mgl32.QuatRotate(mgl32.DegToRad(90), worldUp).
		Rotate(forwardWalkVector(rot)).
		Normalize()
}

// RotationFor builds the roll-free rotation for the given yaw and pitch in
// degrees: yaw around world up, then pitch around the camera's local right.
func RotationFor(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(yaw), worldUp).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(pitch), mgl32.Vec3{-1, 0, 0}))
}

// YawPitch extracts the yaw and pitch angles in degrees encoded in rot.
// Inverse of RotationFor for roll-free rotations, which is all the look
// system ever produces.
func YawPitch(rot mgl32.Quat) (yaw, pitch float32) {
	f := forwardVector(rot)
	sinPitch := f.Y()
	if sinPitch > 1 {
		sinPitch = 1
	}
	if sinPitch < -1 {
		sinPitch = -1
	}
	pitch = mgl32.RadToDeg(float32(math.Asin(float64(sinPitch))))
	yaw = mgl32.RadToDeg(float32(math.Atan2(float64(f.X()), float64(f.Z()))))
	return yaw, pitch
}

// signum32 matches the sign convention the friction check needs: zero counts
// as positive, so a component decaying to exactly zero is not a sign flip.
func signum32(v float32) float32 {
	if math.Signbit(float64(v)) {
		return -1
	}
	return 1
}

func signum64(v float64) float64 {
	if math.Signbit(v) {
		return -1
	}
	return 1
}
