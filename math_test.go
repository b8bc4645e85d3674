package flycam

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAxis(t *testing.T) {
	cases := []struct {
		name string
		keys keysDown
		want float32
	}{
		{"none", keysDown{}, 0},
		{"plus", keysDown{ebiten.KeyD: true}, 1},
		{"minus", keysDown{ebiten.KeyA: true}, -1},
		{"both_cancel", keysDown{ebiten.KeyD: true, ebiten.KeyA: true}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Axis(c.keys, ebiten.KeyD, ebiten.KeyA); got != c.want {
				t.Fatalf("Axis = %v, want %v", got, c.want)
			}
		})
	}
}

func TestYawPitchRoundTrip(t *testing.T) {
	cases := []struct {
		yaw, pitch float32
	}{
		{0, 0},
		{45, 30},
		{-120, -45},
		{170, 85},
		{-170, -85},
		{30, -89},
		{90, 0},
	}

	for _, c := range cases {
		rot := RotationFor(c.yaw, c.pitch)
		yaw, pitch := YawPitch(rot)
		if !close32(yaw, c.yaw, 0.01) || !close32(pitch, c.pitch, 0.01) {
			t.Fatalf("round trip (%v, %v) -> (%v, %v)", c.yaw, c.pitch, yaw, pitch)
		}
	}
}

func TestWalkVectorsStayHorizontal(t *testing.T) {
	for _, yaw := range []float32{0, 30, 90, -45, 135, 180} {
		rot := RotationFor(yaw, 40)

		walk := forwardWalkVector(rot)
		strafe := strafeVector(rot)

		if !close32(walk.Y(), 0, 1e-5) || !close32(strafe.Y(), 0, 1e-5) {
			t.Fatalf("yaw %v: walk %v strafe %v left the horizontal plane", yaw, walk, strafe)
		}
		if !close32(walk.Len(), 1, 1e-4) || !close32(strafe.Len(), 1, 1e-4) {
			t.Fatalf("yaw %v: walk %v strafe %v not unit length", yaw, walk, strafe)
		}
		if dot := walk.Dot(strafe); !close32(dot, 0, 1e-4) {
			t.Fatalf("yaw %v: walk and strafe not perpendicular, dot %v", yaw, dot)
		}
	}
}

func TestSignumTreatsZeroAsPositive(t *testing.T) {
	if signum32(0) != 1 {
		t.Fatalf("signum32(0) = %v, want 1", signum32(0))
	}
	if signum32(float32(negZero64())) != -1 {
		t.Fatalf("signum32(-0) = %v, want -1", signum32(float32(negZero64())))
	}
	if signum64(0) != 1 || signum64(negZero64()) != -1 {
		t.Fatalf("signum64 sign convention broken")
	}
}

func negZero64() float64 {
	z := 0.0
	return -z
}
