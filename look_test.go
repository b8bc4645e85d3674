package flycam

import (
	"math"
	"testing"
)

func TestLookPitchStaysClamped(t *testing.T) {
	cases := []struct {
		name string
		dy   float32
		want float32
	}{
		{"pitch_up", 1000, maxPitch},
		{"pitch_down", -1000, minPitch},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewFlyCamera()
			tr := NewTransform(0, 0, 0)
			for i := 0; i < 100; i++ {
				cam.Look(testDt, 0, c.dy, &tr)
				if cam.Pitch < minPitch || cam.Pitch > maxPitch {
					t.Fatalf("step %d: pitch %v out of range", i, cam.Pitch)
				}
			}
			if cam.Pitch != c.want {
				t.Fatalf("pitch = %v, want saturated at %v", cam.Pitch, c.want)
			}
		})
	}
}

func TestLookAppliesSensitivityAndDt(t *testing.T) {
	cam := NewFlyCamera()
	cam.Sensitivity = 3
	cam.DeriveAngles = false
	tr := NewTransform(0, 0, 0)

	cam.Look(0.1, 10, 20, &tr)

	if got, want := cam.Yaw, float32(-3); !close32(got, want, 1e-4) {
		t.Fatalf("yaw = %v, want %v", got, want)
	}
	if got, want := cam.Pitch, float32(6); !close32(got, want, 1e-4) {
		t.Fatalf("pitch = %v, want %v", got, want)
	}
}

func TestLookNaNDeltaIgnored(t *testing.T) {
	nan := float32(math.NaN())
	cases := []struct {
		name   string
		dx, dy float32
	}{
		{"nan_dx", nan, 5},
		{"nan_dy", 5, nan},
		{"nan_both", nan, nan},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewFlyCamera()
			cam.DeriveAngles = false
			cam.Yaw, cam.Pitch = 12, -7
			tr := NewTransform(0, 0, 0)
			tr.Rotation = RotationFor(cam.Yaw, cam.Pitch)
			before := tr.Rotation

			cam.Look(testDt, c.dx, c.dy, &tr)

			if cam.Yaw != 12 || cam.Pitch != -7 {
				t.Fatalf("NaN delta changed angles to yaw %v pitch %v", cam.Yaw, cam.Pitch)
			}
			if tr.Rotation != before {
				t.Fatalf("NaN delta changed rotation")
			}
		})
	}
}

func TestLookDisabledIsNoOp(t *testing.T) {
	cam := NewFlyCamera()
	cam.Enabled = false
	tr := NewTransform(0, 0, 0)
	before := tr.Rotation

	for i := 0; i < 10; i++ {
		cam.Look(testDt, 100, 100, &tr)
	}

	if tr.Rotation != before || cam.Yaw != 0 || cam.Pitch != 0 {
		t.Fatalf("disabled camera rotated: yaw %v pitch %v", cam.Yaw, cam.Pitch)
	}
}

func TestLookZeroDeltaKeepsRotation(t *testing.T) {
	cam := NewFlyCamera()
	tr := NewTransform(0, 0, 0)
	tr.Rotation = RotationFor(25, 10)
	before := tr.Rotation

	cam.Look(testDt, 0, 0, &tr)

	if tr.Rotation != before {
		t.Fatalf("zero delta rewrote the rotation")
	}
}

func TestLookDerivesInitialAngles(t *testing.T) {
	cam := NewFlyCamera()
	tr := NewTransform(0, 0, 0)
	tr.Rotation = RotationFor(30, -10)

	cam.Look(testDt, 0, 0, &tr)

	if !close32(cam.Yaw, 30, 1e-2) || !close32(cam.Pitch, -10, 1e-2) {
		t.Fatalf("derived yaw %v pitch %v, want 30 / -10", cam.Yaw, cam.Pitch)
	}
	if cam.DeriveAngles {
		t.Fatalf("DeriveAngles still set after first update")
	}
}

func close32(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
