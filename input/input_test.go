package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestStatePressed(t *testing.T) {
	var s State

	s.SetPressed(ebiten.KeyW, true)
	s.SetPressed(ebiten.KeySpace, true)

	if !s.Pressed(ebiten.KeyW) || !s.Pressed(ebiten.KeySpace) {
		t.Fatalf("set keys not reported as pressed")
	}
	if s.Pressed(ebiten.KeyA) {
		t.Fatalf("unset key reported as pressed")
	}

	s.SetPressed(ebiten.KeyW, false)
	if s.Pressed(ebiten.KeyW) {
		t.Fatalf("released key still reported as pressed")
	}

	s.Reset()
	if s.Pressed(ebiten.KeySpace) {
		t.Fatalf("Reset did not release keys")
	}
}

func TestStateOutOfRangeKeys(t *testing.T) {
	var s State

	// Must not panic and must read as released.
	s.SetPressed(-1, true)
	s.SetPressed(ebiten.KeyMax+1, true)

	if s.Pressed(-1) || s.Pressed(ebiten.KeyMax+1) {
		t.Fatalf("out of range key reported as pressed")
	}
}

func TestMouseQueueDrainSumsAndEmpties(t *testing.T) {
	cases := []struct {
		name           string
		motions        []MouseMotion
		wantDX, wantDY float32
	}{
		{"empty", nil, 0, 0},
		{"single", []MouseMotion{{DX: 3, DY: -2}}, 3, -2},
		{"summed", []MouseMotion{{DX: 1, DY: 1}, {DX: -4, DY: 2}, {DX: 0.5, DY: 0}}, -2.5, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var q MouseQueue
			for _, m := range c.motions {
				q.Push(m)
			}
			if q.Len() != len(c.motions) {
				t.Fatalf("Len = %d, want %d", q.Len(), len(c.motions))
			}

			dx, dy := q.Drain()
			if dx != c.wantDX || dy != c.wantDY {
				t.Fatalf("Drain = (%v, %v), want (%v, %v)", dx, dy, c.wantDX, c.wantDY)
			}
			if q.Len() != 0 {
				t.Fatalf("queue not empty after drain")
			}

			dx, dy = q.Drain()
			if dx != 0 || dy != 0 {
				t.Fatalf("second drain returned (%v, %v)", dx, dy)
			}
		})
	}
}
