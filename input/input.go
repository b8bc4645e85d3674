// Package input exposes the host runtime's input facts as explicit world
// resources: a per-tick keyboard snapshot with the tick's elapsed time, and a
// queue of mouse motion deltas. Collector fills both from ebiten each tick;
// tests and non-ebiten hosts can fill them by hand.
package input

import "github.com/hajimehoshi/ebiten/v2"

// State is a per-tick snapshot of the keyboard plus the tick's elapsed time.
// Register one as a world resource and update it before any camera system
// runs.
type State struct {
	// Delta is the elapsed wall-clock time of the current tick in seconds.
	Delta float64

	pressed [ebiten.KeyMax + 1]bool
}

// Pressed reports whether k was held when the snapshot was taken.
func (s *State) Pressed(k ebiten.Key) bool {
	if k < 0 || int(k) >= len(s.pressed) {
		return false
	}
	return s.pressed[k]
}

// SetPressed records the held state for k.
func (s *State) SetPressed(k ebiten.Key, held bool) {
	if k < 0 || int(k) >= len(s.pressed) {
		return
	}
	s.pressed[k] = held
}

// Reset releases every key.
func (s *State) Reset() {
	s.pressed = [ebiten.KeyMax + 1]bool{}
}
