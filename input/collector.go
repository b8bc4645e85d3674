package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mlange-42/ark/ecs"
)

// maxTickDelta guards against a huge elapsed time after a window stall or
// suspend blowing up the integration step.
const maxTickDelta = 0.25

// Collector snapshots ebiten's keyboard and cursor into the State and
// MouseQueue resources once per tick. It must be registered before any
// system that reads them.
type Collector struct {
	// CaptureOnly suppresses mouse deltas while the cursor is not captured,
	// so a freed cursor can cross the window without turning the camera.
	CaptureOnly bool

	state *State
	queue *MouseQueue

	last    time.Time
	cursorX int
	cursorY int
	started bool
}

func (c *Collector) Initialize(w *ecs.World) {
	c.state = ecs.GetResource[State](w)
	c.queue = ecs.GetResource[MouseQueue](w)
}

func (c *Collector) Update(w *ecs.World) {
	now := time.Now()
	if c.started {
		c.state.Delta = now.Sub(c.last).Seconds()
		if c.state.Delta > maxTickDelta {
			c.state.Delta = maxTickDelta
		}
	}
	c.last = now

	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		c.state.SetPressed(k, ebiten.IsKeyPressed(k))
	}

	// Ebiten has no raw motion events, so the delta is the cursor's travel
	// since the last tick. The first tick only seeds the reference position.
	x, y := ebiten.CursorPosition()
	captured := !c.CaptureOnly || ebiten.CursorMode() == ebiten.CursorModeCaptured
	if c.started && captured && (x != c.cursorX || y != c.cursorY) {
		c.queue.Push(MouseMotion{
			DX: float32(x - c.cursorX),
			DY: float32(y - c.cursorY),
		})
	}
	c.cursorX, c.cursorY = x, y
	c.started = true
}

func (c *Collector) Finalize(w *ecs.World) {}
