package flycam

import (
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"

	"github.com/mcpar-land/flycam/input"
)

// Plugin wires the camera resources and systems into an ark-tools app.
type Plugin struct {
	// CaptureOnly makes the input collector ignore mouse motion while the
	// cursor is not captured.
	CaptureOnly bool
}

// Install registers the input resources, the input collector, and the look
// and movement systems. Registration order is the update order: input is
// collected first, then look runs before movement so the movement direction
// is derived from the orientation produced this tick, not the last one.
func (p Plugin) Install(a *app.App) {
	ecs.AddResource(&a.World, &input.State{})
	ecs.AddResource(&a.World, &input.MouseQueue{})

	a.AddSystem(&input.Collector{CaptureOnly: p.CaptureOnly})
	a.AddSystem(&LookSystem{})
	a.AddSystem(&MovementSystem{})
	a.AddSystem(&Movement2DSystem{})
}
