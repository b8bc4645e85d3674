package flycam

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/mcpar-land/flycam/input"
)

// LookSystem drains the mouse queue once per tick and applies the look step
// to every (FlyCamera, Transform) entity. It must run before MovementSystem
// so movement directions are computed from the fresh orientation.
type LookSystem struct {
	filter *ecs.Filter2[FlyCamera, Transform]
}

func (s *LookSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter2[FlyCamera, Transform](w)
	s.filter.Register()
}

func (s *LookSystem) Update(w *ecs.World) {
	state := ecs.GetResource[input.State](w)
	queue := ecs.GetResource[input.MouseQueue](w)
	dx, dy := queue.Drain()

	query := s.filter.Query()
	for query.Next() {
		cam, tr := query.Get()
		cam.Look(state.Delta, dx, dy, tr)
	}
}

func (s *LookSystem) Finalize(w *ecs.World) {}

// MovementSystem applies the 3D movement step to every (FlyCamera,
// Transform) entity using the current keyboard snapshot.
type MovementSystem struct {
	filter *ecs.Filter2[FlyCamera, Transform]
}

func (s *MovementSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter2[FlyCamera, Transform](w)
	s.filter.Register()
}

func (s *MovementSystem) Update(w *ecs.World) {
	state := ecs.GetResource[input.State](w)

	query := s.filter.Query()
	for query.Next() {
		cam, tr := query.Get()
		cam.Move(state.Delta, state, tr)
	}
}

func (s *MovementSystem) Finalize(w *ecs.World) {}

// Movement2DSystem applies the 2D movement step to every (FlyCamera2D,
// Transform) entity using the current keyboard snapshot.
type Movement2DSystem struct {
	filter *ecs.Filter2[FlyCamera2D, Transform]
}

func (s *Movement2DSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter2[FlyCamera2D, Transform](w)
	s.filter.Register()
}

func (s *Movement2DSystem) Update(w *ecs.World) {
	state := ecs.GetResource[input.State](w)

	query := s.filter.Query()
	for query.Next() {
		cam, tr := query.Get()
		cam.Move(state.Delta, state, tr)
	}
}

func (s *Movement2DSystem) Finalize(w *ecs.World) {}
