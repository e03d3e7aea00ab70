package oven

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrUnknownEntity is returned for handles that do not refer to a live
// entity.
var ErrUnknownEntity = errors.New("oven: unknown entity")

// FrameMatrices are the three transforms handed to a Renderer for one
// drawable, all row-major.
type FrameMatrices struct {
	Model      Mat4
	View       Mat4
	Projection Mat4
}

// MVP returns Projection * View * Model.
func (m FrameMatrices) MVP() Mat4 {
	return m.Projection.Mul(m.View).Mul(m.Model)
}

// Renderer receives every visible entity once per Draw.
type Renderer interface {
	DrawEntity(e *Entity, m FrameMatrices)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(e *Entity, m FrameMatrices)

// DrawEntity calls f.
func (f RendererFunc) DrawEntity(e *Entity, m FrameMatrices) { f(e, m) }

// entitySlot is one arena cell. gen is bumped every time the cell is freed
// so stale handles stop resolving.
type entitySlot struct {
	e   *Entity
	gen uint32
}

// World owns the entities, the collision manager and the camera controller,
// and steps them in a fixed order each frame.
type World struct {
	Collisions *CollisionManager
	Controller Controller
	Renderer   Renderer

	// Debug enables collision statistics and stale-handle warnings.
	Debug bool

	slots []entitySlot
	free  []uint32
	live  int

	frame uint64
	time  float64
}

// NewWorld builds a world from cfg. The controller is an FPSCamera, or a
// RailCamera when cfg has a rail.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	w := &World{Debug: cfg.Debug}
	w.Collisions = NewCollisionManager(w)
	w.Collisions.Debug = cfg.Debug
	w.Collisions.ParallelThreshold = cfg.Collision.ParallelThreshold
	w.Collisions.Workers = cfg.Collision.Workers
	if b := cfg.Collision.WorldBounds; b != nil {
		w.Collisions.SetWorldBounds(*b)
	}

	if cfg.Rail != nil {
		rail, err := cfg.NewRailController()
		if err != nil {
			return nil, fmt.Errorf("new world: %w", err)
		}
		w.Controller = rail
	} else {
		w.Controller = cfg.NewFPSController()
	}
	return w, nil
}

// Camera returns the controller's camera, or nil without a controller.
func (w *World) Camera() *Camera {
	if w.Controller == nil {
		return nil
	}
	return w.Controller.Camera()
}

// Spawn adds e to the world, registers its colliders and returns its
// handle. Freed slots are reused with a new generation.
func (w *World) Spawn(e *Entity) EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, entitySlot{})
	}
	s := &w.slots[idx]
	if s.gen == 0 {
		s.gen = 1
	}
	s.e = e
	e.ID = EntityID{Index: idx, Generation: s.gen}
	w.live++

	for _, c := range e.Colliders {
		c.Owner = e.ID
		w.Collisions.Add(c)
	}
	return e.ID
}

// Despawn removes the entity and unregisters its colliders.
func (w *World) Despawn(id EntityID) error {
	e, ok := w.Entity(id)
	if !ok {
		if w.Debug {
			debugCheckStale(id, "despawn")
		}
		return fmt.Errorf("despawn %d/%d: %w", id.Index, id.Generation, ErrUnknownEntity)
	}
	w.Collisions.RemoveOwned(id)
	s := &w.slots[id.Index]
	s.e = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	w.free = append(w.free, id.Index)
	w.live--
	e.ID = NoEntity
	return nil
}

// AddCollider attaches c to a live entity and registers it.
func (w *World) AddCollider(id EntityID, c *Collider) error {
	e, ok := w.Entity(id)
	if !ok {
		return fmt.Errorf("add collider to %d/%d: %w", id.Index, id.Generation, ErrUnknownEntity)
	}
	c.Owner = id
	e.Colliders = append(e.Colliders, c)
	w.Collisions.Add(c)
	return nil
}

// Entity resolves a handle.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	if !id.Valid() || int(id.Index) >= len(w.slots) {
		return nil, false
	}
	s := w.slots[id.Index]
	if s.gen != id.Generation || s.e == nil {
		return nil, false
	}
	return s.e, true
}

// Body implements EntityTable.
func (w *World) Body(id EntityID) (Body, bool) {
	e, ok := w.Entity(id)
	if !ok {
		return nil, false
	}
	return e, true
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.live }

// Each calls fn for every live entity in slot order until fn returns
// false. Entities spawned during the walk are not visited.
func (w *World) Each(fn func(e *Entity) bool) {
	n := len(w.slots)
	for i := 0; i < n; i++ {
		if e := w.slots[i].e; e != nil {
			if !fn(e) {
				return
			}
		}
	}
}

// Frame returns the number of completed updates.
func (w *World) Frame() uint64 { return w.frame }

// Time returns the simulated time in seconds.
func (w *World) Time() float64 { return w.time }

// Update steps the world by dt seconds: collisions are detected and
// dispatched, then every entity integrates its velocity and runs OnUpdate,
// then the controller moves the camera.
func (w *World) Update(ctx context.Context, dt float64, in FrameInput) error {
	if err := w.Collisions.Update(ctx); err != nil {
		return fmt.Errorf("world update: %w", err)
	}
	w.Collisions.Dispatch()

	w.Each(func(e *Entity) bool {
		if !e.Velocity.IsZero() {
			e.Position = e.Position.Add(e.Velocity.Scale(dt))
		}
		if e.OnUpdate != nil {
			e.OnUpdate(e, dt)
		}
		return true
	})

	if w.Controller != nil {
		w.Controller.Update(dt, in)
	}
	w.frame++
	w.time += dt
	if w.Debug && w.frame%600 == 0 {
		Logger().Debug("world",
			zap.Uint64("frame", w.frame),
			zap.Int("entities", w.live),
			zap.Int("colliders", len(w.Collisions.Colliders())))
	}
	return nil
}

// Draw hands every visible entity's matrices to the Renderer.
func (w *World) Draw() {
	cam := w.Camera()
	if w.Renderer == nil || cam == nil {
		return
	}
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	w.Each(func(e *Entity) bool {
		if e.Visible {
			w.Renderer.DrawEntity(e, FrameMatrices{Model: e.ModelMatrix(), View: view, Projection: proj})
		}
		return true
	})
}
