package ecs

import (
	"fmt"

	"github.com/ovengames/oven"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BodyData is the component read by collision detection.
type BodyData struct {
	ID       oven.EntityID
	Position oven.Vec2
	Mode     oven.CollisionMode
	// Size is the entity's box, centered on Position. Zero leaves the world
	// bounds test to the colliders.
	Size     oven.Vec2
}

// BodyComponent is the Donburi component type holding BodyData.
var BodyComponent = donburi.NewComponentType[BodyData]()

// CollisionEvent carries one entity's contacts against another for a frame.
// Other is oven.NoEntity for contacts with the world bounds.
type CollisionEvent struct {
	Entity     oven.EntityID
	Other      oven.EntityID
	Collisions []oven.Collision
}

// CollisionEventType is the Donburi event type for dispatched contacts.
var CollisionEventType = events.NewEventType[CollisionEvent]()

// Table maps oven entity handles to Donburi entities.
type Table struct {
	world donburi.World
	ids   map[oven.EntityID]donburi.Entity
	next  uint32
}

// NewTable creates an EntityTable backed by a Donburi world.
func NewTable(world donburi.World) *Table {
	return &Table{world: world, ids: make(map[oven.EntityID]donburi.Entity)}
}

// World returns the backing Donburi world.
func (t *Table) World() donburi.World { return t.world }

// Spawn creates a Donburi entity with a BodyData component.
func (t *Table) Spawn(pos oven.Vec2, mode oven.CollisionMode) (oven.EntityID, donburi.Entity) {
	t.next++
	id := oven.EntityID{Index: t.next, Generation: 1}
	e := t.world.Create(BodyComponent)
	BodyComponent.SetValue(t.world.Entry(e), BodyData{ID: id, Position: pos, Mode: mode})
	t.ids[id] = e
	return id, e
}

// Despawn removes the Donburi entity behind id.
func (t *Table) Despawn(id oven.EntityID) error {
	e, ok := t.lookup(id)
	if !ok {
		return fmt.Errorf("despawn %d: %w", id.Index, oven.ErrUnknownEntity)
	}
	delete(t.ids, id)
	t.world.Remove(e)
	return nil
}

// Data returns the body component for id so systems can move it.
func (t *Table) Data(id oven.EntityID) (*BodyData, bool) {
	e, ok := t.lookup(id)
	if !ok {
		return nil, false
	}
	return BodyComponent.Get(t.world.Entry(e)), true
}

// Body implements oven.EntityTable.
func (t *Table) Body(id oven.EntityID) (oven.Body, bool) {
	data, ok := t.Data(id)
	if !ok {
		return nil, false
	}
	return &body{world: t.world, data: data}, true
}

func (t *Table) lookup(id oven.EntityID) (donburi.Entity, bool) {
	e, ok := t.ids[id]
	if !ok || !t.world.Valid(e) {
		return e, false
	}
	return e, true
}

// body adapts a BodyData component to oven.Body.
type body struct {
	world donburi.World
	data  *BodyData
}

func (b *body) CollisionPosition() oven.Vec2       { return b.data.Position }
func (b *body) CollisionMode() oven.CollisionMode { return b.data.Mode }

func (b *body) AABB() oven.AABB {
	return oven.AABBAtOrigin(b.data.Size).MoveTo(b.data.Position, true)
}

// HandleCollision queues a CollisionEvent. Events are delivered by
// CollisionEventType.ProcessEvents.
func (b *body) HandleCollision(other oven.EntityID, collisions []oven.Collision) {
	cs := make([]oven.Collision, len(collisions))
	copy(cs, collisions)
	CollisionEventType.Publish(b.world, CollisionEvent{
		Entity:     b.data.ID,
		Other:      other,
		Collisions: cs,
	})
}
