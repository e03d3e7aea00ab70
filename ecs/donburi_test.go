package ecs

import (
	"context"
	"testing"

	"github.com/ovengames/oven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestTable_ImplementsEntityTable(t *testing.T) {
	var table oven.EntityTable = NewTable(donburi.NewWorld())
	_ = table // compile-time interface check
}

func TestTable_SpawnAndLookup(t *testing.T) {
	table := NewTable(donburi.NewWorld())
	id, _ := table.Spawn(oven.Vec2{X: 3, Y: 4}, oven.CollisionReceiveOnly)
	require.True(t, id.Valid())

	b, ok := table.Body(id)
	require.True(t, ok)
	assert.Equal(t, oven.Vec2{X: 3, Y: 4}, b.CollisionPosition())
	assert.Equal(t, oven.CollisionReceiveOnly, b.CollisionMode())

	data, ok := table.Data(id)
	require.True(t, ok)
	data.Position = oven.Vec2{X: 7}
	b, _ = table.Body(id)
	assert.Equal(t, oven.Vec2{X: 7}, b.CollisionPosition())
}

func TestTable_Despawn(t *testing.T) {
	table := NewTable(donburi.NewWorld())
	id, _ := table.Spawn(oven.Vec2Zero, oven.CollisionEnabled)

	require.NoError(t, table.Despawn(id))
	_, ok := table.Body(id)
	assert.False(t, ok)
	assert.ErrorIs(t, table.Despawn(id), oven.ErrUnknownEntity)
}

func TestTable_DispatchPublishesEvents(t *testing.T) {
	world := donburi.NewWorld()
	table := NewTable(world)
	mgr := oven.NewCollisionManager(table)

	a, _ := table.Spawn(oven.Vec2{X: 0}, oven.CollisionEnabled)
	b, _ := table.Spawn(oven.Vec2{X: 8}, oven.CollisionEnabled)
	mgr.Add(oven.NewCircleCollider(a, 5, oven.Vec2Zero))
	mgr.Add(oven.NewCircleCollider(b, 4, oven.Vec2Zero))

	var received []CollisionEvent
	CollisionEventType.Subscribe(world, func(w donburi.World, e CollisionEvent) {
		received = append(received, e)
	})

	require.NoError(t, mgr.Update(context.Background()))
	mgr.Dispatch()
	events.ProcessAllEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, a, received[0].Entity)
	assert.Equal(t, b, received[0].Other)
	require.Len(t, received[0].Collisions, 1)
	assert.True(t, received[0].Collisions[0].Normal.ApproxEqual(oven.Vec2Right, 1e-9))

	assert.Equal(t, b, received[1].Entity)
	assert.True(t, received[1].Collisions[0].Normal.ApproxEqual(oven.Vec2Left, 1e-9))
}

func TestTable_DespawnedBodiesAreSkipped(t *testing.T) {
	world := donburi.NewWorld()
	table := NewTable(world)
	mgr := oven.NewCollisionManager(table)

	a, _ := table.Spawn(oven.Vec2Zero, oven.CollisionEnabled)
	b, _ := table.Spawn(oven.Vec2{X: 1}, oven.CollisionEnabled)
	ca := oven.NewCircleCollider(a, 1, oven.Vec2Zero)
	mgr.Add(ca)
	mgr.Add(oven.NewCircleCollider(b, 1, oven.Vec2Zero))
	require.NoError(t, table.Despawn(b))

	var count int
	CollisionEventType.Subscribe(world, func(w donburi.World, e CollisionEvent) {
		count++
	})

	require.NoError(t, mgr.Update(context.Background()))
	mgr.Dispatch()
	CollisionEventType.ProcessEvents(world)

	// The orphaned collider falls back to its own mode at the origin and
	// still overlaps a, but only a can receive the event.
	assert.Equal(t, 1, count)
}

func TestTable_SizeBoundsWorldTest(t *testing.T) {
	table := NewTable(donburi.NewWorld())
	mgr := oven.NewCollisionManager(table)
	mgr.SetWorldBounds(oven.AABBAtOrigin(oven.Vec2{X: 10, Y: 10}))

	id, _ := table.Spawn(oven.Vec2{X: 8, Y: 5}, oven.CollisionEnabled)
	mgr.Add(oven.NewCircleCollider(id, 1, oven.Vec2Zero))

	b, _ := table.Body(id)
	assert.True(t, b.AABB().IsEmpty())
	require.NoError(t, mgr.Update(context.Background()))
	assert.Empty(t, mgr.LastCollisions())

	data, _ := table.Data(id)
	data.Size = oven.Vec2{X: 6, Y: 2}
	b, _ = table.Body(id)
	assert.Equal(t, oven.NewAABB(oven.Vec2{X: 5, Y: 4}, oven.Vec2{X: 6, Y: 2}), b.AABB())

	require.NoError(t, mgr.Update(context.Background()))
	require.Len(t, mgr.LastCollisions(), 1)
	assert.True(t, mgr.LastCollisions()[0].WithWorld())
	assert.Equal(t, oven.Vec2Right, mgr.LastCollisions()[0].Normal)
}
