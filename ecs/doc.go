// Package ecs backs oven's collision system with a Donburi world.
//
// [Table] implements [oven.EntityTable]: each spawned body is a Donburi
// entity carrying a [BodyData] component, and contacts dispatched by a
// [oven.CollisionManager] are published as [CollisionEvent] values.
// Subscribe to [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	table := ecs.NewTable(world)
//	mgr := oven.NewCollisionManager(table)
//	id, _ := table.Spawn(oven.Vec2{X: 10}, oven.CollisionEnabled)
//	mgr.Add(oven.NewCircleCollider(id, 1, oven.Vec2Zero))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
