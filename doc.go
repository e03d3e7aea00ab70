// Package oven is a small real-time geometry core for [Ebitengine] games:
// 2D/3D vector algebra, model/view/projection matrices, cameras with
// first-person, free-look and rail controllers, and a collision system over
// boxes, circles and line segments.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	world, _ := oven.NewWorld(oven.DefaultConfig())
//	ball := oven.NewEntity("ball")
//	ball.Colliders = append(ball.Colliders, oven.NewCircleCollider(oven.NoEntity, 1, oven.Vec2Zero))
//	world.Spawn(ball)
//	oven.Run(world, oven.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [World.Update] and [World.Draw] directly.
//
// # Vectors and matrices
//
// [Vec2] and [Vec3] are immutable values; every operation returns a new
// vector. Normalizing the zero vector yields the zero vector.
//
// [Mat4] is row-major. [ModelMatrix] accumulates translation, rotation and
// scale by right-multiplication and keeps a push/pop stack. [ViewMatrix]
// stores the eye and an orthonormal (u, v, n) basis where n points backward.
// [ProjectionMatrix] is built by [Perspective] or [Orthographic]. Use
// [Mat4.Mgl] to hand matrices to code built on go-gl/mathgl.
//
// # Collision
//
// A [Collider] wraps one [Shape] and refers to its owner through an
// [EntityID] handle resolved by an [EntityTable]; it never owns the entity.
// [CollisionManager.Update] tests every unordered pair once and records one
// [Collision] per enabled side, with Normal pointing from A toward what it
// touched. [CollisionManager.TotalCollisionNormal] folds an entity's
// contacts into one direction.
//
// Narrow-phase tests are dispatched through a table indexed by both shape
// kinds, so every pair has a rule.
//
// # Cameras
//
// [Camera] pairs a view and a projection and can glide its eye with
// tweens (via [gween]). [FPSCamera] yaws about the world Y axis and pitches
// about its own right axis so roll never accumulates. [FreeLookCamera]
// flies freely and [RailCamera] follows a [BezierPath].
//
// # Logging and configuration
//
// The package logs through [zap]; [Logger] is a no-op until [SetLogger] is
// called. [LoadConfig] reads YAML.
//
// # ECS
//
// The ecs subpackage backs [EntityTable] with a [Donburi] world and
// publishes dispatched contacts as events.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [zap]: https://github.com/uber-go/zap
// [Donburi]: https://github.com/yohamta/donburi
package oven
