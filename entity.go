package oven

// Plane selects which two world axes an entity's colliders live in.
type Plane uint8

const (
	PlaneXY Plane = iota // X and Y; 2D games
	PlaneXZ              // X and Z; the ground plane of a 3D world
)

// project maps a world point into the plane.
func (p Plane) project(v Vec3) Vec2 {
	if p == PlaneXZ {
		return v.XZ()
	}
	return v.XY()
}

// lift maps a plane vector back to world space, keeping base's off-plane
// component.
func (p Plane) lift(v Vec2, base Vec3) Vec3 {
	if p == PlaneXZ {
		return Vec3{v.X, base.Y, v.Y}
	}
	return Vec3{v.X, v.Y, base.Z}
}

// Entity is an object in a World: a pose, a velocity and any number of
// colliders. All fields are owned by the World's update goroutine.
type Entity struct {
	// Identity
	ID   EntityID
	Name string

	// Pose
	Position Vec3
	Rotation Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    Vec3
	Velocity Vec3

	// Collision
	Mode      CollisionMode
	Plane     Plane
	Colliders []*Collider
	// Size, when non-zero, is the bounding box reported by AABB. Otherwise
	// the colliders' bounds are used.
	Size Vec2

	Visible bool

	// OnUpdate runs once per frame after collisions are dispatched.
	OnUpdate func(e *Entity, dt float64)
	// OnCollision receives this frame's contacts against one other entity,
	// or against the world bounds when other is NoEntity.
	OnCollision func(e *Entity, other EntityID, collisions []Collision)

	UserData any
}

// NewEntity returns a visible entity with unit scale and collisions
// enabled.
func NewEntity(name string) *Entity {
	return &Entity{
		Name:    name,
		Scale:   Vec3One,
		Mode:    CollisionEnabled,
		Visible: true,
	}
}

// CollisionPosition returns the position projected into the entity's plane.
func (e *Entity) CollisionPosition() Vec2 { return e.Plane.project(e.Position) }

// CollisionMode returns the entity's collision mode.
func (e *Entity) CollisionMode() CollisionMode { return e.Mode }

// HandleCollision forwards contacts to OnCollision.
func (e *Entity) HandleCollision(other EntityID, collisions []Collision) {
	if e.OnCollision != nil {
		e.OnCollision(e, other, collisions)
	}
}

// ModelMatrix returns translate * rotate * scale for the current pose.
func (e *Entity) ModelMatrix() Mat4 {
	return ModelFromTransformations(e.Position, e.Rotation, e.Scale).Matrix()
}

// AABB returns the entity's bounding box in its plane.
func (e *Entity) AABB() AABB {
	pos := e.CollisionPosition()
	if !e.Size.IsZero() {
		return AABBAtOrigin(e.Size).MoveTo(pos, true)
	}
	if len(e.Colliders) == 0 {
		return AABB{TL: pos}
	}
	box := e.Colliders[0].Shape.Translated(pos.Add(e.Colliders[0].Offset)).Bounds()
	for _, c := range e.Colliders[1:] {
		box = box.Union(c.Shape.Translated(pos.Add(c.Offset)).Bounds())
	}
	return box
}

// PlaneVelocity returns the velocity projected into the entity's plane.
func (e *Entity) PlaneVelocity() Vec2 { return e.Plane.project(e.Velocity) }

// SetPlaneVelocity replaces the in-plane part of the velocity.
func (e *Entity) SetPlaneVelocity(v Vec2) { e.Velocity = e.Plane.lift(v, e.Velocity) }

// Translate moves the entity by a plane offset.
func (e *Entity) Translate(offset Vec2) {
	e.Position = e.Plane.lift(e.CollisionPosition().Add(offset), e.Position)
}

// Bounce reflects the in-plane velocity off a surface with contact normal
// n, but only when moving into it.
func (e *Entity) Bounce(n Vec2) {
	v := e.PlaneVelocity()
	if n.IsZero() || v.Dot(n) <= 0 {
		return
	}
	e.SetPlaneVelocity(v.Reflected(n))
}

// Slide removes the in-plane velocity component that moves into a surface
// with contact normal n.
func (e *Entity) Slide(n Vec2) {
	e.SetPlaneVelocity(SlideAlong(e.PlaneVelocity(), n))
}
