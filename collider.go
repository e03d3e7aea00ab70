package oven

import "github.com/google/uuid"

// CollisionMode controls how a collider takes part in collision detection.
type CollisionMode uint8

const (
	CollisionDisabled    CollisionMode = iota // ignored entirely
	CollisionReceiveOnly                      // only ever the "other" side of a contact
	CollisionEnabled                          // detects and reports contacts
)

// String returns the mode's name.
func (m CollisionMode) String() string {
	switch m {
	case CollisionDisabled:
		return "disabled"
	case CollisionReceiveOnly:
		return "receive-only"
	case CollisionEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// EntityID is a handle into an EntityTable: a slot index plus the slot's
// generation. The zero value refers to no entity.
type EntityID struct {
	Index      uint32
	Generation uint32
}

// NoEntity is the zero EntityID.
var NoEntity = EntityID{}

// Valid reports whether id can refer to an entity at all.
func (id EntityID) Valid() bool { return id.Generation != 0 }

// Body is the view of an entity that collision detection needs.
type Body interface {
	// CollisionPosition is the entity's position in the collision plane.
	CollisionPosition() Vec2
	// CollisionMode is the entity's current collision mode.
	CollisionMode() CollisionMode
	// AABB is the entity's bounding box in the collision plane. It is
	// tested against the world bounds; an empty box defers to the
	// collider's own bounds.
	AABB() AABB
	// HandleCollision receives the contacts between this entity and other
	// for the current frame. other is NoEntity for world bounds.
	HandleCollision(other EntityID, collisions []Collision)
}

// EntityTable resolves entity handles. Colliders only look entities up
// through it and never keep them alive.
type EntityTable interface {
	Body(id EntityID) (Body, bool)
}

// Collider attaches a shape to an entity. Shape is expressed relative to the
// entity's collision position plus Offset.
//
// Colliders are added to and removed from a CollisionManager by whoever
// owns the entity; a collider never registers itself.
type Collider struct {
	ID     string
	Owner  EntityID
	Offset Vec2
	Shape  Shape

	// Mode applies when the collider has no owner, or its owner can no
	// longer be resolved. Otherwise the owner's mode wins.
	Mode CollisionMode
}

// NewBoxCollider returns a collider for a box of the given size centered on
// the owner's position.
func NewBoxCollider(owner EntityID, size Vec2, offset Vec2) *Collider {
	return newCollider(owner, offset, BoxShape(AABBAtOrigin(size).Centered()))
}

// NewBoxColliderFromAABB returns a collider covering b exactly when its owner
// sits at the origin.
func NewBoxColliderFromAABB(owner EntityID, b AABB) *Collider {
	c := newCollider(owner, b.Center(), BoxShape(b.Centered()))
	c.Shape.Box.FlippedNormals = b.FlippedNormals
	return c
}

// NewCircleCollider returns a collider for a circle centered on the owner's
// position.
func NewCircleCollider(owner EntityID, radius float64, offset Vec2) *Collider {
	return newCollider(owner, offset, CircleShape(Vec2Zero, radius))
}

// NewLineCollider returns a collider for the segment p1-p2. The segment is
// stored relative to its midpoint, which becomes part of the offset.
func NewLineCollider(owner EntityID, p1, p2 Vec2, offset Vec2) *Collider {
	mid := p1.Add(p2).Scale(0.5)
	return newCollider(owner, offset.Add(mid), LineShape(p1.Sub(mid), p2.Sub(mid)))
}

func newCollider(owner EntityID, offset Vec2, s Shape) *Collider {
	return &Collider{
		ID:     uuid.NewString(),
		Owner:  owner,
		Offset: offset,
		Shape:  s,
		Mode:   CollisionEnabled,
	}
}

// resolve returns the collider's world-space shape and effective mode.
func (c *Collider) resolve(table EntityTable) (Shape, CollisionMode) {
	s, mode, _ := c.resolveBounds(table)
	return s, mode
}

// resolveBounds is resolve plus the box checked against the world bounds:
// the owner's AABB when it has area, otherwise the shape's bounds.
func (c *Collider) resolveBounds(table EntityTable) (Shape, CollisionMode, AABB) {
	origin := c.Offset
	mode := c.Mode
	var box AABB
	if c.Owner.Valid() && table != nil {
		if body, ok := table.Body(c.Owner); ok {
			origin = origin.Add(body.CollisionPosition())
			mode = body.CollisionMode()
			box = body.AABB()
		}
	}
	s := c.Shape.Translated(origin)
	if box.IsEmpty() {
		box = s.Bounds()
	}
	return s, mode, box
}

// WorldShape returns the collider's shape in world space.
func (c *Collider) WorldShape(table EntityTable) Shape {
	s, _ := c.resolve(table)
	return s
}

// Collision is one contact reported for collider A. B is nil when A touched
// the world bounds.
//
// Normal is a unit vector pointing from A toward what it touched, so two
// circles with B to the right of A give (1, 0). It is not the direction A
// should move: that is PushDirection, the negated normal. Reflect velocity
// off Normal as is; do not negate it first.
type Collision struct {
	A, B    *Collider
	EntityA EntityID
	EntityB EntityID
	Normal  Vec2
}

// PushDirection returns the direction A should be displaced to resolve the
// contact.
func (c Collision) PushDirection() Vec2 { return c.Normal.Neg() }

// WithWorld reports whether the contact is against the world bounds.
func (c Collision) WithWorld() bool { return c.B == nil }
