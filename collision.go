package oven

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownCollider is returned when a collider id is not registered.
var ErrUnknownCollider = errors.New("oven: unknown collider")

const defaultParallelThreshold = 256

// contactPair identifies an unordered pair of colliders across frames.
type contactPair struct {
	a, b string
}

func makeContactPair(a, b *Collider) contactPair {
	if a.ID > b.ID {
		a, b = b, a
	}
	return contactPair{a.ID, b.ID}
}

// snapshot is a collider resolved to world space for one frame.
type snapshot struct {
	c      *Collider
	shape  Shape
	mode   CollisionMode
	bounds AABB
}

// pairResult is the outcome of one narrow-phase test.
type pairResult struct {
	normal Vec2
	hit    bool
}

// CollisionManager detects contacts between registered colliders once per
// frame and aggregates them per entity.
type CollisionManager struct {
	// Enabled turns detection on or off. A disabled manager reports nothing.
	Enabled bool
	// Debug logs per-update statistics at debug level.
	Debug bool

	// ParallelThreshold is the collider count above which pair tests run
	// concurrently. Zero or negative disables parallel testing.
	ParallelThreshold int
	// Workers bounds the concurrent pair-test goroutines. Zero means
	// GOMAXPROCS.
	Workers int

	// OnContactBegin and OnContactEnd fire when a pair of colliders starts or
	// stops touching. They run on the goroutine calling Update.
	OnContactBegin func(a, b *Collider)
	OnContactEnd   func(a, b *Collider)

	table       EntityTable
	colliders   []*Collider
	worldBounds AABB
	hasBounds   bool

	last   []Collision
	active map[contactPair][2]*Collider
	stats  CollisionStats
}

// NewCollisionManager returns an enabled manager resolving owners through
// table. table may be nil when no collider has an owner.
func NewCollisionManager(table EntityTable) *CollisionManager {
	return &CollisionManager{
		Enabled:           true,
		ParallelThreshold: defaultParallelThreshold,
		table:             table,
		active:            make(map[contactPair][2]*Collider),
	}
}

// SetWorldBounds makes every enabled collider that leaves b report a contact
// with no other collider.
func (m *CollisionManager) SetWorldBounds(b AABB) {
	m.worldBounds = b
	m.hasBounds = true
}

// ClearWorldBounds removes the world bounds.
func (m *CollisionManager) ClearWorldBounds() {
	m.hasBounds = false
}

// WorldBounds returns the world bounds and whether they are set.
func (m *CollisionManager) WorldBounds() (AABB, bool) {
	return m.worldBounds, m.hasBounds
}

// Add registers a collider.
func (m *CollisionManager) Add(c *Collider) {
	m.colliders = append(m.colliders, c)
}

// Remove unregisters the collider with the given id.
func (m *CollisionManager) Remove(id string) error {
	for i, c := range m.colliders {
		if c.ID == id {
			copy(m.colliders[i:], m.colliders[i+1:])
			m.colliders[len(m.colliders)-1] = nil
			m.colliders = m.colliders[:len(m.colliders)-1]
			return nil
		}
	}
	return fmt.Errorf("remove collider %q: %w", id, ErrUnknownCollider)
}

// RemoveOwned unregisters every collider owned by entity and returns how
// many were removed.
func (m *CollisionManager) RemoveOwned(entity EntityID) int {
	kept := m.colliders[:0]
	removed := 0
	for _, c := range m.colliders {
		if c.Owner == entity {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(m.colliders); i++ {
		m.colliders[i] = nil
	}
	m.colliders = kept
	return removed
}

// Clear unregisters every collider and forgets the last results.
func (m *CollisionManager) Clear() {
	m.colliders = nil
	m.last = nil
	clear(m.active)
}

// Colliders returns the registered colliders. The slice must not be
// modified.
func (m *CollisionManager) Colliders() []*Collider {
	return m.colliders
}

// Stats returns statistics for the last Update.
func (m *CollisionManager) Stats() CollisionStats {
	return m.stats
}

// Update detects all contacts for this frame, replacing the previous
// results. Each unordered pair is tested once and yields one Collision per
// enabled side, with opposite normals. Pairs where neither side is enabled
// are skipped, as are disabled colliders and colliders of the same entity.
//
// Pair tests may run concurrently; the results are always aggregated in
// registration order. If ctx is canceled the frame is dropped: LastCollisions
// is empty and the contact set is left as it was.
func (m *CollisionManager) Update(ctx context.Context) error {
	start := time.Now()
	m.last = m.last[:0]
	if !m.Enabled {
		m.stats = CollisionStats{}
		m.endContacts(nil)
		return nil
	}

	if m.Debug {
		debugCheckColliderCount(len(m.colliders))
	}
	snaps := make([]snapshot, 0, len(m.colliders))
	for _, c := range m.colliders {
		shape, mode, box := c.resolveBounds(m.table)
		if mode == CollisionDisabled {
			continue
		}
		snaps = append(snaps, snapshot{c: c, shape: shape, mode: mode, bounds: box})
	}

	if m.hasBounds {
		bounds := m.worldBounds
		bounds.FlippedNormals = false
		for _, s := range snaps {
			if s.mode != CollisionEnabled {
				continue
			}
			if !bounds.ContainsBox(s.bounds) {
				m.last = append(m.last, Collision{
					A:       s.c,
					EntityA: s.c.Owner,
					Normal:  bounds.ClosestSideNormal(s.bounds.Center()),
				})
			}
		}
	}

	pairs := candidatePairs(snaps)
	results := make([]pairResult, len(pairs))
	parallel := m.ParallelThreshold > 0 && len(snaps) > m.ParallelThreshold
	var err error
	if parallel {
		err = m.testParallel(ctx, snaps, pairs, results)
	} else {
		err = testSerial(ctx, snaps, pairs, results)
	}
	if err != nil {
		m.last = m.last[:0]
		m.stats = CollisionStats{}
		return fmt.Errorf("collision update: %w", err)
	}

	current := make(map[contactPair][2]*Collider)
	for i, p := range pairs {
		r := results[i]
		if !r.hit {
			continue
		}
		a, b := snaps[p[0]], snaps[p[1]]
		if a.mode == CollisionEnabled {
			m.last = append(m.last, Collision{A: a.c, B: b.c, EntityA: a.c.Owner, EntityB: b.c.Owner, Normal: r.normal})
		}
		if b.mode == CollisionEnabled {
			m.last = append(m.last, Collision{A: b.c, B: a.c, EntityA: b.c.Owner, EntityB: a.c.Owner, Normal: r.normal.Neg()})
		}
		key := makeContactPair(a.c, b.c)
		current[key] = [2]*Collider{a.c, b.c}
		if _, ok := m.active[key]; !ok && m.OnContactBegin != nil {
			m.OnContactBegin(a.c, b.c)
		}
	}
	m.endContacts(current)

	m.stats = CollisionStats{
		Colliders: len(snaps),
		PairTests: len(pairs),
		Contacts:  len(m.last),
		Parallel:  parallel,
		Duration:  time.Since(start),
	}
	m.debugLog()
	return nil
}

// endContacts fires OnContactEnd for active pairs missing from current and
// makes current the active set.
func (m *CollisionManager) endContacts(current map[contactPair][2]*Collider) {
	for key, pair := range m.active {
		if _, ok := current[key]; ok {
			continue
		}
		if m.OnContactEnd != nil {
			m.OnContactEnd(pair[0], pair[1])
		}
	}
	if current == nil {
		current = make(map[contactPair][2]*Collider)
	}
	m.active = current
}

// candidatePairs lists index pairs i < j where at least one side is enabled.
// Colliders sharing an owner never test each other.
func candidatePairs(snaps []snapshot) [][2]int {
	var pairs [][2]int
	for i := range snaps {
		a := snaps[i]
		for j := i + 1; j < len(snaps); j++ {
			b := snaps[j]
			if a.mode == CollisionReceiveOnly && b.mode == CollisionReceiveOnly {
				continue
			}
			if a.c.Owner.Valid() && a.c.Owner == b.c.Owner {
				continue
			}
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

func testSerial(ctx context.Context, snaps []snapshot, pairs [][2]int, results []pairResult) error {
	for i, p := range pairs {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		n, ok := Collide(snaps[p[0]].shape, snaps[p[1]].shape)
		results[i] = pairResult{normal: n, hit: ok}
	}
	return nil
}

// testParallel splits the pair list into chunks tested concurrently. Each
// goroutine writes only its own slots of results.
func (m *CollisionManager) testParallel(ctx context.Context, snaps []snapshot, pairs [][2]int, results []pairResult) error {
	workers := m.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(pairs) + workers - 1) / workers
	if chunk == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(pairs); lo += chunk {
		hi := min(lo+chunk, len(pairs))
		g.Go(func() error {
			return testSerial(gctx, snaps, pairs[lo:hi], results[lo:hi])
		})
	}
	return g.Wait()
}

// LastCollisions returns every contact found by the last Update. The slice
// is reused by the next Update.
func (m *CollisionManager) LastCollisions() []Collision {
	return m.last
}

// CollisionsFor returns the contacts reported for entity's colliders.
func (m *CollisionManager) CollisionsFor(entity EntityID) []Collision {
	var out []Collision
	for _, c := range m.last {
		if c.EntityA == entity {
			out = append(out, c)
		}
	}
	return out
}

// TotalCollisionNormal sums the normals of every contact reported for
// entity and normalizes the result. It is zero when there are no contacts
// or they cancel out.
func (m *CollisionManager) TotalCollisionNormal(entity EntityID) Vec2 {
	var sum Vec2
	for _, c := range m.last {
		if c.EntityA == entity {
			sum = sum.Add(c.Normal)
		}
	}
	return sum.Normalized()
}

// Dispatch delivers the last results to the entities involved: each entity
// receives one HandleCollision call per other entity it touched, in the
// order contacts were found. Contacts for colliders without a resolvable
// owner are skipped.
func (m *CollisionManager) Dispatch() {
	if m.table == nil || len(m.last) == 0 {
		return
	}
	type key struct{ a, b EntityID }
	var order []key
	groups := make(map[key][]Collision)
	for _, c := range m.last {
		k := key{c.EntityA, c.EntityB}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}
	for _, k := range order {
		body, ok := m.table.Body(k.a)
		if !ok {
			continue
		}
		body.HandleCollision(k.b, groups[k])
	}
	Logger().Debug("collisions dispatched",
		zap.Int("contacts", len(m.last)),
		zap.Int("groups", len(order)))
}

// SlideAlong removes the part of v that moves into a surface with contact
// normal n, leaving motion along the surface.
func SlideAlong(v, n Vec2) Vec2 {
	n = n.Normalized()
	if d := v.Dot(n); d > 0 {
		return v.Sub(n.Scale(d))
	}
	return v
}
