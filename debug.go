package oven

import (
	"time"

	"go.uber.org/zap"
)

// CollisionStats holds per-update collision metrics.
// Only logged when CollisionManager.Debug is true.
type CollisionStats struct {
	Colliders int
	PairTests int
	Contacts  int
	Parallel  bool
	Duration  time.Duration
}

// debugLog writes the last update's stats at debug level.
func (m *CollisionManager) debugLog() {
	if !m.Debug {
		return
	}
	s := m.stats
	Logger().Debug("collision update",
		zap.Int("colliders", s.Colliders),
		zap.Int("pair_tests", s.PairTests),
		zap.Int("contacts", s.Contacts),
		zap.Bool("parallel", s.Parallel),
		zap.Duration("duration", s.Duration))
}

// debugMaxColliders is the collider count above which a debug manager warns
// that the all-pairs test is getting expensive.
const debugMaxColliders = 2000

func debugCheckColliderCount(n int) {
	if n > debugMaxColliders {
		Logger().Warn("collider count exceeds threshold",
			zap.Int("colliders", n),
			zap.Int("threshold", debugMaxColliders))
	}
}

// debugCheckStale warns when an entity handle no longer resolves. Only called
// in debug mode.
func debugCheckStale(id EntityID, op string) {
	Logger().Warn("stale entity handle",
		zap.String("op", op),
		zap.Uint32("index", id.Index),
		zap.Uint32("generation", id.Generation))
}
