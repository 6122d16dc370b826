package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/scene/internal/core/ecs"
	"github.com/l1jgo/scene/internal/core/event"
	coresys "github.com/l1jgo/scene/internal/core/system"
)

// CleanupSystem flushes the deferred despawn queue at frame end and, when
// verify is set, runs a full consistency scan of the store.
// Phase 4 (Cleanup).
type CleanupSystem struct {
	store  *ecs.Store
	bus    *event.Bus
	verify bool
	log    *zap.Logger

	violations int
}

func NewCleanupSystem(store *ecs.Store, bus *event.Bus, verify bool, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{store: store, bus: bus, verify: verify, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

// Violations counts frames that failed the consistency scan.
func (s *CleanupSystem) Violations() int { return s.violations }

func (s *CleanupSystem) Update(_ time.Duration) {
	if s.store.PendingDespawns() > 0 {
		s.flush()
	}
	if !s.verify {
		return
	}
	if err := s.store.Verify(); err != nil {
		s.violations++
		s.log.Error("store consistency check failed", zap.Error(err))
	}
}

func (s *CleanupSystem) flush() {
	despawned, errs := s.store.FlushDespawnQueue()
	for _, err := range errs {
		s.log.Debug("deferred despawn skipped", zap.Error(err))
	}
	if s.bus == nil {
		return
	}
	for _, e := range despawned {
		event.Emit(s.bus, event.EntityDespawned{Entity: e, Deferred: true})
	}
}
