package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/scene/internal/core/ecs"
	coresys "github.com/l1jgo/scene/internal/core/system"
	"github.com/l1jgo/scene/internal/render"
)

// RenderSystem hands the store to the renderer once per frame.
// Phase 3 (Render).
type RenderSystem struct {
	ctx      context.Context
	store    *ecs.Store
	renderer *render.Renderer
	log      *zap.Logger

	last *render.Frame
}

func NewRenderSystem(ctx context.Context, store *ecs.Store, renderer *render.Renderer, log *zap.Logger) *RenderSystem {
	return &RenderSystem{ctx: ctx, store: store, renderer: renderer, log: log}
}

func (s *RenderSystem) Phase() coresys.Phase { return coresys.PhaseRender }

// LastFrame returns the most recently built frame, or nil before the first.
func (s *RenderSystem) LastFrame() *render.Frame { return s.last }

func (s *RenderSystem) Update(_ time.Duration) {
	f, err := s.renderer.Render(s.ctx, s.store)
	s.last = f
	if err != nil {
		s.log.Warn("render failed", zap.Error(err))
	}
}
