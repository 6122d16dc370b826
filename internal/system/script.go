package system

import (
	"time"

	"go.uber.org/zap"

	coresys "github.com/l1jgo/scene/internal/core/system"
	"github.com/l1jgo/scene/internal/scripting"
)

// ScriptSystem runs the Lua on_update hook once per frame. A failing hook
// is logged and the frame continues. Phase 1 (Script).
type ScriptSystem struct {
	lua    *scripting.Engine
	log    *zap.Logger
	errors int
}

func NewScriptSystem(lua *scripting.Engine, log *zap.Logger) *ScriptSystem {
	return &ScriptSystem{lua: lua, log: log}
}

func (s *ScriptSystem) Phase() coresys.Phase { return coresys.PhaseScript }

// Errors counts frames whose script hook failed.
func (s *ScriptSystem) Errors() int { return s.errors }

func (s *ScriptSystem) Update(dt time.Duration) {
	if err := s.lua.Update(dt); err != nil {
		s.errors++
		s.log.Error("lua update failed", zap.Error(err))
	}
}
