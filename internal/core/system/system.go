package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput   Phase = iota // 0: swap + dispatch lifecycle events
	PhaseScript               // 1: run Lua on_update hooks
	PhaseUpdate               // 2: animate components
	PhaseRender               // 3: build + submit the draw list
	PhaseCleanup              // 4: despawn queued entities
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseScript:
		return "script"
	case PhaseUpdate:
		return "update"
	case PhaseRender:
		return "render"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every frame system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
