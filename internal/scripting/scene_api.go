package scripting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/l1jgo/scene/internal/component"
	"github.com/l1jgo/scene/internal/core/ecs"
	"github.com/l1jgo/scene/internal/core/event"
)

// registerSceneAPI installs the global `scene` table. Entity handles cross
// into Lua as numbers. Unknown handles raise Lua errors, which scripts can
// catch with pcall.
func (e *Engine) registerSceneAPI() {
	tbl := e.vm.NewTable()
	e.vm.SetFuncs(tbl, map[string]lua.LGFunction{
		"spawn":    e.luaSpawn,
		"despawn":  e.luaDespawn,
		"mark":     e.luaMark,
		"exists":   e.luaExists,
		"count":    e.luaCount,
		"entities": e.luaEntities,
		"add_name": e.luaAddName,
		"add_spin": e.luaAddSpin,
		"pop":      e.luaPop,
		"dump":     e.luaDump,
		"log":      e.luaLog,
	})
	e.vm.SetGlobal("scene", tbl)
}

func checkEntity(L *lua.LState, n int) ecs.Entity {
	v := float64(L.CheckNumber(n))
	if v < 0 {
		L.ArgError(n, "entity handle must be non-negative")
	}
	if v != math.Trunc(v) || v >= 1<<64 {
		L.ArgError(n, "entity handle must be an integer")
	}
	return ecs.Entity(v)
}

func (e *Engine) luaSpawn(L *lua.LState) int {
	ent := e.store.Spawn()
	if e.bus != nil {
		event.Emit(e.bus, event.EntitySpawned{Entity: ent})
	}
	L.Push(lua.LNumber(ent))
	return 1
}

func (e *Engine) luaDespawn(L *lua.LState) int {
	ent := checkEntity(L, 1)
	if err := e.store.Despawn(ent); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	if e.bus != nil {
		event.Emit(e.bus, event.EntityDespawned{Entity: ent})
	}
	return 0
}

func (e *Engine) luaMark(L *lua.LState) int {
	e.store.MarkForDespawn(checkEntity(L, 1))
	return 0
}

func (e *Engine) luaExists(L *lua.LState) int {
	L.Push(lua.LBool(e.store.Contains(checkEntity(L, 1))))
	return 1
}

func (e *Engine) luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.store.EntityCount()))
	return 1
}

func (e *Engine) luaEntities(L *lua.LState) int {
	t := L.NewTable()
	for _, ent := range e.store.Entities() {
		t.Append(lua.LNumber(ent))
	}
	L.Push(t)
	return 1
}

func (e *Engine) luaAddName(L *lua.LState) int {
	ent := checkEntity(L, 1)
	name := L.CheckString(2)
	if err := ecs.AddComponent(e.store, ent, component.Name(name)); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// scene.add_spin(e, ax, ay, az, speed)
func (e *Engine) luaAddSpin(L *lua.LState) int {
	ent := checkEntity(L, 1)
	spin := component.Spin{
		Axis: mgl32.Vec3{
			float32(L.CheckNumber(2)),
			float32(L.CheckNumber(3)),
			float32(L.CheckNumber(4)),
		},
		Speed: float32(L.CheckNumber(5)),
	}
	if err := ecs.AddComponent(e.store, ent, spin); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// scene.pop(e) removes e's newest component and returns its type name, or
// nil when e has none.
func (e *Engine) luaPop(L *lua.LState) int {
	key, ok, err := e.store.PopComponent(checkEntity(L, 1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(key.Name()))
	return 1
}

func (e *Engine) luaDump(L *lua.LState) int {
	L.Push(lua.LString(e.store.String()))
	return 1
}

func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info("lua", zap.String("msg", L.CheckString(1)))
	return 0
}
