package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/l1jgo/scene/internal/core/ecs"
	"github.com/l1jgo/scene/internal/core/event"
)

// Engine wraps a single gopher-lua VM bound to one scene store.
// Single-goroutine access only (frame loop).
type Engine struct {
	vm    *lua.LState
	store *ecs.Store
	bus   *event.Bus
	log   *zap.Logger
}

// NewEngine creates a Lua VM, installs the scene API and loads every .lua
// file in scriptsDir in name order. A missing directory is not an error.
// bus may be nil.
func NewEngine(scriptsDir string, store *ecs.Store, bus *event.Bus, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, store: store, bus: bus, log: log}
	e.registerSceneAPI()

	if scriptsDir != "" {
		if err := e.loadDir(scriptsDir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString runs a chunk of Lua in the engine's VM.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// HasUpdate reports whether a global on_update function is defined.
func (e *Engine) HasUpdate() bool {
	return e.vm.GetGlobal("on_update").Type() == lua.LTFunction
}

// Update calls on_update(dt_seconds) if the scripts define it.
func (e *Engine) Update(dt time.Duration) error {
	fn := e.vm.GetGlobal("on_update")
	if fn.Type() != lua.LTFunction {
		return nil
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(dt.Seconds())); err != nil {
		return fmt.Errorf("on_update: %w", err)
	}
	return nil
}

// Global reads a Lua global as a number, for tests and diagnostics.
func (e *Engine) Global(name string) (float64, bool) {
	n, ok := e.vm.GetGlobal(name).(lua.LNumber)
	return float64(n), ok
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
