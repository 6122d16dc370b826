package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/l1jgo/scene/internal/config"
	"github.com/l1jgo/scene/internal/core/ecs"
	"github.com/l1jgo/scene/internal/core/event"
	coresys "github.com/l1jgo/scene/internal/core/system"
	"github.com/l1jgo/scene/internal/material"
	"github.com/l1jgo/scene/internal/render"
	"github.com/l1jgo/scene/internal/scene"
	"github.com/l1jgo/scene/internal/scripting"
	"github.com/l1jgo/scene/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

var numbers = message.NewPrinter(language.English)

func printBanner(scenePath string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              scenerun  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mscene:\033[0m %s\n\n", scenePath)
}

func printSection(title string) {
	lineLen := max(46-len(title)-1, 3)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := numbers.Sprintf("%d", count)
	dotsLen := max(42-len(label)-len(numStr), 3)
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main loop ─────────────────────────────────────────────────────

func run() error {
	dump := flag.Bool("dump", false, "print the store contents after the last frame")
	frames := flag.Int("frames", -1, "frames to run (overrides config; 0 = until interrupted)")
	flag.Parse()

	// 1. Load config
	cfgPath := "config/scene.toml"
	if p := os.Getenv("SCENE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *frames >= 0 {
		cfg.Render.Frames = *frames
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Scene.Path)

	// 3. Build the scene
	printSection("scene")
	sceneFile, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	store := ecs.NewStore()
	materials := material.NewManager()
	report, err := sceneFile.Populate(store, materials)
	if err != nil {
		return fmt.Errorf("populate scene: %w", err)
	}
	printStat("materials", report.Materials)
	printStat("entities", report.Entities)
	printStat("meshes", report.Meshes)
	if err := store.Verify(); err != nil {
		return fmt.Errorf("scene store inconsistent: %w", err)
	}
	printOK("store consistent")
	fmt.Println()

	cam := sceneFile.NewCamera()
	if cfg.Render.FovDegrees > 0 {
		cam.FovY = mgl32.DegToRad(cfg.Render.FovDegrees)
	}
	cam.Near, cam.Far = cfg.Render.Near, cfg.Render.Far

	// 4. Scripts
	printSection("scripts")
	bus := event.NewBus()
	event.Subscribe(bus, func(ev event.EntitySpawned) {
		log.Debug("entity spawned", zap.Uint64("entity", uint64(ev.Entity)))
	})
	event.Subscribe(bus, func(ev event.EntityDespawned) {
		log.Debug("entity despawned", zap.Uint64("entity", uint64(ev.Entity)), zap.Bool("deferred", ev.Deferred))
	})

	luaEngine, err := scripting.NewEngine(cfg.Scripting.Dir, store, bus, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	if luaEngine.HasUpdate() {
		printOK("on_update hook loaded")
	} else {
		printOK("no on_update hook")
	}
	fmt.Println()

	// 5. Systems
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	renderer := render.NewRenderer(render.NewLogBackend(log), cam, materials, cfg.Render.Width, cfg.Render.Height)
	scriptSys := system.NewScriptSystem(luaEngine, log)
	renderSys := system.NewRenderSystem(ctx, store, renderer, log)
	cleanupSys := system.NewCleanupSystem(store, bus, cfg.Scene.Verify, log)

	runner := coresys.NewRunner()
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(scriptSys)
	runner.Register(system.NewSpinSystem(store))
	runner.Register(renderSys)
	runner.Register(cleanupSys)

	// 6. Frame loop
	printSection("running")
	printReady(fmt.Sprintf("frame interval %s", cfg.Render.FrameRate))
	if cfg.Render.Frames > 0 {
		printReady(numbers.Sprintf("%d frames", cfg.Render.Frames))
	}
	fmt.Println()

	ticker := time.NewTicker(cfg.Render.FrameRate)
	defer ticker.Stop()

	start := time.Now()
	last := start
	count := 0
loop:
	for cfg.Render.Frames == 0 || count < cfg.Render.Frames {
		select {
		case <-ctx.Done():
			log.Info("interrupted")
			break loop
		case now := <-ticker.C:
			runner.Tick(now.Sub(last))
			last = now
			count++
		}
	}

	// 7. Summary
	elapsed := time.Since(start)
	st := store.Stats()
	log.Info("stopped",
		zap.Int("frames", count),
		zap.Duration("elapsed", elapsed),
		zap.Int("entities", st.Entities),
		zap.Int("script_errors", scriptSys.Errors()),
		zap.Int("verify_failures", cleanupSys.Violations()),
	)

	printSection("summary")
	printStat("frames", count)
	printStat("entities", st.Entities)
	for _, c := range st.Columns {
		printStat(c.Type, c.Rows)
	}
	if f := renderSys.LastFrame(); f != nil {
		printStat("draws (last frame)", len(f.Draws))
		printStat("triangles (last frame)", f.Triangles())
	}
	fmt.Println()

	if *dump {
		fmt.Print(store.String())
	}
	if cleanupSys.Violations() > 0 {
		return fmt.Errorf("store failed %d consistency checks", cleanupSys.Violations())
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
