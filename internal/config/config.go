package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Scene     SceneConfig     `toml:"scene"`
	Scripting ScriptingConfig `toml:"scripting"`
	Render    RenderConfig    `toml:"render"`
	Logging   LoggingConfig   `toml:"logging"`
}

type SceneConfig struct {
	Path   string `toml:"path"`
	Verify bool   `toml:"verify"` // run a full consistency scan every frame
}

type ScriptingConfig struct {
	Dir string `toml:"dir"`
}

type RenderConfig struct {
	Width      int           `toml:"width"`
	Height     int           `toml:"height"`
	FovDegrees float32       `toml:"fov_degrees"` // overrides the scene file when > 0
	Near       float32       `toml:"near"`
	Far        float32       `toml:"far"`
	FrameRate  time.Duration `toml:"frame_rate"` // interval between frames
	Frames     int           `toml:"frames"`     // 0 = run until interrupted
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("render: width and height must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	case c.Render.Near <= 0 || c.Render.Far <= c.Render.Near:
		return fmt.Errorf("render: need 0 < near < far, got near=%v far=%v", c.Render.Near, c.Render.Far)
	case c.Render.FrameRate <= 0:
		return fmt.Errorf("render: frame_rate must be positive, got %s", c.Render.FrameRate)
	case c.Render.Frames < 0:
		return fmt.Errorf("render: frames must not be negative, got %d", c.Render.Frames)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Scene: SceneConfig{
			Path: "data/yaml/demo_scene.yaml",
		},
		Scripting: ScriptingConfig{
			Dir: "scripts",
		},
		Render: RenderConfig{
			Width:     1280,
			Height:    720,
			Near:      0.1,
			Far:       100,
			FrameRate: 16 * time.Millisecond,
			Frames:    0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
