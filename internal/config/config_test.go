package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[scene]
path = "scenes/a.yaml"
verify = true

[render]
frame_rate = "33ms"
frames = 120
`))
	require.NoError(t, err)

	assert.Equal(t, "scenes/a.yaml", cfg.Scene.Path)
	assert.True(t, cfg.Scene.Verify)
	assert.Equal(t, 33*time.Millisecond, cfg.Render.FrameRate)
	assert.Equal(t, 120, cfg.Render.Frames)
	assert.Equal(t, 1280, cfg.Render.Width, "unset keys keep defaults")
	assert.Equal(t, "scripts", cfg.Scripting.Dir)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"zero width", "[render]\nwidth = 0"},
		{"far before near", "[render]\nnear = 5.0\nfar = 1.0"},
		{"negative frames", "[render]\nframes = -1"},
		{"bad duration", "[render]\nframe_rate = \"soon\""},
		{"not toml", "[render"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does/not/exist.toml")
	assert.Error(t, err)
}
