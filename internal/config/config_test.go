package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stackfall.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Source)
	assert.Equal(t, "classic", cfg.Game.ClearMode)
	assert.Equal(t, tetris.DefaultPulseDuration, cfg.Game.PulseDuration)
	assert.Equal(t, 60, cfg.Timing.FrameRate)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[game]
seed = 1234
start_level = 3
clear_mode = "wipe"
pulse_duration = "500ms"

[audio]
enabled = false
volume = 0.25
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, uint64(1234), cfg.Game.Seed)
	assert.Equal(t, 500*time.Millisecond, cfg.Game.PulseDuration)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 44100, cfg.Audio.SampleRate, "unset keys keep defaults")

	opts := cfg.GameOptions()
	assert.Equal(t, tetris.ClearWipe, opts.ClearMode)
	assert.Equal(t, uint(3), opts.StartLevel)
	assert.Equal(t, uint64(1234), opts.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[timing]
frame_rate = 30
`)
	t.Setenv("STACKFALL_TIMING_FRAME_RATE", "120")
	t.Setenv("STACKFALL_GAME_CLEAR_MODE", "wipe")
	t.Setenv("STACKFALL_WINDOW_DEBUG_UI", "true")
	t.Setenv("STACKFALL_LOGGING_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Timing.FrameRate)
	assert.Equal(t, "wipe", cfg.Game.ClearMode)
	assert.True(t, cfg.Window.DebugUI)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadDefaultFromEnv(t *testing.T) {
	path := writeConfig(t, "[game]\nstart_level = 9\n")
	t.Setenv("STACKFALL_CONFIG", path)

	cfg, err := config.LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, uint(9), cfg.Game.StartLevel)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad toml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "[game\n"))
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("bad env", func(t *testing.T) {
		t.Setenv("STACKFALL_TIMING_FRAME_RATE", "fast")
		_, err := config.Load("")
		assert.ErrorContains(t, err, "parse environment")
	})
}

func TestValidate(t *testing.T) {
	tests := map[string]string{
		"clear mode":  "[game]\nclear_mode = \"gravity\"\n",
		"frame rate":  "[timing]\nframe_rate = 0\n",
		"cell size":   "[window]\ncell_size = -1\n",
		"volume":      "[audio]\nvolume = 1.5\n",
		"sample rate": "[audio]\nsample_rate = 0\n",
		"log format":  "[logging]\nformat = \"xml\"\n",
		"log level":   "[logging]\nlevel = \"loud\"\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
