package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "Floating Island", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
	assert.Equal(t, 100.0, cfg.Input.ScrollScale)
	assert.False(t, cfg.Debug.Footprints)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"logFormat": "json",
		"window": { "width": 800, "title": "test" },
		"audio": { "enabled": false },
		"input": { "scrollScale": 40 },
		"debug": { "footprints": true }
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "test", cfg.Window.Title)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 40.0, cfg.Input.ScrollScale)
	assert.True(t, cfg.Debug.Footprints)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{"logLevel": `)
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"zero width", `{"window": {"width": 0}}`, "window size"},
		{"negative height", `{"window": {"height": -5}}`, "window size"},
		{"loud", `{"audio": {"volume": 1.5}}`, "audio volume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("ISLAND_WINDOW_WIDTH", "1024")
	t.Setenv("ISLAND_LOGLEVEL", "warn")

	cfg, err := Load(writeConfig(t, `{"window": {"width": 640}}`))
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestBindFlags(t *testing.T) {
	t.Cleanup(viper.Reset)

	fs := pflag.NewFlagSet("island", pflag.ContinueOnError)
	require.NoError(t, BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"--log-level", "trace", "--debug-footprints", "--config", "/tmp/x"}))

	cfg, err := Load(writeConfig(t, `{"logLevel": "error"}`))
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.Debug.Footprints)
	assert.Equal(t, "/tmp/x", Dir())
}

func TestBindFlags_UnsetFlagsKeepFileValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	fs := pflag.NewFlagSet("island", pflag.ContinueOnError)
	require.NoError(t, BindFlags(fs))
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(writeConfig(t, `{"logLevel": "error"}`))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, ".", Dir())
}
