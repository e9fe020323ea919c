package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Source)
	assert.Equal(t, "https://www.sofascore.com/football", cfg.BaseURL)
	assert.Equal(t, "./dumps", cfg.DumpDir)
	assert.Equal(t, 5*time.Second, cfg.SettleDelay)
	assert.Equal(t, 30*time.Second, cfg.DeliveryTimeout)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.True(t, cfg.Headless)
	assert.Equal(t, time.Local, cfg.Location)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := writeYAML(t, `
dump_dir: /var/lib/sofascore
wait_strategy: fixed
settle_delay: 7s
concurrency: 2
timezone: Europe/Rome
headless: false
`)
	t.Setenv("SOFASCORE_DUMP_DIR", "/tmp/dumps")
	t.Setenv("SOFASCORE_CONCURRENCY", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "/tmp/dumps", cfg.DumpDir)
	assert.Equal(t, "fixed", cfg.WaitStrategy)
	assert.Equal(t, 7*time.Second, cfg.SettleDelay)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.False(t, cfg.Headless)
	assert.Equal(t, "Europe/Rome", cfg.Location.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "unknown wait strategy", yaml: "wait_strategy: networkidle\n"},
		{name: "unknown render mode", yaml: "render_mode: pdf\n"},
		{name: "concurrency too high", yaml: "concurrency: 16\n"},
		{name: "bad timezone", yaml: "timezone: Mars/Olympus\n"},
		{name: "malformed yaml", yaml: "dump_dir: [\n"},
		{name: "bad duration env", env: map[string]string{"SOFASCORE_DAY_TIMEOUT": "soon"}},
		{name: "bad bool env", env: map[string]string{"SOFASCORE_HEADLESS": "maybe"}},
		{name: "token without chat id", env: map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeYAML(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_TelegramFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")

	cfg, err := Load(writeYAML(t, ""))
	require.NoError(t, err)
	assert.Equal(t, int64(-100200300), cfg.TelegramChatID)
	assert.True(t, cfg.TelegramEnabled())
}
