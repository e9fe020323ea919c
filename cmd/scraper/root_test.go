package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_PrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dump_dir: /srv/dumps\nsettle_delay: 8s\n"), 0644))
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:secret")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--config", path})

	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "dump_dir: /srv/dumps")
	assert.Contains(t, text, "settle_delay: 8s")
	assert.Contains(t, text, "telegram_token:")
	assert.Contains(t, text, "***")
	assert.NotContains(t, text, "secret")
}

func TestConfigCmd_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wait_strategy: sleep\n"), 0644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "--config", path})

	assert.Error(t, cmd.Execute())
}
