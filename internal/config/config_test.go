package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ws://localhost:8080/ws", cfg.Server.URL)
	assert.Equal(t, 5, cfg.Server.ReconnectAttempts)
	assert.Equal(t, time.Second, cfg.Server.ReconnectDelay)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  url: ws://game.example.com/ws
  reconnect_attempts: 2
  reconnect_delay: 500ms
player:
  name: Alice
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ws://game.example.com/ws", cfg.Server.URL)
	assert.Equal(t, 2, cfg.Server.ReconnectAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Server.ReconnectDelay)
	assert.Equal(t, "Alice", cfg.Player.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout, "unset keys keep their defaults")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8080/ws", cfg.Server.URL)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DEAL_SERVER_URL", "ws://override:9000/ws")
	t.Setenv("DEAL_PLAYER_NAME", "Bob")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ws://override:9000/ws", cfg.Server.URL)
	assert.Equal(t, "Bob", cfg.Player.Name)
}

func TestValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  url: \"\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.url")

	require.NoError(t, os.WriteFile(path, []byte("server:\n  reconnect_delay: -1s\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reconnect_delay")
}
