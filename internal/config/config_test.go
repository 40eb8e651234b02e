package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestExpandEnvWithDefaults(t *testing.T) {
	t.Setenv("NOTES_TEST_SET", "from-env")

	assert.Equal(t, "from-env", expandEnvWithDefaults("${NOTES_TEST_SET:-fallback}"))
	assert.Equal(t, "fallback", expandEnvWithDefaults("${NOTES_TEST_UNSET:-fallback}"))
	assert.Equal(t, "", expandEnvWithDefaults("${NOTES_TEST_UNSET}"))
	assert.Equal(t, "plain", expandEnvWithDefaults("plain"))
	assert.Equal(t, "a-from-env-b", expandEnvWithDefaults("a-${NOTES_TEST_SET}-b"))
}

func TestInitConfig_ExpandsAndTypesValues(t *testing.T) {
	t.Setenv("NOTES_TEST_PORT", "9090")
	path := writeConfig(t, `
logger:
  level: debug
server:
  port_grpc: ${NOTES_TEST_PORT:-50051}
  use_reflection: ${NOTES_TEST_REFLECTION:-true}
storage:
  driver: sqlite
  dsn: ${NOTES_TEST_DSN:-notes.db}
app:
  default_timezone: Europe/Berlin
`)

	cfg, err := InitConfig[Config](path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 9090, cfg.Server.PortGRPC)
	assert.True(t, cfg.Server.UseReflection)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "notes.db", cfg.Storage.DSN)
	assert.Equal(t, "Europe/Berlin", cfg.App.DefaultTimezone)
}

func TestInitConfig_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: warn\n")

	cfg, err := InitConfig[Config](path)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Logger.Format)
	assert.Equal(t, 50051, cfg.Server.PortGRPC)
	assert.Equal(t, 8080, cfg.Server.PortHTTP)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 24, cfg.Auth.SessionTTLHours)
	require.NotNil(t, cfg.Gateway)
	require.NotNil(t, cfg.App)
}

func TestInitConfig_MissingFile(t *testing.T) {
	_, err := InitConfig[Config](filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: info\n")

	levels := make(chan string, 16)
	err := Watch[Config](path, func(cfg *Config) {
		levels <- cfg.Logger.Level
	}, func(err error) {
		t.Logf("reload error: %v", err)
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("logger:\n  level: debug\n"), 0o600))

	// Запись может прийти несколькими событиями, ждем итоговое значение
	deadline := time.After(5 * time.Second)
	for {
		select {
		case level := <-levels:
			if level == "debug" {
				return
			}
		case <-deadline:
			t.Fatal("config change was not observed")
		}
	}
}
