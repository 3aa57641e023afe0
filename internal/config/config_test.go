package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, DriverSQLite, c.StoreDriver)
	assert.Equal(t, "127.0.0.1:6379", c.RedisAddr)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 3*time.Second, c.StoreTimeout)
	assert.False(t, c.HashPasswords)
}

func TestLoadConfig_DefaultsWithoutArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"meetin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	path := writeTempJSON(t, "", "", map[string]any{
		"store_driver":  "redis",
		"log_level":     "debug",
		"store_timeout": "10s",
	})
	os.Args = []string{"meetin", "-c", path, "-s", "memory"}

	cfg := LoadConfig()

	assert.Equal(t, DriverMemory, cfg.StoreDriver, "flag wins over JSON")
	assert.Equal(t, "debug", cfg.LogLevel, "JSON wins over default")
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.Equal(t, "data", cfg.DataDir, "default kept")
}
