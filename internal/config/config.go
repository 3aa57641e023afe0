package config

import "time"

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// DatabaseFile is the SQLite file name inside DataDir.
const DatabaseFile = "meetin.db"

// Config holds runtime settings for the MeetIn client.
type Config struct {
	DataDir       string
	StoreDriver   string
	RedisAddr     string
	LogLevel      string
	StoreTimeout  time.Duration
	HashPasswords bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.StoreDriver = DriverSQLite
	c.RedisAddr = "127.0.0.1:6379"
	c.LogLevel = "info"
	c.StoreTimeout = 3 * time.Second
	c.HashPasswords = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
