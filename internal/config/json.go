package config

import (
	"encoding/json"
	"os"

	"github.com/meetin/meetin/internal/flagx"
	"github.com/meetin/meetin/internal/timex"
)

// JsonConfig is the on-disk shape; pointer fields distinguish "absent" from
// zero values so a partial file only overrides what it names.
type JsonConfig struct {
	DataDir       *string         `json:"data_dir"`
	StoreDriver   *string         `json:"store_driver"`
	RedisAddr     *string         `json:"redis_addr"`
	LogLevel      *string         `json:"log_level"`
	StoreTimeout  *timex.Duration `json:"store_timeout"`
	HashPasswords *bool           `json:"hash_passwords"`
}

// parseJson overlays cfg with the JSON file named by -c / -config. Without
// the flag it does nothing. Read and decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.StoreDriver != nil {
		cfg.StoreDriver = *jc.StoreDriver
	}
	if jc.RedisAddr != nil {
		cfg.RedisAddr = *jc.RedisAddr
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.StoreTimeout != nil {
		cfg.StoreTimeout = jc.StoreTimeout.Duration
	}
	if jc.HashPasswords != nil {
		cfg.HashPasswords = *jc.HashPasswords
	}
}
