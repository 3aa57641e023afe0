// Package config loads runtime configuration for the MeetIn client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory holding meetin.db
//	-s string   store driver: sqlite, memory or redis
//	-r string   redis address (host:port) for the redis driver
//	-l string   log level: debug, info, warn, error
//	-t int      per-operation store timeout (seconds)
//	-hash       store an argon2id verifier instead of the plain password
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Fields left out of the file keep their current value:
//
//	{
//	  "data_dir": "data",
//	  "store_driver": "sqlite",
//	  "redis_addr": "127.0.0.1:6379",
//	  "log_level": "info",
//	  "store_timeout": "3s",
//	  "hash_passwords": false
//	}
package config
