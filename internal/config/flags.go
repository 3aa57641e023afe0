package config

import (
	"flag"
	"os"
	"time"

	"github.com/meetin/meetin/internal/flagx"
)

var (
	knownFlags = []string{"-d", "-s", "-r", "-l", "-t"}
	boolFlags  = []string{"-hash"}
)

// parseFlags populates Config fields from command-line flags. Only the flags
// in knownFlags and boolFlags are considered (see flagx.FilterArgs). Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags, boolFlags...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "store driver (sqlite, memory, redis)")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	storeTimeout := fs.Int("t", int(cfg.StoreTimeout.Seconds()), "store timeout (in seconds)")
	fs.BoolVar(&cfg.HashPasswords, "hash", cfg.HashPasswords, "hash stored passwords")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.StoreTimeout = time.Duration(*storeTimeout) * time.Second
}
