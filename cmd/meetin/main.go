package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/meetin/meetin/internal/buildinfo"
	"github.com/meetin/meetin/internal/cli"
	"github.com/meetin/meetin/internal/config"
	"github.com/meetin/meetin/internal/logging"
	"github.com/meetin/meetin/internal/storage"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	logger, err := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "error opening store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn(ctx, "error closing store", "error", err)
		}
	}()

	app := cli.NewApp(cfg, store, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

}
