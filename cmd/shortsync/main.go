package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shortsync/shortsync/config"
	"github.com/shortsync/shortsync/internal/app"
	"github.com/shortsync/shortsync/pkg/logger"
)

func main() {
	ctx := context.Background()

	// Dev convenience, prod supplies real env vars
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}

	zl := logger.NewZerologLogger(ctx, "main", cfg.Logger.Level, cfg.Logger.Pretty, os.Stdout)

	a, err := app.NewApp(ctx, cfg, zl)
	if err != nil {
		zl.Fatal(ctx, err).Msg("Error initing app")
	}

	go func() {
		zl.Info(ctx).Msg("Starting app...")
		err := a.Run(ctx)
		if err != nil {
			zl.Fatal(ctx, err).Msg("Error running app")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zl.Info(ctx).Msgf("OS signal received: %s", sig)

	time.AfterFunc(cfg.App.ShutdownTimeout, func() {
		zl.Fatal(ctx, nil).Msg("App force-stopped (shutdown timeout)")
	})

	zl.Info(ctx).Msg("Stopping app...")
	err = a.Stop(ctx)
	if err != nil {
		zl.Fatal(ctx, err).Msg("Error stopping app")
	}

	zl.Info(ctx).Msg("App stopped")
}
