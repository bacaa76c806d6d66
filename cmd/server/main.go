package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/database/migration"
	"talent-match/internal/database/seeder"
	"talent-match/internal/pkg/logger"
	"talent-match/migrations"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	bootstrap, container, cleanup, err := app.Bootstrap(cfg, zl)
	if err != nil {
		zl.Fatal("failed to bootstrap app", zap.Error(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			zl.Warn("cleanup error", zap.Error(err))
		}
	}()

	migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	applied, err := migration.Runner{Files: migrations.Source(cfg.Database.MigrationsDir), Logger: zl}.Run(migrateCtx, container.DB.SQLDB())
	cancel()
	if err != nil {
		zl.Fatal("migrations failed", zap.Error(err))
	}
	zl.Info("migrations up to date", zap.Int("applied", applied))

	if cfg.Seed.RunOnStart {
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := seeder.Runner{Seeders: seeder.Defaults(cfg.Seed), Logger: zl}.Run(seedCtx, container.DB)
		cancel()
		if err != nil {
			zl.Fatal("seeding failed", zap.Error(err))
		}
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		zl.Fatal("invalid HTTP port", zap.Error(err))
	}

	go container.Hub.Run()

	errCh := make(chan error, 2)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()
	if bootstrap.Ops != nil {
		go func() {
			zl.Info("ops listener started", zap.String("addr", bootstrap.Ops.Addr))
			if err := bootstrap.Ops.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zl.Error("server error", zap.Error(err))
		}
	case sig := <-sigCh:
		zl.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if bootstrap.Ops != nil {
		if err := bootstrap.Ops.Shutdown(ctx); err != nil {
			zl.Warn("ops shutdown error", zap.Error(err))
		}
	}
	if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
		zl.Warn("shutdown error", zap.Error(err))
	}
}
