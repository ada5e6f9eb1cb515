package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mindease/backend/internal/config"
	"mindease/backend/internal/db"
	"mindease/backend/internal/logging"
	"mindease/backend/internal/retention"
	"mindease/backend/internal/server"
	"mindease/backend/internal/store"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger setup failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("api exited", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	logs, closeLogs, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLogs()

	app, err := server.New(cfg, logs, server.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	httpServer := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	pruner := retention.NewService(logs, time.Duration(cfg.LogRetentionDays)*24*time.Hour, cfg.RetentionSchedule, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := pruner.Start(gctx); err != nil {
			return fmt.Errorf("start retention: %w", err)
		}
		<-gctx.Done()
		pruner.Stop()
		return nil
	})
	g.Go(func() error {
		logger.Info("mindease api listening", zap.String("addr", "http://localhost:"+cfg.AppPort), zap.String("env", cfg.AppEnv))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed", zap.Error(err))
		}
		return nil
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (store.Store, func(), error) {
	if !cfg.UsesDatabase() {
		logger.Info("DATABASE_URL not set; keeping logs in memory", zap.Int("limit", cfg.LogBufferLimit))
		return store.NewMemoryStore(cfg.LogBufferLimit), func() {}, nil
	}

	openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	pool, err := db.Open(openCtx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if cfg.AutoMigrate {
		if err := store.EnsureSchema(openCtx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	if err := store.ValidateRuntimeSchema(openCtx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("database schema mismatch: %w", err)
	}
	return store.NewPostgresStore(pool), pool.Close, nil
}
