package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/arco/demo/internal/api"
	"github.com/arco/demo/internal/cache"
	"github.com/arco/demo/internal/config"
	"github.com/arco/demo/internal/db"
	"github.com/arco/demo/internal/logging"
	"github.com/arco/demo/internal/metrics"
	"github.com/arco/demo/internal/ratelimiter"
	"github.com/arco/demo/internal/repository"
	"github.com/arco/demo/internal/service"
	"github.com/arco/demo/internal/version"
)

func serve(cfg *config.Config) error {
	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	logger.Info("starting",
		zap.String("app", cfg.AppName),
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
	)

	// ---- metrics ----
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// ---- optional users API ----
	ctx := context.Background()
	var users *service.UserService
	if cfg.UsersEnabled() {
		startCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		pools, err := db.ConnectPools(startCtx, cfg)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pools.Close()

		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")

		var userCache cache.UserCache = cache.Nop{}
		if cfg.CacheEnabled() {
			rdb, err := cache.Connect(startCtx, cfg)
			if err != nil {
				return fmt.Errorf("connect redis: %w", err)
			}
			defer rdb.Close()
			userCache = cache.NewRedisCache(rdb, cfg.UserCacheTTL)
			logger.Info("user cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.UserCacheTTL))
		}

		repo := repository.NewPgUserRepository(pools.Reader, pools.Writer)
		users = service.NewUserService(repo, userCache, logger, m.CacheHook())
	} else {
		logger.Info("DATABASE_URL not set: users API disabled")
	}

	// ---- HTTP server ----
	router := api.NewRouter(api.Deps{
		AppName:            cfg.AppName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Users:              users,
		Limiter:            ratelimiter.New(cfg.RateLimit),
		Metrics:            m,
		Gatherer:           reg,
		Logger:             logger,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}
	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
	return nil
}
