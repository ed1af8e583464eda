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

	"go.uber.org/zap"

	"alimony-calculator/config"
	httpLayer "alimony-calculator/http"
	"alimony-calculator/logger"
	"alimony-calculator/repository"
	"alimony-calculator/service"
)

const memoryCacheEntries = 10_000

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	history := repository.NewCalculationRepositoryMemory(cfg.History.Capacity)
	cache, closeCache := newCache(cfg.Redis, log)
	defer closeCache()

	alimonyService := service.NewAlimonyService(history, cache, log)
	alimonyHandler := httpLayer.NewAlimonyHandler(alimonyService, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      httpLayer.NewRouter(alimonyHandler, rateLimiter, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("alimony calculator listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("server failed", zap.Error(err))
		return
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("error during server shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// newCache returns the redis cache when it is enabled and reachable, and the
// in-memory cache otherwise.
func newCache(cfg config.RedisConfig, log *zap.Logger) (repository.CacheRepository, func()) {
	noop := func() {}
	if !cfg.Enabled {
		return repository.NewMemoryCache(memoryCacheEntries), noop
	}

	redisCache := repository.NewRedisCache(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn("redis unavailable, using in-memory cache",
			zap.String("address", cfg.Address),
			zap.Error(err),
		)
		redisCache.Close()
		return repository.NewMemoryCache(memoryCacheEntries), noop
	}

	log.Info("using redis result cache", zap.String("address", cfg.Address))
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Warn("failed to close redis client", zap.Error(err))
		}
	}
}
