// cmd/pricing-server/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"itinerary-pricing/internal/cache"
	"itinerary-pricing/internal/common/config"
	"itinerary-pricing/internal/common/database"
	"itinerary-pricing/internal/common/logger"
	"itinerary-pricing/internal/common/observability"
	"itinerary-pricing/internal/pricing"
	"itinerary-pricing/internal/search"
	"itinerary-pricing/internal/server"
	"itinerary-pricing/internal/vehicles"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting pricing server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("cacheBackend", cfg.Cache.Backend))

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Vehicle multiplier store (optional postgres) ---
	var vehicleDB *sql.DB
	if cfg.Database.Postgres.Host != "" {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Warn("postgres unavailable, vehicle multipliers run on defaults", zap.Error(err))
		} else {
			defer pg.Close()
			vehicleDB = pg.DB
			zapLog.Info("PostgreSQL connected successfully")
		}
	}

	// --- Lookup cache backend ---
	store, err := openCacheStore(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("cache store init failed", zap.Error(err))
	}
	defer store.Close()

	// --- Search client and pricing engine ---
	searchClient := search.NewClient(&search.Config{
		BaseURL: cfg.Search.BaseURL,
		APIKey:  cfg.Search.APIKey,
		Timeout: time.Duration(cfg.Search.Timeout) * time.Millisecond,
		TTL:     cfg.Cache.TTL(),
	}, store, log)

	if cfg.Search.APIKey == "" {
		zapLog.Warn("no search API key configured, live lookups will fall back to prior estimates")
	}

	engine := pricing.NewEngine(&pricing.Config{
		BaseTransportCost: cfg.Pricing.BaseTransportCost,
		GuideDailyCost:    cfg.Pricing.GuideDailyCost,
		MaxHotelOptions:   cfg.Pricing.MaxHotelOptions,
		Currency:          cfg.Pricing.Currency,
	}, searchClient, vehicles.NewStore(vehicleDB, log), log)

	srv := server.New(engine, obs, log, cfg.App.Name, cfg.App.Version)

	// --- Metrics and pprof on the side listener ---
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.Handle("/debug/pprof/", http.DefaultServeMux)

		addr := fmt.Sprintf(":%d", cfg.Server.MetricsPort)
		zapLog.Info("metrics listener started", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			zapLog.Error("metrics listener failed", zap.Error(err))
		}
	}()

	go func() {
		zapLog.Info("HTTP listener started", zap.Int("port", cfg.Server.Port))
		if err := srv.Listen(cfg.Server.Port); err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Wait for shutdown signal ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	if err := srv.Shutdown(); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}

// openCacheStore builds the configured cache backend.
func openCacheStore(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case "file":
		return cache.NewFileStore(cfg.Cache.FilePath), nil

	case "memory":
		return cache.NewMemoryStore(), nil

	case "bolt":
		return cache.NewBoltStore(cfg.Cache.FilePath)

	case "redis":
		var rdb *database.RedisClient
		err := retryWithBackoff(func() error {
			var err error
			rdb, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rdb.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			return nil, err
		}
		zapLog.Info("Redis connected successfully")
		return cache.NewRedisStore(rdb.Client), nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
