package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/renolab/quotient/internal/cache"
	"github.com/renolab/quotient/internal/config"
	dbRedis "github.com/renolab/quotient/internal/db/redis"
	"github.com/renolab/quotient/internal/domain/bundle"
	domcat "github.com/renolab/quotient/internal/domain/catalog"
	logpkg "github.com/renolab/quotient/internal/logger"
	"github.com/renolab/quotient/internal/metrics"
	catalogrepo "github.com/renolab/quotient/internal/repository/catalog"
	"github.com/renolab/quotient/internal/repository/staticcat"
	chiTransport "github.com/renolab/quotient/internal/transport/chi"
	discoveryuc "github.com/renolab/quotient/internal/usecase/discovery"
	healthuc "github.com/renolab/quotient/internal/usecase/health"
	packagesuc "github.com/renolab/quotient/internal/usecase/packages"
	"github.com/renolab/quotient/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting quotient API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	ctx := context.Background()

	// Build the catalog source chain based on driver
	baseline := staticcat.New()
	var source catalogrepo.Source
	var pinger healthuc.CatalogPinger = baseline

	switch cfg.Database.Driver {
	case "static":
		source = baseline
	case "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
			DB:       cfg.Database.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create catalog store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Catalog store not ready", zap.Error(err))
		}
		logger.Info("Connected to catalog store")

		repo := catalogrepo.New(store)
		if cfg.Catalog.SeedOnStart {
			seedBaseline(ctx, repo, logger)
		}

		source = repo
		pinger = store
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	if cfg.Catalog.FallbackToStatic && cfg.Database.Driver != "static" {
		source = catalogrepo.WithFallback(source, baseline, metrics.CatalogFallbackTotal, logger)
	}

	// Result memoization: one TTL cache per result shape, swept in the background
	ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
	sweepEvery := time.Duration(cfg.Cache.SweepIntervalSec) * time.Second

	searchMemo := cache.New[[]domcat.ScoredItem](metrics.ResultCacheTotal)
	packageMemo := cache.New[[]bundle.Package](metrics.ResultCacheTotal)

	janitorCtx, stopJanitors := context.WithCancel(ctx)
	defer stopJanitors()
	go searchMemo.Janitor(janitorCtx, sweepEvery)
	go packageMemo.Janitor(janitorCtx, sweepEvery)

	// Create use case services
	discoverySvc := discoveryuc.New(source, searchMemo, ttl)
	packagesSvc := packagesuc.New(source, packageMemo, ttl)
	healthSvc := healthuc.New(pinger)

	// Create chi server
	server := chiTransport.NewServer(discoverySvc, packagesSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// seedBaseline pushes the static baseline into an empty catalog store so a
// fresh instance serves real data immediately.
func seedBaseline(ctx context.Context, repo *catalogrepo.Repo, logger *zap.Logger) {
	empty, err := repo.Empty(ctx)
	if err != nil {
		logger.Warn("Failed to check catalog emptiness, skipping seed", zap.Error(err))
		return
	}
	if !empty {
		return
	}

	items := staticcat.Items()
	now := time.Now().Unix()
	for i := range items {
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}

	if err := repo.PutAll(ctx, items); err != nil {
		logger.Warn("Failed to seed baseline catalog", zap.Error(err))
		return
	}
	logger.Info("Seeded baseline catalog", zap.Int("services", len(items)))
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
