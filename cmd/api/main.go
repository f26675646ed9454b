package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	"github.com/BruksfildServices01/pest-control-api/internal/config"
	dbpkg "github.com/BruksfildServices01/pest-control-api/internal/db"
	"github.com/BruksfildServices01/pest-control-api/internal/export"
	"github.com/BruksfildServices01/pest-control-api/internal/infra/memstore"
	infraRepo "github.com/BruksfildServices01/pest-control-api/internal/infra/repository"
	"github.com/BruksfildServices01/pest-control-api/internal/logging"
	"github.com/BruksfildServices01/pest-control-api/internal/routes"
	"github.com/BruksfildServices01/pest-control-api/internal/throttle"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger := logging.New(logging.Config{
		Service: "pest-control-api",
		Version: version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// STORAGE
	// ======================================================
	deps := routes.Deps{
		Config:  cfg,
		Logger:  logger,
		Version: version,
	}

	var auditStore audit.Store

	switch cfg.StoreDriver {
	case config.StoreMemory:
		store := memstore.New()
		deps.Users, deps.Clients, deps.Services = store, store, store
		auditStore = store
		logger.Warn("using in-memory store; data is lost on restart")

	default:
		db, err := dbpkg.NewDB(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := dbpkg.Close(db); err != nil {
				logger.Error("closing database", slog.Any("error", err))
			}
		}()

		deps.Users = infraRepo.NewUserGormRepository(db)
		deps.Clients = infraRepo.NewClientGormRepository(db)
		deps.Services = infraRepo.NewServiceGormRepository(db)
		auditStore = infraRepo.NewAuditGormRepository(db)
	}

	// ======================================================
	// AUDIT
	// ======================================================
	deps.AuditLog = audit.New(auditStore)
	deps.Audit = audit.NewDispatcher(deps.AuditLog, logger)

	// ======================================================
	// LOGIN THROTTLE
	// ======================================================
	throttleCfg := throttle.Config{
		Requests: cfg.LoginRateLimit,
		Window:   cfg.LoginRateWindow,
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := throttle.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, using in-process throttle", slog.Any("error", err))
		} else {
			redisClient = client
			deps.Limiter = throttle.NewRedisLimiter(client, throttleCfg)
		}
	}
	if deps.Limiter == nil {
		deps.Limiter = throttle.NewMemoryLimiter(throttleCfg)
	}

	// ======================================================
	// EXPORTS
	// ======================================================
	if cfg.S3.Enabled() {
		deps.Uploader = export.NewS3Uploader(cfg.S3)
	}

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return err
	}
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running",
			slog.String("addr", cfg.Addr()),
			slog.String("store", cfg.StoreDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	// ======================================================
	// SHUTDOWN
	// ======================================================
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.Any("error", err))
	}

	if err := deps.Audit.Close(shutdownCtx); err != nil {
		logger.Error("audit drain", slog.Any("error", err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("closing redis", slog.Any("error", err))
		}
	}

	return nil
}
