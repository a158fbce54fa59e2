// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/trackflow/internal/activity"
	"github.com/carterperez-dev/trackflow/internal/admin"
	"github.com/carterperez-dev/trackflow/internal/auth"
	"github.com/carterperez-dev/trackflow/internal/config"
	"github.com/carterperez-dev/trackflow/internal/core"
	"github.com/carterperez-dev/trackflow/internal/health"
	"github.com/carterperez-dev/trackflow/internal/media"
	"github.com/carterperez-dev/trackflow/internal/middleware"
	"github.com/carterperez-dev/trackflow/internal/payment"
	"github.com/carterperez-dev/trackflow/internal/server"
	"github.com/carterperez-dev/trackflow/internal/session"
	"github.com/carterperez-dev/trackflow/internal/submission"
	"github.com/carterperez-dev/trackflow/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	sessionRepo := session.NewRepository(db.DB)
	sessionSvc := session.NewService(sessionRepo, cfg.Session.TTL)

	authSvc := auth.NewService(userSvc, sessionSvc)
	authHandler := auth.NewHandler(authSvc, auth.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.IsProduction(),
	})

	submissionRepo := submission.NewRepository(db.DB)
	submissionSvc := submission.NewService(submissionRepo)
	submissionHandler := submission.NewHandler(submissionSvc)

	mediaRepo := media.NewRepository(db.DB)
	mediaSvc := media.NewService(mediaRepo)
	mediaHandler := media.NewHandler(mediaSvc)

	activityHandler := activity.NewHandler(submissionSvc)

	paymentSvc := payment.NewService(
		cfg.PaymentsEnabled(),
		cfg.Stripe.PublishableKey,
	)
	paymentHandler := payment.NewHandler(paymentSvc)

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		Exporter: admin.ExportSources{
			Users:       userSvc,
			Submissions: submissionSvc,
			Media:       mediaSvc,
		},
	})

	if err := userSvc.BootstrapMasterDev(
		ctx,
		cfg.MasterDev.Email,
		cfg.MasterDev.Key,
	); err != nil {
		return err
	}
	if cfg.MasterDev.Email != "" {
		logger.Info("master dev account bootstrapped",
			"email", cfg.MasterDev.Email,
		)
	}

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	sessionAuth := middleware.SessionAuth(sessionSvc, cfg.Session.CookieName)
	tieredLimiter := middleware.TieredRateLimiter(
		redis.Client,
		middleware.DefaultTiers,
	)

	// Authenticated routes get the per-tier limit on top of the global
	// per-IP one; the tier is only known after session resolution.
	authenticator := func(next http.Handler) http.Handler {
		return sessionAuth(tieredLimiter(next))
	}

	adminOnly := middleware.RequireAdmin
	masterDevOnly := middleware.RequireMasterDev

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)

		submissionHandler.RegisterRoutes(r, authenticator)
		submissionHandler.RegisterAdminRoutes(r, authenticator, adminOnly)

		activityHandler.RegisterRoutes(r, authenticator)
		paymentHandler.RegisterRoutes(r, authenticator)

		mediaHandler.RegisterRoutes(r)
		mediaHandler.RegisterAdminRoutes(r, authenticator, adminOnly)

		userHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly, masterDevOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
