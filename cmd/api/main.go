package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/campuskart/campuskart-backend/api/controllers"
	"github.com/campuskart/campuskart-backend/api/routes"
	"github.com/campuskart/campuskart-backend/internal/auth"
	"github.com/campuskart/campuskart-backend/internal/catalog"
	"github.com/campuskart/campuskart-backend/internal/moderation"
	"github.com/campuskart/campuskart-backend/internal/orders"
	"github.com/campuskart/campuskart-backend/internal/users"
	"github.com/campuskart/campuskart-backend/pkg/config"
	"github.com/campuskart/campuskart-backend/pkg/db"
	"github.com/campuskart/campuskart-backend/pkg/logger"
	"github.com/campuskart/campuskart-backend/pkg/mailer"
	"github.com/campuskart/campuskart-backend/pkg/metrics"
	"github.com/campuskart/campuskart-backend/pkg/migrate"
	"github.com/campuskart/campuskart-backend/pkg/redis"
	"github.com/campuskart/campuskart-backend/pkg/storage/local"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	healthDeps := map[string]controllers.Pinger{
		"database": dbClient,
	}

	// Redis only backs the auth rate limiter, so a missing address keeps the
	// limiter off instead of failing boot.
	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		healthDeps["redis"] = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	blobStore, err := local.New(cfg.Uploads)
	if err != nil {
		logg.Error(context.Background(), "failed to prepare uploads directory", err)
		os.Exit(1)
	}
	healthDeps["uploads"] = blobStore

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	moderationService, err := moderation.NewService(moderation.ServiceParams{
		Repo:      moderation.NewRepository(dbClient.DB()),
		BlobStore: blobStore,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create moderation service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Repo:   orders.NewRepository(dbClient.DB()),
		Mailer: mailer.New(cfg.SMTP, logg),
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	router := routes.NewRouter(routes.Params{
		Config: cfg,
		Logger: logg,

		AuthService:       authService,
		CatalogService:    catalogService,
		ModerationService: moderationService,
		OrdersService:     ordersService,

		Redis:       redisClient,
		HTTPMetrics: metrics.NewHTTPMetrics(registry),
		Gatherer:    registry,
		HealthDeps:  healthDeps,
		UploadsDir:  blobStore.Dir(),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	if err := <-shutdownErr; err != nil {
		logg.Error(ctx, "graceful shutdown failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
