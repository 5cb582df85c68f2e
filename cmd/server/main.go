package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"courier-admin-service/internal/adapters/cache"
	"courier-admin-service/internal/adapters/distance"
	"courier-admin-service/internal/adapters/prefs"
	"courier-admin-service/internal/adapters/repositories"
	"courier-admin-service/internal/api"
	"courier-admin-service/internal/config"
	"courier-admin-service/internal/platform/auth"
	"courier-admin-service/internal/platform/db"
	"courier-admin-service/internal/platform/obs"
	"courier-admin-service/internal/ports"
	"courier-admin-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, the distance matrix client)
// behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close()

	var redisClient *redis.Client
	if cfg.CacheBackend == "redis" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
	}

	provider, err := buildProvider(cfg, redisClient, logger)
	if err != nil {
		logger.Fatal("distance provider setup failed", zap.Error(err))
	}

	var prefStore ports.PreferenceStore
	if redisClient != nil {
		prefStore = prefs.NewRedisPreferenceStore(redisClient)
	} else {
		prefStore = prefs.NewMemoryPreferenceStore()
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		logger.Fatal("token manager setup failed", zap.Error(err))
	}

	stores := repositories.NewPostgresStoreRepository(database)
	customers := repositories.NewPostgresCustomerRepository(database)
	drivers := repositories.NewPostgresDriverRepository(database)
	managers := repositories.NewPostgresManagerRepository(database)
	orders := repositories.NewPostgresOrderRepository(database)
	notifications := repositories.NewPostgresNotificationRepository(database)
	penalties := repositories.NewPostgresPenaltyRepository(database)
	announcements := repositories.NewPostgresAnnouncementRepository(database)

	sequencer := services.NewSequencer(provider, stores, logger)
	estimator := services.NewEstimator(orders, logger)
	planner := services.NewPlanner(
		sequencer, estimator,
		stores, customers, drivers, orders, notifications,
		prefStore, logger,
	)

	router := api.NewRouter(api.Deps{
		DB:            database,
		Logger:        logger,
		Tokens:        tokens,
		Planner:       planner,
		Stores:        stores,
		Customers:     customers,
		Drivers:       drivers,
		Managers:      managers,
		Orders:        orders,
		Notifications: notifications,
		Penalties:     penalties,
		Announcements: announcements,
		CORSOrigins:   cfg.CORSOrigins,
	})

	// The write timeout covers cold-cache route planning, where every leg
	// hits the external matrix API.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}

// buildProvider assembles the distance oracle client, optionally wrapped
// in a leg cache. The client itself stays a pure proxy.
func buildProvider(cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) (ports.DistanceProvider, error) {
	client, err := distance.NewMatrixClient(cfg.MatrixBaseURL, cfg.MatrixAPIKey)
	if err != nil {
		return nil, err
	}

	switch cfg.CacheBackend {
	case "redis":
		legCache := cache.NewRedisLegCache(redisClient, cfg.CacheTTL)
		return distance.NewCachingProvider(client, legCache, logger), nil
	case "sqlite":
		cacheDB, err := sql.Open("sqlite", cfg.SqliteCachePath)
		if err != nil {
			return nil, err
		}
		if err := cache.InitSqliteLegCache(cacheDB); err != nil {
			return nil, err
		}
		return distance.NewCachingProvider(client, cache.NewSqliteLegCache(cacheDB), logger), nil
	default:
		return client, nil
	}
}
