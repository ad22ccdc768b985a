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

	"airport-booking/concourse/internal/api"
	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/config"
	"airport-booking/concourse/internal/db"
	"airport-booking/concourse/internal/logging"
	"airport-booking/concourse/internal/metrics"
	"airport-booking/concourse/internal/routes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// @title Concourse API
// @version 1.0
// @description Airport booking backend: reference data, flight schedule and seat orders.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Concourse starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.Database.Driver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	orm, err := db.InitORM(cfg.Database)
	if err != nil {
		logging.Fatal("Failed to connect to database (GORM)", "error", err.Error())
	}
	if err := db.Migrate(orm); err != nil {
		logging.Fatal("Failed to migrate schema", "error", err.Error())
	}
	logging.Info("Connected to database (GORM)", "driver", cfg.Database.Driver)

	sqlDB, err := db.InitSQLX(cfg.Database, orm)
	if err != nil {
		logging.Fatal("Failed to connect to database (sqlx)", "error", err.Error())
	}
	logging.Info("Connected to database (sqlx)")

	// Revoked tokens live in Redis when enabled so every replica sees them
	var (
		redisClient *redis.Client
		tokenStore  common.TokenStore
	)
	if cfg.Redis.Enabled {
		redisClient = common.NewRedisClient(cfg.Redis)
		tokenStore = common.NewRedisTokenStore(redisClient)
	} else {
		logging.Warn("Redis disabled, revoked tokens are kept in process memory")
		tokenStore = common.NewMemoryTokenStore(10 * time.Minute)
	}
	defer tokenStore.Close()

	signer := common.NewTokenSigner([]byte(cfg.JWT.Secret), cfg.JWT.TTL, tokenStore)
	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	deps, err := api.InitDependencies(api.Infra{
		ORM:     orm,
		SQL:     sqlDB,
		Redis:   redisClient,
		Signer:  signer,
		Metrics: metricsReg,
	})
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}

	router := routes.RegisterRoutes(deps, routes.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		UpSince:     time.Now(),
	})

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Info("Server starting", "port", cfg.HTTPPort, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Server failed", "error", err.Error())
		}
	}()

	<-ctx.Done()
	logging.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err.Error())
	}
	if err := sqlDB.Close(); err != nil {
		logging.Warn("Failed to close database", "error", err.Error())
	}
}
