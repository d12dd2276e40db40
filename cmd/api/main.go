package main

// @title SkateSpot Service API
// @version 1.0.0
// @description Microservice for discovering and classifying skateboarding spots. Provides filtered and geospatial spot queries, photo-based spot classification with a deterministic fallback, a trick catalog with daily challenges, and user spot collections.
// @description
// @description Main capabilities:
// @description - Paginated spot listing with type, surface, difficulty, text and score filters
// @description - Radius search around a coordinate with per-spot distances
// @description - Spot photo analysis: type, difficulty, feature estimates and trick suggestions
// @description - Deterministic difficulty rating from measured obstacle features
// @description - User collections of favorite spots

// @contact.name API Support
// @contact.email support@skatespot-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey api_key
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/skatespot-service/docs/swagger"
	"github.com/skatespot-service/internal/config"
	httpDelivery "github.com/skatespot-service/internal/delivery/http"
	"github.com/skatespot-service/internal/delivery/http/handler"
	"github.com/skatespot-service/internal/infrastructure/classifier"
	"github.com/skatespot-service/internal/pkg/logger"
	"github.com/skatespot-service/internal/repository/cache"
	"github.com/skatespot-service/internal/repository/postgres"
	redisrepo "github.com/skatespot-service/internal/repository/redis"
	"github.com/skatespot-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SkateSpot Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	spotRepo := postgres.NewSpotRepository(db)
	trickRepo := postgres.NewTrickRepository(db)
	collectionRepo := postgres.NewCollectionRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisrepo.NewStreamRepository(redisClient.Client(), log)
	classifierClient := classifier.NewClassifierClient(&cfg.Classifier, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	spotUC := usecase.NewSpotUseCase(
		spotRepo,
		cacheRepo,
		log,
		cfg.Cache.SpotsCacheTTL,
	)

	analysisUC := usecase.NewAnalysisUseCase(
		classifierClient,
		streamRepo,
		log,
	)

	trickUC := usecase.NewTrickUseCase(
		trickRepo,
		cacheRepo,
		log,
	)

	collectionUC := usecase.NewCollectionUseCase(
		collectionRepo,
		spotRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	spotHandler := handler.NewSpotHandler(spotUC, log)
	analysisHandler := handler.NewAnalysisHandler(analysisUC, log)
	trickHandler := handler.NewTrickHandler(trickUC, log)
	collectionHandler := handler.NewCollectionHandler(collectionUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		spotHandler,
		analysisHandler,
		trickHandler,
		collectionHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
