package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/movie-catalog/internal/cache"
	"github.com/iliyamo/movie-catalog/internal/config"
	"github.com/iliyamo/movie-catalog/internal/database"
	"github.com/iliyamo/movie-catalog/internal/enhance"
	"github.com/iliyamo/movie-catalog/internal/handler"
	"github.com/iliyamo/movie-catalog/internal/middleware"
	"github.com/iliyamo/movie-catalog/internal/queue"
	"github.com/iliyamo/movie-catalog/internal/repository"
	"github.com/iliyamo/movie-catalog/internal/router"
	"github.com/iliyamo/movie-catalog/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Document store. The client is constructed once here and held for the
	// process lifetime.
	client, err := database.Open(cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongodb connect failed", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	store := repository.NewMovieRepo(client.Database(cfg.MongoDB), logger)

	// Redis backs the listing cache and the rate limiter; both degrade to
	// disabled when it is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable; listing cache and rate limiting disabled")
	}
	listings := cache.NewListings(config.LoadCacheConfig(), rdb, logger)

	// Poster enhancement is optional; without an API key the endpoint
	// reports a configuration failure instead of calling the model.
	var enhancer enhance.PosterEnhancer
	if cfg.GenAIKey != "" {
		g, err := enhance.NewGeminiEnhancer(context.Background(), cfg.GenAIKey, cfg.GenAIModel, logger)
		if err != nil {
			logger.Fatal("gemini client init failed", zap.Error(err))
		}
		enhancer = g
	} else {
		logger.Warn("GEMINI_API_KEY not set; poster enhancement disabled")
	}

	publisher := queue.NewPublisher(cfg.AMQPURL, logger)
	if cfg.AMQPURL != "" {
		go queue.StartCatalogConsumer(cfg.AMQPURL, logger)
	}

	svc := service.NewMovieService(store, enhancer, listings, publisher, logger)
	h := handler.NewMovieHandler(store, svc, listings)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))
	router.RegisterRoutes(e, h, cfg.JWTSecret)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newLogger builds the process logger: human-readable in dev, JSON
// elsewhere.
func newLogger(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
