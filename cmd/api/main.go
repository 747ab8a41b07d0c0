package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"iris-api/internal/config"
	"iris-api/internal/db"
	apihttp "iris-api/internal/http"
	"iris-api/internal/model"
	"iris-api/internal/repository"
	"iris-api/internal/service"

	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.InitSchema(ctx, pool); err != nil {
		logger.Fatal("db schema init", zap.Error(err))
	}

	// El modelo se carga una sola vez; sin artefacto no hay servicio.
	classifier, err := model.Load(cfg.ModelPath)
	if err != nil {
		logger.Fatal("model load", zap.Error(err), zap.String("path", cfg.ModelPath))
	}
	logger.Info("model loaded", zap.String("path", cfg.ModelPath))

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLSeconds)*time.Second)
	authSvc, err := service.NewAuthService(cfg.AuthUsername, cfg.AuthPassword, jwtSvc)
	if err != nil {
		logger.Fatal("auth service init", zap.Error(err))
	}

	loginLimiter := service.NewLoginRateLimiter(time.Minute, 10)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, time.Minute, 10)
		}
		cancel()
	}

	predictionRepo := repository.NewPgPredictionRepository(pool)
	cache := service.NewMemoryPredictionCache()
	predictionSvc := service.NewPredictionService(logger, classifier, cache, predictionRepo)

	authHandler := apihttp.NewAuthHandler(logger, authSvc, loginLimiter)
	predictionHandler := apihttp.NewPredictionHandler(logger, predictionSvc)
	healthHandler := apihttp.NewHealthHandler(logger, pool)
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, predictionHandler, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
