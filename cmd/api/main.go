package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"mind-clone/internal/config"
	"mind-clone/internal/db"
	apihttp "mind-clone/internal/http"
	"mind-clone/internal/nlp"
	"mind-clone/internal/repository"
	"mind-clone/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
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

	profileRepo := repository.NewPgProfileRepository(pool)

	var (
		tokenStore      service.RefreshTokenStore
		assessmentStore service.AssessmentStore
	)
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
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			assessmentStore = service.NewRedisAssessmentStore(redisClient)
		}
		cancel()
	}
	if assessmentStore == nil {
		assessmentStore = service.NewMemoryAssessmentStore()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMin)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLDays)*24*time.Hour,
		tokenStore,
	)

	analyzer := service.NewResponseAnalyzer(nlp.NewBasicAnalyzer())
	generator := service.NewProfileGenerator(logger)
	assessmentSvc := service.NewAssessmentService(analyzer, generator, assessmentStore, logger)
	hybridSvc := service.NewHybridService(logger)

	authHandler := apihttp.NewAuthHandler(logger, jwtSvc)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc, profileRepo)
	profileHandler := apihttp.NewProfileHandler(logger, profileRepo)
	hybridHandler := apihttp.NewHybridHandler(logger, hybridSvc, profileRepo)
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, assessmentHandler, profileHandler, hybridHandler)

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
