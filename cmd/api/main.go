package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"vocational-api/internal/catalog"
	"vocational-api/internal/config"
	"vocational-api/internal/db"
	"vocational-api/internal/email"
	apihttp "vocational-api/internal/http"
	"vocational-api/internal/repository"
	"vocational-api/internal/service"

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

	assessmentRepo := repository.NewPgAssessmentRepository(pool)

	fileSource := catalog.NewFileSource(cfg.QuestionsPath, cfg.CoursesPath)
	var catalogSource catalog.Source = fileSource
	if cfg.CatalogSource == "postgres" {
		catalogSource = repository.NewPgCatalogSource(fileSource, repository.NewPgCourseRepository(pool))
	}

	var idempotency service.IdempotencyStore
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
			idempotency = service.NewRedisIdempotencyStore(redisClient, time.Duration(cfg.IdempotencyTTLMins)*time.Minute)
		}
		cancel()
	}

	resultsSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			resultsSender = sender
		}
	}

	assessmentSvc := service.NewAssessmentService(logger, catalogSource, assessmentRepo, idempotency, resultsSender, cfg.MatchLimit)
	questionHandler := apihttp.NewQuestionHandler(logger, catalogSource)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc)
	router := apihttp.NewRouter(logger, cfg.CORSOrigin, questionHandler, assessmentHandler)

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
