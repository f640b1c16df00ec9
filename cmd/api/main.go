package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chat-relay/internal/config"
	"chat-relay/internal/db"
	apihttp "chat-relay/internal/http"
	"chat-relay/internal/llm"
	"chat-relay/internal/repository"
	"chat-relay/internal/service"
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

	completionClient, err := newCompletionClient(cfg, logger)
	if err != nil {
		logger.Fatal("llm client init", zap.Error(err))
	}

	var counter llm.TokenCounter
	if tc, err := llm.NewTiktokenCounter(cfg.LLMModel); err != nil {
		logger.Warn("token counter disabled", zap.Error(err))
	} else {
		counter = tc
	}

	relaySvc := service.NewRelayService(completionClient, service.RelayOptions{
		Model:        cfg.LLMModel,
		SystemPrompt: cfg.SystemPrompt,
		Temperature:  cfg.LLMTemperature,
		MaxTokens:    cfg.LLMMaxTokens,
	}, counter, logger)

	feedbackStore, cleanup := newFeedbackStore(ctx, cfg, logger)
	defer cleanup()
	feedbackSvc := service.NewFeedbackService(feedbackStore)

	relayHandler := apihttp.NewRelayHandler(logger, relaySvc)
	feedbackHandler := apihttp.NewFeedbackHandler(logger, feedbackSvc)
	ticketsHandler := apihttp.NewTicketsHandler(logger)
	router := apihttp.NewRouter(logger, cfg.CORSAllowedOrigins, relayHandler, feedbackHandler, ticketsHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("llm_backend", cfg.LLMBackend),
		zap.String("llm_model", cfg.LLMModel),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newCompletionClient(cfg *config.Config, logger *zap.Logger) (llm.CompletionClient, error) {
	if cfg.LLMBackend == config.LLMBackendLangChain {
		return llm.NewLangChainClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	}
	if cfg.LLMBackend != config.LLMBackendHTTP {
		logger.Warn("unknown llm backend, using http", zap.String("llm_backend", cfg.LLMBackend))
	}
	return llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout, logger), nil
}

// newFeedbackStore elige Postgres, Redis o memoria segun la configuracion disponible.
func newFeedbackStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.FeedbackRepository, func()) {
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Warn("db connect failed", zap.Error(err))
		} else if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Warn("feedback schema failed", zap.Error(err))
			pool.Close()
		} else {
			logger.Info("feedback store", zap.String("backend", "postgres"))
			return repository.NewPgFeedbackRepository(pool), pool.Close
		}
	}

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := redisClient.Ping(ctxPing).Err()
		cancel()
		if err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
			_ = redisClient.Close()
		} else {
			logger.Info("feedback store", zap.String("backend", "redis"))
			return service.NewRedisFeedbackStore(redisClient), func() { _ = redisClient.Close() }
		}
	}

	logger.Info("feedback store", zap.String("backend", "memory"))
	return service.NewMemoryFeedbackStore(), func() {}
}
