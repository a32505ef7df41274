package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/adapters/cache"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/adapters/database"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/adapters/providers/generative"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/adapters/providers/translation"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/api/handlers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/api/middleware"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/api/routes"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/application/services"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/clients/postgres"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/clients/redis"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/config"
)

func main() {

	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	// Load configuration

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize structured logging
	env := os.Getenv("ENV")
	if env == "" {
		env = "production"
	}
	observability.InitLogger(cfg.OTEL.ServiceName, env)

	log.Info().
		Str("service", cfg.OTEL.ServiceName).
		Str("version", cfg.OTEL.ServiceVersion).
		Str("env", env).
		Msg("Starting API server")

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized successfully")

	// Initialize Redis client. The server runs without it, just uncached.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis client")
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters

	userAdapter := database.NewUserAdapter(pgClient, metrics)
	chatAdapter := database.NewChatMessageAdapter(pgClient, metrics)

	translationProvider := translation.NewTranslationProvider(cfg.Translation, cacheProvider, metrics)
	generativeProvider := generative.NewGenerativeProvider(cfg)

	// Initialize services

	languageService := services.NewLanguageService(translationProvider, metrics)

	intentService, err := services.NewIntentService(
		filepath.Join(cfg.Chat.DataDir, "intent_patterns.json"),
		filepath.Join(cfg.Chat.DataDir, "entity_vocabulary.json"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load intent tables")
	}

	kbService, err := services.NewKnowledgeBaseService(filepath.Join(cfg.Chat.DataDir, "knowledge_base.json"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load knowledge base")
	}
	responseService := services.NewResponseService(kbService)

	generationService := services.NewGenerationService(generativeProvider, cfg.Generative.TimeoutSeconds, metrics)
	if generationService.Enabled() {
		log.Info().Str("provider", cfg.Generative.Provider).Msg("Generative responses enabled")
	} else {
		log.Info().Msg("Generative responses disabled, serving knowledge base templates")
	}

	chatService := services.NewChatService(
		languageService,
		intentService,
		responseService,
		generationService,
		chatAdapter,
		cfg.Chat.HistoryLimit,
		metrics,
	)
	userService := services.NewUserService(userAdapter)

	// Initialize handlers

	chatHandler := handlers.NewChatHandler(chatService)

	profileHandler := handlers.NewProfileHandler(userService)

	conditionHandler := handlers.NewConditionHandler(kbService)

	healthHandler := handlers.NewHealthHandler()
	healthHandler.AddCheck("postgres", pgClient.Ping)
	if redisClient != nil {
		healthHandler.AddCheck("redis", redisClient.Ping)
	}

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Info().Msg("Cache middleware initialized successfully")
	}

	// Set up router

	router := routes.NewRouter(
		chatHandler,
		profileHandler,
		conditionHandler,
		healthHandler,
		cacheMiddleware,
		userAdapter,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("address", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
