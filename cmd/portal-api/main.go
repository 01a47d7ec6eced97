package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/core/ratelimit"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/handlers"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/repositories"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/modules/onboarding/services"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/agency-portal-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/agency-portal-be/cmd/portal-api/docs"
)

// @title AI Agency Portal API
// @version 1.0
// @description Client onboarding portal: chat-driven intake that builds the profile an AI agent is trained on
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InitLogger("development")
		log.Fatal().Err(err).Msg("❌ Failed to load config")
	}
	utils.InitLogger(cfg.Env)
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Starting portal-api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init store
	var store repositories.Store
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn().Msg("⚠️ Using in-memory store, data is lost on restart")
		store = repositories.NewMemoryStore()
	default:
		db, err := database.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Failed to connect to database")
		}
		defer db.Close()
		store = repositories.NewStore(db.GORM)
	}

	// Init LLM service
	provider, err := llm.NewProvider(ctx, &llm.ProviderConfig{
		Type:        llm.ProviderType(cfg.LLMProvider),
		APIKey:      cfg.LLMAPIKey,
		BaseURL:     cfg.LLMBaseURL,
		Referer:     cfg.LLMReferer,
		AppTitle:    cfg.LLMAppTitle,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize LLM provider")
	}
	llmService := llm.NewService(provider, cfg.LLMTimeout)
	log.Info().Str("provider", llmService.GetProviderName()).Str("model", cfg.LLMModel).Msg("🤖 Using LLM provider")

	// Init services
	accountService := services.NewAccountService(store)
	profileService := services.NewProfileService(store, accountService, cfg.HistoryLimit)
	chatService := services.NewChatService(store, accountService, llmService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "AI Agency Portal API",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.TrimSpace(cfg.CORSAllowOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, &handlers.Routes{
		Chat:        handlers.NewChatHandler(chatService, profileService),
		Onboarding:  handlers.NewOnboardingHandler(accountService, profileService),
		System:      handlers.NewSystemHandler(cfg, llmService, store.Driver()),
		JWT:         auth.NewJWTService(cfg.IdentitySecretKey, cfg.IdentityIssuer),
		ChatLimiter: ratelimit.NewKeyedLimiter(cfg.ChatRatePerMinute, cfg.ChatRateBurst),
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("❌ Shutdown failed")
		}
	}()

	log.Info().Msgf("✅ portal-api running at :%s", cfg.Port)
	log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("❌ Server stopped")
	}
}
