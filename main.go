package main

import (
	"log"

	api "jarvis-backend/cmd/api"
	authdomain "jarvis-backend/internal/auth/domain"
	authRepo "jarvis-backend/internal/auth/repository"
	authUsecase "jarvis-backend/internal/auth/usecase"
	executeUsecase "jarvis-backend/internal/execute/usecase"
	logsdomain "jarvis-backend/internal/logs/domain"
	logsRepo "jarvis-backend/internal/logs/repository"
	logsUsecase "jarvis-backend/internal/logs/usecase"
	planUsecase "jarvis-backend/internal/plan/usecase"
	"jarvis-backend/pkg/config"
	"jarvis-backend/pkg/database"
	"jarvis-backend/pkg/gmail"
	"jarvis-backend/pkg/llm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.GoogleToken{}, &logsdomain.ActionLog{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	googleTokenRepo := authRepo.NewGoogleTokenRepository(db)
	actionLogRepo := logsRepo.NewActionLogRepository(db)

	// Initialize Gmail service (token store backed by the Google token repo)
	gmailService := gmail.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, googleTokenRepo)

	// Initialize LLM provider
	provider, err := llm.NewProvider(llm.Config{
		Provider:     llm.ProviderType(cfg.LLMProvider),
		Model:        cfg.LLMModel,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		GeminiAPIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		log.Fatal("Failed to initialize LLM provider:", err)
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, googleTokenRepo, cfg)
	logsUsecaseInstance := logsUsecase.NewLogsUsecase(actionLogRepo)
	planUsecaseInstance := planUsecase.NewPlanUsecase(provider, gmailService, cfg.LatestSenderDenylist)
	executeUsecaseInstance := executeUsecase.NewExecuteUsecase(gmailService, logsUsecaseInstance)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, planUsecaseInstance, executeUsecaseInstance, logsUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
