package api

import (
	"net/http"

	authDelivery "jarvis-backend/internal/auth/delivery"
	authUsecasePkg "jarvis-backend/internal/auth/usecase"
	executeDelivery "jarvis-backend/internal/execute/delivery"
	executeUsecasePkg "jarvis-backend/internal/execute/usecase"
	logsDelivery "jarvis-backend/internal/logs/delivery"
	logsUsecasePkg "jarvis-backend/internal/logs/usecase"
	planDelivery "jarvis-backend/internal/plan/delivery"
	planUsecasePkg "jarvis-backend/internal/plan/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecasePkg.AuthUsecase, planUsecase planUsecasePkg.PlanUsecase, executeUsecase executeUsecasePkg.ExecuteUsecase, logsUsecase logsUsecasePkg.LogsUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUsecase)
	chatHandler := planDelivery.NewChatHandler(planUsecase)
	executeHandler := executeDelivery.NewExecuteHandler(executeUsecase)
	logsHandler := logsDelivery.NewLogsHandler(logsUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/google/start", authHandler.GoogleStart)
			auth.GET("/google/callback", authHandler.GoogleCallback)
			auth.GET("/success", authHandler.GoogleSuccess)
			auth.GET("/me", authDelivery.AuthMiddleware(authUsecase), authHandler.Me)
		}

		// Assistant routes (protected)
		assistant := api.Group("")
		assistant.Use(authDelivery.AuthMiddleware(authUsecase))
		{
			assistant.POST("/chat", chatHandler.Chat)
			assistant.POST("/execute", executeHandler.Execute)
			assistant.GET("/logs", logsHandler.ListLogs)
			assistant.GET("/logs/:id", logsHandler.GetLog)
		}
	}
}
