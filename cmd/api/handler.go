package api

import (
	authUsecasePkg "jarvis-backend/internal/auth/usecase"
	executeUsecasePkg "jarvis-backend/internal/execute/usecase"
	logsUsecasePkg "jarvis-backend/internal/logs/usecase"
	planUsecasePkg "jarvis-backend/internal/plan/usecase"
	"jarvis-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecasePkg.AuthUsecase
	planUsecase    planUsecasePkg.PlanUsecase
	executeUsecase executeUsecasePkg.ExecuteUsecase
	logsUsecase    logsUsecasePkg.LogsUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, planUc planUsecasePkg.PlanUsecase, executeUc executeUsecasePkg.ExecuteUsecase, logsUc logsUsecasePkg.LogsUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		planUsecase:    planUc,
		executeUsecase: executeUc,
		logsUsecase:    logsUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware. The browser extension sends a chrome-extension://
	// origin, so echo the configured origin back instead of a wildcard.
	extensionOrigin := h.config.ExtensionOrigin
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		switch {
		case extensionOrigin != "" && extensionOrigin != "*":
			c.Writer.Header().Set("Access-Control-Allow-Origin", extensionOrigin)
		case origin != "":
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		default:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.planUsecase, h.executeUsecase, h.logsUsecase)

	return r.Run(addr)
}
