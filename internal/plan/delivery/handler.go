package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "jarvis-backend/internal/auth/delivery"
	plandomain "jarvis-backend/internal/plan/domain"
	plandto "jarvis-backend/internal/plan/dto"
	"jarvis-backend/internal/plan/usecase"
)

type ChatHandler struct {
	planUsecase usecase.PlanUsecase
}

func NewChatHandler(planUsecase usecase.PlanUsecase) *ChatHandler {
	return &ChatHandler{planUsecase: planUsecase}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	user, err := authdelivery.UserFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req plandto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planUsecase.GeneratePlan(c.Request.Context(), user.ID, req.Message)
	if err != nil {
		log.Printf("[ChatHandler] plan generation failed for user %s: %v", user.ID, err)
		status, payload := planErrorResponse(err)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusOK, plandto.ChatResponse{Plan: plan})
}

// planErrorResponse maps planning failures to a status code plus an
// actionable hint. Configuration and quota problems get distinct guidance;
// everything else stays generic.
func planErrorResponse(err error) (int, gin.H) {
	var genErr *plandomain.PlanGenerationError
	if !errors.As(err, &genErr) {
		return http.StatusInternalServerError, gin.H{
			"error":   "PLAN_GENERATION_FAILED",
			"kind":    string(plandomain.KindGeneric),
			"message": "Failed to generate an action plan. Please try again.",
		}
	}

	switch genErr.Kind {
	case plandomain.KindConfiguration:
		return http.StatusServiceUnavailable, gin.H{
			"error":   "PLAN_GENERATION_FAILED",
			"kind":    string(genErr.Kind),
			"message": "The assistant's language model is not configured. Check the LLM API key on the server.",
		}
	case plandomain.KindQuota:
		return http.StatusTooManyRequests, gin.H{
			"error":   "PLAN_GENERATION_FAILED",
			"kind":    string(genErr.Kind),
			"message": "The language model quota or rate limit was exceeded. Please try again shortly.",
		}
	default:
		return http.StatusBadGateway, gin.H{
			"error":   "PLAN_GENERATION_FAILED",
			"kind":    string(genErr.Kind),
			"message": "Failed to generate an action plan. Try rephrasing your request.",
		}
	}
}
