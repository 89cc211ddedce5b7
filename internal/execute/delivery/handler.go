package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "jarvis-backend/internal/auth/delivery"
	execdomain "jarvis-backend/internal/execute/domain"
	execdto "jarvis-backend/internal/execute/dto"
	"jarvis-backend/internal/execute/usecase"
	plandomain "jarvis-backend/internal/plan/domain"
)

type ExecuteHandler struct {
	executeUsecase usecase.ExecuteUsecase
}

func NewExecuteHandler(executeUsecase usecase.ExecuteUsecase) *ExecuteHandler {
	return &ExecuteHandler{executeUsecase: executeUsecase}
}

func (h *ExecuteHandler) Execute(c *gin.Context) {
	user, err := authdelivery.UserFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req execdto.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := plandomain.ValidateActionPlan(req.Plan)
	if err != nil {
		var schemaErr *plandomain.SchemaError
		if errors.As(err, &schemaErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "INVALID_PLAN",
				"field":   schemaErr.Field,
				"message": schemaErr.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_PLAN", "message": err.Error()})
		return
	}

	result, err := h.executeUsecase.Execute(c.Request.Context(), user.ID, plan, req.Message, req.Confirmed(), req.IsApproved())
	if err != nil {
		if errors.Is(err, execdomain.ErrConfirmationRequired) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "CONFIRMATION_REQUIRED",
				"message": "This action requires confirmation. Resubmit the plan with confirm=true to proceed.",
				"plan":    plan,
			})
			return
		}
		log.Printf("[ExecuteHandler] execution failed for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "EXECUTION_FAILED",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
