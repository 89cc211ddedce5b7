package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authdelivery "jarvis-backend/internal/auth/delivery"
	logsdomain "jarvis-backend/internal/logs/domain"
	"jarvis-backend/internal/logs/usecase"
)

type LogsHandler struct {
	logsUsecase usecase.LogsUsecase
}

func NewLogsHandler(logsUsecase usecase.LogsUsecase) *LogsHandler {
	return &LogsHandler{logsUsecase: logsUsecase}
}

func (h *LogsHandler) ListLogs(c *gin.Context) {
	user, err := authdelivery.UserFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed // usecase clamps to [1, 50]
		}
	}

	summaries, err := h.logsUsecase.ListLogs(user.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *LogsHandler) GetLog(c *gin.Context) {
	user, err := authdelivery.UserFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	log, err := h.logsUsecase.GetLog(user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, logsdomain.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}
