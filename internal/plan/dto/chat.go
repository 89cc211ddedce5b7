package dto

import plandomain "jarvis-backend/internal/plan/domain"

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Plan *plandomain.ActionPlan `json:"plan"`
}
