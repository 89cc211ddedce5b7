package usecase

import (
	"context"

	"jarvis-backend/internal/plan/domain"
)

// PlanUsecase defines the interface for plan generation business logic
type PlanUsecase interface {
	// GeneratePlan turns a user message into a validated ActionPlan,
	// enriched with real mailbox data when possible.
	GeneratePlan(ctx context.Context, userID, message string) (*domain.ActionPlan, error)
}

// MailGateway is the subset of the mail provider used for enrichment.
type MailGateway interface {
	GetAccessToken(ctx context.Context, userID string) (string, error)
	ListMessageIDs(ctx context.Context, accessToken, query string, maxResults int) ([]string, error)
	GetMetadata(ctx context.Context, accessToken, messageID string) (subject, from, date string, err error)
}
