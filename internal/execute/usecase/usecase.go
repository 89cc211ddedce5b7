package usecase

import (
	"context"

	"jarvis-backend/internal/execute/domain"
	logsdomain "jarvis-backend/internal/logs/domain"
	plandomain "jarvis-backend/internal/plan/domain"
)

// ExecuteUsecase defines the interface for plan execution business logic
type ExecuteUsecase interface {
	// Execute runs a validated plan for a user. confirm must be an explicit
	// affirmative; approved is recorded on the audit trail. Every attempt,
	// including blocked and failed ones, writes exactly one audit record.
	Execute(ctx context.Context, userID string, plan *plandomain.ActionPlan, message string, confirm, approved bool) (*domain.ExecutionResult, error)
}

// MailGateway is the subset of the mail provider the executor needs.
type MailGateway interface {
	// GetAccessToken resolves credentials for a user; absence is a hard
	// failure, never a silent no-op.
	GetAccessToken(ctx context.Context, userID string) (string, error)

	// ListMessageIDs returns at most maxResults identifiers matching the
	// query, in provider-native order.
	ListMessageIDs(ctx context.Context, accessToken, query string, maxResults int) ([]string, error)

	// GetMetadataWithSnippet fetches display headers plus a short snippet.
	GetMetadataWithSnippet(ctx context.Context, accessToken, messageID string) (subject, from, date, snippet string, err error)

	// Trash moves all ids to the trashed state in a single batched call.
	Trash(ctx context.Context, accessToken string, messageIDs []string) error
}

// AuditRecorder receives the one audit record written per attempt.
type AuditRecorder interface {
	Record(entry *logsdomain.ActionLog) error
}
