package repository

import "jarvis-backend/internal/logs/domain"

// ActionLogRepository defines the interface for audit record access.
type ActionLogRepository interface {
	// Create persists a new record, assigning an ID when missing.
	Create(log *domain.ActionLog) error

	// FindByUserID returns up to limit records for a user, newest first.
	FindByUserID(userID string, limit int) ([]*domain.ActionLog, error)

	// FindByID returns the record only when it belongs to userID.
	// Returns (nil, nil) when no such record exists for that user.
	FindByID(userID, logID string) (*domain.ActionLog, error)
}
