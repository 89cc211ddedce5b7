package usecase

import (
	"jarvis-backend/internal/logs/domain"
	"jarvis-backend/internal/logs/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 50
)

// LogsUsecase defines the interface for audit log business logic
type LogsUsecase interface {
	// Record persists an execution attempt. Callers on the execution path
	// treat failures as best-effort; Record itself never masks them.
	Record(entry *domain.ActionLog) error

	// ListLogs returns summaries for a user, newest first. The limit is
	// clamped to [1, 50]; zero falls back to the default of 20.
	ListLogs(userID string, limit int) ([]*domain.LogSummary, error)

	// GetLog returns the full record, or ErrLogNotFound when it does not
	// exist or belongs to another user.
	GetLog(userID, logID string) (*domain.ActionLog, error)
}

type logsUsecase struct {
	repo repository.ActionLogRepository
}

func NewLogsUsecase(repo repository.ActionLogRepository) LogsUsecase {
	return &logsUsecase{repo: repo}
}

func (u *logsUsecase) Record(entry *domain.ActionLog) error {
	return u.repo.Create(entry)
}

func (u *logsUsecase) ListLogs(userID string, limit int) ([]*domain.LogSummary, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	logs, err := u.repo.FindByUserID(userID, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.LogSummary, 0, len(logs))
	for _, log := range logs {
		summaries = append(summaries, log.Summary())
	}
	return summaries, nil
}

func (u *logsUsecase) GetLog(userID, logID string) (*domain.ActionLog, error) {
	log, err := u.repo.FindByID(userID, logID)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, domain.ErrLogNotFound
	}
	return log, nil
}
