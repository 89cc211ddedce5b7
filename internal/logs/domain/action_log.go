package domain

import (
	"errors"
	"time"

	plandomain "jarvis-backend/internal/plan/domain"
)

// ErrLogNotFound is returned for missing records and for records owned by
// another user; the two cases are indistinguishable on purpose.
var ErrLogNotFound = errors.New("log not found")

// ExecutionStatus is the terminal state of one execution attempt.
type ExecutionStatus string

const (
	StatusSuccess ExecutionStatus = "SUCCESS"
	StatusFailed  ExecutionStatus = "FAILED"
	StatusDryRun  ExecutionStatus = "DRY_RUN"
)

// AuditSampleSize bounds the per-record sample kept for audit review. It is
// richer than the response sample (snippet included) but selected in the
// same TargetSet order.
const AuditSampleSize = 5

// AuditSample is one sampled message stored with an ActionLog.
type AuditSample struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	From    string `json:"from"`
	Date    string `json:"date"`
	Snippet string `json:"snippet"`
}

// ActionLog records one execution attempt: succeeded, failed or blocked.
// Exactly one row is written per attempt and rows are never updated after
// the write.
type ActionLog struct {
	ID      string `json:"id" gorm:"primaryKey"`
	UserID  string `json:"userId" gorm:"index:idx_action_logs_user_created,priority:1;not null"`
	Message string `json:"message,omitempty"`

	Plan     plandomain.ActionPlan `json:"plan" gorm:"serializer:json;not null"`
	Approved bool                  `json:"approved"`

	Status     ExecutionStatus `json:"status" gorm:"not null"`
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt time.Time       `json:"finishedAt"`
	DurationMs int64           `json:"durationMs"`

	ErrorMessage  string        `json:"errorMessage,omitempty"`
	AffectedCount int           `json:"affectedCount"`
	QueryUsed     string        `json:"queryUsed"`
	MessageIDs    []string      `json:"messageIds" gorm:"serializer:json"`
	Sample        []AuditSample `json:"sample" gorm:"serializer:json"`

	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_action_logs_user_created,priority:2,sort:desc"`
}

// LogSummary is the list-view projection of an ActionLog.
type LogSummary struct {
	ID            string            `json:"id"`
	CreatedAt     time.Time         `json:"createdAt"`
	Intent        plandomain.Intent `json:"intent"`
	Status        ExecutionStatus   `json:"status"`
	AffectedCount int               `json:"affectedCount"`
}

// Summary projects the record into its list view.
func (l *ActionLog) Summary() *LogSummary {
	return &LogSummary{
		ID:            l.ID,
		CreatedAt:     l.CreatedAt,
		Intent:        l.Plan.Intent,
		Status:        l.Status,
		AffectedCount: l.AffectedCount,
	}
}
