package domain

import plandomain "jarvis-backend/internal/plan/domain"

// ResponseSampleSize bounds the caller-facing sample on a result.
const ResponseSampleSize = 3

// ExecutionResult is what the caller sees after a completed execution.
// It is derived from the audit record, never persisted on its own.
type ExecutionResult struct {
	Success        bool                     `json:"success"`
	Action         plandomain.Intent        `json:"action"`
	EmailsAffected int                      `json:"emailsAffected"`
	Sample         []plandomain.EmailSample `json:"sample"`
	Message        string                   `json:"message"`
}
