package domain

import (
	"encoding/json"
	"testing"
	"time"

	plandomain "jarvis-backend/internal/plan/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionLogWireCasing(t *testing.T) {
	entry := ActionLog{
		ID:     "log-1",
		UserID: "user-1",
		Plan: plandomain.ActionPlan{
			Intent: plandomain.IntentDeleteEmails,
			Params: plandomain.PlanParams{Query: "is:unread"},
			Risk:   plandomain.RiskHigh,
		},
		Status:        StatusSuccess,
		StartedAt:     time.Now(),
		FinishedAt:    time.Now(),
		DurationMs:    12,
		AffectedCount: 3,
		QueryUsed:     "is:unread",
		MessageIDs:    []string{"a", "b", "c"},
		Sample:        []AuditSample{{ID: "a", Subject: "Hi"}},
		CreatedAt:     time.Now(),
	}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	// The whole logs surface speaks camelCase, matching LogSummary.
	for _, key := range []string{
		"id", "userId", "plan", "approved", "status", "startedAt",
		"finishedAt", "durationMs", "affectedCount", "queryUsed",
		"messageIds", "sample", "createdAt",
	} {
		assert.Contains(t, fields, key)
	}
	for _, key := range []string{
		"user_id", "started_at", "finished_at", "duration_ms",
		"affected_count", "query_used", "message_ids", "created_at",
	} {
		assert.NotContains(t, fields, key)
	}
}

func TestActionLogSummary(t *testing.T) {
	created := time.Now()
	entry := ActionLog{
		ID: "log-1",
		Plan: plandomain.ActionPlan{
			Intent: plandomain.IntentDeleteEmails,
		},
		Status:        StatusFailed,
		AffectedCount: 0,
		CreatedAt:     created,
	}

	summary := entry.Summary()
	assert.Equal(t, "log-1", summary.ID)
	assert.Equal(t, plandomain.IntentDeleteEmails, summary.Intent)
	assert.Equal(t, StatusFailed, summary.Status)
	assert.Equal(t, 0, summary.AffectedCount)
	assert.Equal(t, created, summary.CreatedAt)
}
