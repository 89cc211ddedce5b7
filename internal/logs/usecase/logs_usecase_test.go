package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"jarvis-backend/internal/logs/domain"
	plandomain "jarvis-backend/internal/plan/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	logs      map[string]*domain.ActionLog
	createErr error

	// captured arguments from the last FindByUserID call
	listUserID string
	listLimit  int
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{logs: map[string]*domain.ActionLog{}}
}

func (r *fakeLogRepo) Create(entry *domain.ActionLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("log-%d", len(r.logs))
	}
	r.logs[entry.ID] = entry
	return nil
}

func (r *fakeLogRepo) FindByUserID(userID string, limit int) ([]*domain.ActionLog, error) {
	r.listUserID = userID
	r.listLimit = limit

	var out []*domain.ActionLog
	for _, l := range r.logs {
		if l.UserID == userID && len(out) < limit {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLogRepo) FindByID(userID, logID string) (*domain.ActionLog, error) {
	l, ok := r.logs[logID]
	if !ok || l.UserID != userID {
		return nil, nil
	}
	return l, nil
}

func sampleLog(userID string) *domain.ActionLog {
	return &domain.ActionLog{
		UserID: userID,
		Plan: plandomain.ActionPlan{
			Intent: plandomain.IntentDeleteEmails,
			Params: plandomain.PlanParams{Query: "is:unread"},
			Risk:   plandomain.RiskHigh,
		},
		Status:        domain.StatusSuccess,
		AffectedCount: 7,
		CreatedAt:     time.Now(),
	}
}

func TestListLogsLimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"zero uses default", 0, 20},
		{"negative clamps up", -3, 1},
		{"in range stays", 35, 35},
		{"above max clamps down", 500, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeLogRepo()
			uc := NewLogsUsecase(repo)

			_, err := uc.ListLogs("user-1", tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, repo.listLimit)
			assert.Equal(t, "user-1", repo.listUserID)
		})
	}
}

func TestListLogsProjectsSummaries(t *testing.T) {
	repo := newFakeLogRepo()
	uc := NewLogsUsecase(repo)
	require.NoError(t, uc.Record(sampleLog("user-1")))

	summaries, err := uc.ListLogs("user-1", 10)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, plandomain.IntentDeleteEmails, summaries[0].Intent)
	assert.Equal(t, domain.StatusSuccess, summaries[0].Status)
	assert.Equal(t, 7, summaries[0].AffectedCount)
}

func TestGetLog(t *testing.T) {
	repo := newFakeLogRepo()
	uc := NewLogsUsecase(repo)

	entry := sampleLog("user-1")
	require.NoError(t, uc.Record(entry))

	got, err := uc.GetLog("user-1", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
}

func TestGetLogNotFound(t *testing.T) {
	repo := newFakeLogRepo()
	uc := NewLogsUsecase(repo)

	_, err := uc.GetLog("user-1", "missing")
	assert.ErrorIs(t, err, domain.ErrLogNotFound)
}

func TestGetLogOtherUsersRecordHidden(t *testing.T) {
	repo := newFakeLogRepo()
	uc := NewLogsUsecase(repo)

	entry := sampleLog("user-1")
	require.NoError(t, uc.Record(entry))

	_, err := uc.GetLog("user-2", entry.ID)
	assert.ErrorIs(t, err, domain.ErrLogNotFound)
}

func TestRecordPropagatesRepositoryError(t *testing.T) {
	repo := newFakeLogRepo()
	repo.createErr = errors.New("db down")
	uc := NewLogsUsecase(repo)

	err := uc.Record(sampleLog("user-1"))
	assert.Error(t, err)
}
