package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "jarvis-backend/internal/auth/domain"
	execdomain "jarvis-backend/internal/execute/domain"
	plandomain "jarvis-backend/internal/plan/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecuteUsecase struct {
	result *execdomain.ExecutionResult
	err    error

	gotPlan     *plandomain.ActionPlan
	gotConfirm  bool
	gotApproved bool
}

func (f *fakeExecuteUsecase) Execute(ctx context.Context, userID string, plan *plandomain.ActionPlan, message string, confirm, approved bool) (*execdomain.ExecutionResult, error) {
	f.gotPlan = plan
	f.gotConfirm = confirm
	f.gotApproved = approved
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func setupExecuteRouter(uc *fakeExecuteUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/execute", func(c *gin.Context) {
		c.Set("user", &authdomain.User{ID: "user-1", Email: "u@example.com"})
		c.Next()
	}, NewExecuteHandler(uc).Execute)
	return r
}

func postExecute(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/execute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validPlanBody = `{
	"plan": {
		"intent": "DELETE_EMAILS",
		"params": {"query": "from:promo@example.com"},
		"explanation": "Delete promo emails",
		"risk": "HIGH",
		"confidence": 0.9
	},
	"confirm": true
}`

func TestExecuteHandlerSuccess(t *testing.T) {
	uc := &fakeExecuteUsecase{
		result: &execdomain.ExecutionResult{
			Success:        true,
			Action:         plandomain.IntentDeleteEmails,
			EmailsAffected: 12,
			Sample:         []plandomain.EmailSample{},
			Message:        "Successfully deleted 12 email(s)",
		},
	}
	r := setupExecuteRouter(uc)

	w := postExecute(t, r, validPlanBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(12), resp["emailsAffected"])

	assert.True(t, uc.gotConfirm)
	assert.True(t, uc.gotApproved)
	require.NotNil(t, uc.gotPlan)
	assert.Equal(t, plandomain.IntentDeleteEmails, uc.gotPlan.Intent)
}

func TestExecuteHandlerConfirmationRequired(t *testing.T) {
	uc := &fakeExecuteUsecase{err: execdomain.ErrConfirmationRequired}
	r := setupExecuteRouter(uc)

	body := `{
		"plan": {
			"intent": "DELETE_EMAILS",
			"params": {"query": "from:promo@example.com"},
			"explanation": "Delete promo emails",
			"risk": "HIGH",
			"confidence": 0.9
		}
	}`
	w := postExecute(t, r, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIRMATION_REQUIRED", resp["error"])
	assert.NotEmpty(t, resp["message"])
	assert.NotNil(t, resp["plan"])

	// Missing confirm flag arrives as an explicit false.
	assert.False(t, uc.gotConfirm)
}

func TestExecuteHandlerInvalidPlan(t *testing.T) {
	uc := &fakeExecuteUsecase{}
	r := setupExecuteRouter(uc)

	body := `{
		"plan": {
			"intent": "FORWARD_EMAILS",
			"params": {"query": "is:unread"},
			"explanation": "x",
			"risk": "LOW",
			"confidence": 0.5
		}
	}`
	w := postExecute(t, r, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_PLAN", resp["error"])
	assert.Equal(t, "intent", resp["field"])

	// The usecase is never reached with an invalid plan.
	assert.Nil(t, uc.gotPlan)
}

func TestExecuteHandlerMissingPlan(t *testing.T) {
	uc := &fakeExecuteUsecase{}
	r := setupExecuteRouter(uc)

	w := postExecute(t, r, `{"confirm": true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.gotPlan)
}

func TestExecuteHandlerExecutionFailure(t *testing.T) {
	uc := &fakeExecuteUsecase{
		err: &execdomain.ExecutionError{Stage: "trash messages", Err: assert.AnError},
	}
	r := setupExecuteRouter(uc)

	w := postExecute(t, r, validPlanBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EXECUTION_FAILED", resp["error"])
}
