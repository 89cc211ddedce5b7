package dto

import "encoding/json"

// ExecuteRequest carries a previously generated plan back for execution.
// The plan is kept raw here; the schema validator is the only component
// allowed to construct an ActionPlan from wire bytes.
type ExecuteRequest struct {
	Plan     json.RawMessage `json:"plan" binding:"required"`
	Confirm  *bool           `json:"confirm,omitempty"`
	Message  string          `json:"message,omitempty"`
	Approved *bool           `json:"approved,omitempty"`
}

// Confirmed is true only for an explicit affirmative confirmation.
func (r *ExecuteRequest) Confirmed() bool {
	return r.Confirm != nil && *r.Confirm
}

// IsApproved defaults to true when the flag is absent.
func (r *ExecuteRequest) IsApproved() bool {
	return r.Approved == nil || *r.Approved
}
