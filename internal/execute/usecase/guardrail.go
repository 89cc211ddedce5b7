package usecase

import (
	"jarvis-backend/internal/execute/domain"
	plandomain "jarvis-backend/internal/plan/domain"
)

// ResolveCap clamps the plan's requested maxResults to [1, HardCap]. A plan
// that requests nothing gets the default cap. Both the guardrail and the
// executor compute this independently; the executor never trusts a cap
// computed elsewhere.
func ResolveCap(requested *int) int {
	limit := domain.DefaultCap
	if requested != nil {
		limit = *requested
	}
	if limit < 1 {
		limit = 1
	}
	if limit > domain.HardCap {
		limit = domain.HardCap
	}
	return limit
}

// RequiresConfirmation decides whether a plan may run without an explicit
// confirmation from the user. Pure function, no I/O.
//
// Single-target plans are exempt even at HIGH risk so that "delete this one
// email" completes without a second round-trip. Flagged for product review;
// preserved as designed.
func RequiresConfirmation(plan *plandomain.ActionPlan) bool {
	limit := ResolveCap(plan.Params.MaxResults)
	if limit <= 1 {
		return false
	}
	if plan.Intent == plandomain.IntentDeleteEmails {
		return true
	}
	return plan.Risk == plandomain.RiskHigh
}
