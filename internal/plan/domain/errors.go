package domain

import "fmt"

// SchemaError reports a malformed action plan, naming the violated field.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid action plan: %s %s", e.Field, e.Reason)
}

// PlanGenerationErrorKind distinguishes failure classes for user messaging.
type PlanGenerationErrorKind string

const (
	// KindConfiguration covers missing or rejected LLM credentials.
	KindConfiguration PlanGenerationErrorKind = "configuration"
	// KindQuota covers provider rate limits and exhausted quotas.
	KindQuota PlanGenerationErrorKind = "quota"
	// KindGeneric covers everything else: transport failures, unparseable
	// responses, schema violations.
	KindGeneric PlanGenerationErrorKind = "generic"
)

// PlanGenerationError is fatal to a planning call. Every failure on the
// path from user message to validated plan surfaces as one of these.
type PlanGenerationError struct {
	Kind PlanGenerationErrorKind
	Err  error
}

func (e *PlanGenerationError) Error() string {
	return fmt.Sprintf("failed to generate action plan (%s): %v", e.Kind, e.Err)
}

func (e *PlanGenerationError) Unwrap() error { return e.Err }
