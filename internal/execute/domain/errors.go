package domain

import (
	"errors"
	"fmt"

	plandomain "jarvis-backend/internal/plan/domain"
)

// ErrConfirmationRequired is the expected control-flow outcome when a plan
// needs an explicit confirmation that the caller did not supply. The
// blocked attempt is audited like any other before this is returned.
var ErrConfirmationRequired = errors.New("CONFIRMATION_REQUIRED")

// NotImplementedError marks intents that are deliberately unsupported.
type NotImplementedError struct {
	Intent plandomain.Intent
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s is not implemented; only DELETE_EMAILS is supported", e.Intent)
}

// UnknownIntentError marks intents outside the known enumeration. The
// validator prevents these on the normal path; this guards the dispatch.
type UnknownIntentError struct {
	Intent plandomain.Intent
}

func (e *UnknownIntentError) Error() string {
	return fmt.Sprintf("unknown intent: %s", e.Intent)
}

// ExecutionError wraps any failure during execution with the stage it
// occurred in. Every ExecutionError has a matching FAILED audit record.
type ExecutionError struct {
	Stage string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to execute plan (%s): %v", e.Stage, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
