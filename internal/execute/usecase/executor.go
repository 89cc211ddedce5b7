package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"jarvis-backend/internal/execute/domain"
	logsdomain "jarvis-backend/internal/logs/domain"
	plandomain "jarvis-backend/internal/plan/domain"
)

// executeUsecase implements ExecuteUsecase
type executeUsecase struct {
	gateway MailGateway
	audit   AuditRecorder
}

func NewExecuteUsecase(gateway MailGateway, audit AuditRecorder) ExecuteUsecase {
	return &executeUsecase{gateway: gateway, audit: audit}
}

func (u *executeUsecase) Execute(ctx context.Context, userID string, plan *plandomain.ActionPlan, message string, confirm, approved bool) (*domain.ExecutionResult, error) {
	entry := &logsdomain.ActionLog{
		UserID:     userID,
		Message:    message,
		Plan:       *plan,
		Approved:   approved,
		StartedAt:  time.Now(),
		MessageIDs: []string{},
		Sample:     []logsdomain.AuditSample{},
	}

	if RequiresConfirmation(plan) && !confirm {
		entry.Approved = false
		entry.Status = logsdomain.StatusFailed
		entry.ErrorMessage = domain.ErrConfirmationRequired.Error()
		u.finalize(entry)
		return nil, domain.ErrConfirmationRequired
	}

	limit := ResolveCap(plan.Params.MaxResults)

	token, err := u.gateway.GetAccessToken(ctx, userID)
	if err != nil {
		return nil, u.fail(entry, "credentials", err)
	}

	// QueryUsed records the exact query sent to the provider; attempts
	// that never reach the list call leave it empty.
	entry.QueryUsed = plan.Params.Query

	// The gateway is never asked for more than the cap; NewTargetSet
	// truncates again in case a provider returns extra results.
	ids, err := u.gateway.ListMessageIDs(ctx, token, plan.Params.Query, limit)
	if err != nil {
		return nil, u.fail(entry, "list messages", err)
	}

	targets := domain.NewTargetSet(ids, limit)
	entry.MessageIDs = targets.IDs()

	if targets.IsEmpty() {
		entry.Status = logsdomain.StatusSuccess
		u.finalize(entry)
		return &domain.ExecutionResult{
			Success:        true,
			Action:         plan.Intent,
			EmailsAffected: 0,
			Sample:         []plandomain.EmailSample{},
			Message:        "No emails found matching the query",
		}, nil
	}

	entry.Sample = u.fetchAuditSample(ctx, token, targets)

	switch plan.Intent {
	case plandomain.IntentDeleteEmails:
		if err := u.gateway.Trash(ctx, token, targets.IDs()); err != nil {
			return nil, u.fail(entry, "trash messages", err)
		}
		entry.Status = logsdomain.StatusSuccess
		entry.AffectedCount = targets.Len()
		u.finalize(entry)
		return &domain.ExecutionResult{
			Success:        true,
			Action:         plan.Intent,
			EmailsAffected: targets.Len(),
			Sample:         responseSample(entry.Sample),
			Message:        fmt.Sprintf("Successfully deleted %d email(s)", targets.Len()),
		}, nil

	case plandomain.IntentArchiveEmails, plandomain.IntentLabelEmails:
		return nil, u.fail(entry, "dispatch", &domain.NotImplementedError{Intent: plan.Intent})

	default:
		return nil, u.fail(entry, "dispatch", &domain.UnknownIntentError{Intent: plan.Intent})
	}
}

// fetchAuditSample fetches up to AuditSampleSize messages concurrently and
// reassembles them in TargetSet order. Individual fetch failures are
// skipped; the sample is informational and must not fail the execution.
func (u *executeUsecase) fetchAuditSample(ctx context.Context, token string, targets domain.TargetSet) []logsdomain.AuditSample {
	ids := targets.Head(logsdomain.AuditSampleSize)
	slots := make([]*logsdomain.AuditSample, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(logsdomain.AuditSampleSize)
	for i, id := range ids {
		g.Go(func() error {
			subject, from, date, snippet, err := u.gateway.GetMetadataWithSnippet(gctx, token, id)
			if err != nil {
				log.Printf("[Executor] skipping sample for message %s: %v", id, err)
				return nil
			}
			slots[i] = &logsdomain.AuditSample{
				ID:      id,
				Subject: subject,
				From:    from,
				Date:    date,
				Snippet: snippet,
			}
			return nil
		})
	}
	_ = g.Wait()

	sample := make([]logsdomain.AuditSample, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			sample = append(sample, *s)
		}
	}
	return sample
}

// responseSample reuses the leading audit samples for the caller-facing
// result; same selection order, snippet stripped.
func responseSample(audit []logsdomain.AuditSample) []plandomain.EmailSample {
	n := len(audit)
	if n > domain.ResponseSampleSize {
		n = domain.ResponseSampleSize
	}
	out := make([]plandomain.EmailSample, 0, n)
	for _, s := range audit[:n] {
		out = append(out, plandomain.EmailSample{Subject: s.Subject, From: s.From, Date: s.Date})
	}
	return out
}

func (u *executeUsecase) fail(entry *logsdomain.ActionLog, stage string, err error) error {
	entry.Status = logsdomain.StatusFailed
	entry.ErrorMessage = err.Error()
	u.finalize(entry)
	return &domain.ExecutionError{Stage: stage, Err: err}
}

// finalize is the single audit write point. A persistence failure must not
// mask or reverse the outcome of the execution itself.
func (u *executeUsecase) finalize(entry *logsdomain.ActionLog) {
	entry.FinishedAt = time.Now()
	entry.DurationMs = entry.FinishedAt.Sub(entry.StartedAt).Milliseconds()
	if err := u.audit.Record(entry); err != nil {
		log.Printf("[Executor] failed to record action log for user %s: %v", entry.UserID, err)
	}
}
