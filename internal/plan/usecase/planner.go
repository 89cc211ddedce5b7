package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"regexp"
	"strings"

	"jarvis-backend/internal/plan/domain"
	"jarvis-backend/pkg/llm"
)

const (
	// estimateListLimit bounds how many ids one enrichment lists when
	// refreshing the impact estimate. Well inside the schema's [0,1000].
	estimateListLimit = 100

	// latestScanSize is how many inbox heads are considered when picking
	// "the latest email" past the sender denylist.
	latestScanSize = 5

	latestInboxQuery = "is:inbox"
)

// planUsecase implements PlanUsecase
type planUsecase struct {
	provider llm.Provider
	gateway  MailGateway
	denylist []string
}

func NewPlanUsecase(provider llm.Provider, gateway MailGateway, senderDenylist []string) PlanUsecase {
	return &planUsecase{
		provider: provider,
		gateway:  gateway,
		denylist: senderDenylist,
	}
}

func (u *planUsecase) GeneratePlan(ctx context.Context, userID, message string) (*domain.ActionPlan, error) {
	raw, err := u.provider.Complete(ctx, systemPrompt, buildUserPrompt(message))
	if err != nil {
		return nil, &domain.PlanGenerationError{Kind: kindForProviderError(err), Err: err}
	}

	payload, err := extractJSON(raw)
	if err != nil {
		return nil, &domain.PlanGenerationError{Kind: domain.KindGeneric, Err: err}
	}

	plan, err := domain.ValidateActionPlan(payload)
	if err != nil {
		return nil, &domain.PlanGenerationError{Kind: domain.KindGeneric, Err: err}
	}

	// Best effort only. A degraded plan with model estimates beats a
	// failed planning call, so enrichment never propagates errors.
	u.enrich(ctx, userID, message, plan)

	return plan, nil
}

func kindForProviderError(err error) domain.PlanGenerationErrorKind {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return domain.KindConfiguration
	case errors.Is(err, llm.ErrQuotaExceeded):
		return domain.KindQuota
	default:
		return domain.KindGeneric
	}
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

// extractJSON accepts either a bare JSON object or one wrapped in a fenced
// code block, which models emit despite instructions not to.
func extractJSON(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}
	if m := fencedJSON.FindStringSubmatch(raw); m != nil && json.Valid([]byte(m[1])) {
		return []byte(m[1]), nil
	}
	return nil, errors.New("no JSON object found in model response")
}

// enrich replaces the model's estimated impact with real mailbox data.
// Only estimatedImpact is touched; params stay exactly as planned so the
// surfaced sample can never drift from the execution target.
func (u *planUsecase) enrich(ctx context.Context, userID, message string, plan *domain.ActionPlan) {
	token, err := u.gateway.GetAccessToken(ctx, userID)
	if err != nil {
		log.Printf("[Planner] skipping enrichment for user %s: %v", userID, err)
		return
	}

	if isLatestRequest(message) {
		u.enrichLatest(ctx, token, plan)
		return
	}

	ids, err := u.gateway.ListMessageIDs(ctx, token, plan.Params.Query, estimateListLimit)
	if err != nil {
		log.Printf("[Planner] skipping enrichment, list failed: %v", err)
		return
	}

	sampleSize := len(ids)
	if sampleSize > 3 {
		sampleSize = 3
	}
	sample := make([]domain.EmailSample, 0, sampleSize)
	for _, id := range ids[:sampleSize] {
		subject, from, date, err := u.gateway.GetMetadata(ctx, token, id)
		if err != nil {
			log.Printf("[Planner] skipping sample for message %s: %v", id, err)
			continue
		}
		sample = append(sample, domain.EmailSample{Subject: subject, From: from, Date: date})
	}

	plan.EstimatedImpact.Count = len(ids)
	plan.EstimatedImpact.Sample = sample
}

// enrichLatest answers "what is my latest email" with the newest inbox
// message whose sender is not on the denylist. If the denylist would
// filter everything, the single most recent message is kept regardless.
func (u *planUsecase) enrichLatest(ctx context.Context, token string, plan *domain.ActionPlan) {
	ids, err := u.gateway.ListMessageIDs(ctx, token, latestInboxQuery, latestScanSize)
	if err != nil {
		log.Printf("[Planner] skipping latest enrichment, list failed: %v", err)
		return
	}
	if len(ids) == 0 {
		plan.EstimatedImpact.Count = 0
		plan.EstimatedImpact.Sample = []domain.EmailSample{}
		return
	}

	var candidates []domain.EmailSample
	for _, id := range ids {
		subject, from, date, err := u.gateway.GetMetadata(ctx, token, id)
		if err != nil {
			log.Printf("[Planner] skipping candidate %s: %v", id, err)
			continue
		}
		candidates = append(candidates, domain.EmailSample{Subject: subject, From: from, Date: date})
	}
	if len(candidates) == 0 {
		return
	}

	pick := candidates[0]
	for _, c := range candidates {
		if !u.isDenylisted(c.From) {
			pick = c
			break
		}
	}

	plan.EstimatedImpact.Count = 1
	plan.EstimatedImpact.Sample = []domain.EmailSample{pick}
}

func (u *planUsecase) isDenylisted(from string) bool {
	lowered := strings.ToLower(from)
	for _, entry := range u.denylist {
		if strings.Contains(lowered, strings.ToLower(entry)) {
			return true
		}
	}
	return false
}

var latestMarkers = []string{"latest", "newest", "most recent"}

func isLatestRequest(message string) bool {
	lowered := strings.ToLower(message)
	for _, marker := range latestMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
