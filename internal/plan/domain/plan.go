package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Intent is the action a plan performs against the mailbox.
type Intent string

const (
	IntentDeleteEmails  Intent = "DELETE_EMAILS"
	IntentArchiveEmails Intent = "ARCHIVE_EMAILS"
	IntentLabelEmails   Intent = "LABEL_EMAILS"
)

// RiskLevel is the model's assessment of how destructive a plan is.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// EmailSample is one representative message shown to the user.
type EmailSample struct {
	Subject string `json:"subject"`
	From    string `json:"from"`
	Date    string `json:"date"`
}

// EstimatedImpact is the plan's blast-radius estimate. The count and sample
// start out model-generated and may be replaced with real data during
// enrichment; they are never authoritative for execution.
type EstimatedImpact struct {
	Count  int           `json:"count" validate:"min=0,max=1000"`
	Sample []EmailSample `json:"sample" validate:"max=3"`
}

// PlanParams holds the Gmail search side of a plan.
type PlanParams struct {
	Query      string `json:"query" validate:"required"`
	LabelName  string `json:"labelName,omitempty"`
	MaxResults *int   `json:"maxResults,omitempty"`
}

// ActionPlan is the structured, validated description of an intended bulk
// mailbox mutation. Instances reach the rest of the system only through
// ValidateActionPlan.
type ActionPlan struct {
	Intent          Intent          `json:"intent" validate:"required,oneof=DELETE_EMAILS ARCHIVE_EMAILS LABEL_EMAILS"`
	Params          PlanParams      `json:"params"`
	EstimatedImpact EstimatedImpact `json:"estimatedImpact"`
	Explanation     string          `json:"explanation" validate:"required"`
	Risk            RiskLevel       `json:"risk" validate:"required,oneof=LOW MEDIUM HIGH"`
	Confidence      float64         `json:"confidence" validate:"min=0,max=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under their wire names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateActionPlan is the single gate between free-form model output and
// the rest of the system. It rejects unknown fields, missing required
// fields and out-of-range values, naming the violated field. The only
// coercion applied is whitespace trimming of strings.
func ValidateActionPlan(raw []byte) (*ActionPlan, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var plan ActionPlan
	if err := dec.Decode(&plan); err != nil {
		return nil, &SchemaError{Field: "plan", Reason: err.Error()}
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate trims string fields and checks the plan against the schema.
func (p *ActionPlan) Validate() error {
	p.Params.Query = strings.TrimSpace(p.Params.Query)
	p.Params.LabelName = strings.TrimSpace(p.Params.LabelName)
	p.Explanation = strings.TrimSpace(p.Explanation)

	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return schemaErrorFrom(verrs[0])
		}
		return &SchemaError{Field: "plan", Reason: err.Error()}
	}
	return nil
}

func schemaErrorFrom(fe validator.FieldError) *SchemaError {
	// Namespace looks like "ActionPlan.estimatedImpact.count"; drop the
	// struct prefix so errors read like the wire format.
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	reason := "failed rule " + fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "oneof":
		reason = "must be one of " + fe.Param()
	case "min":
		reason = "must be >= " + fe.Param()
	case "max":
		reason = "must be <= " + fe.Param()
	}
	return &SchemaError{Field: field, Reason: reason}
}
