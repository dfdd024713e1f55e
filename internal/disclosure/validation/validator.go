// Package validation implements the rule checks shared by the two trust
// boundaries that accept deposit/loan terms: the authenticated save request
// (full structural validation) and the lighter inbound broadcast payload
// (coherence only).
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"creditlines/internal/disclosure/models"
)

// ValidationError carries a per-field message map. A field can accumulate
// multiple messages; callers render them grouped by field name.
type ValidationError struct {
	Type   models.DepositLoanType
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s format.", e.Type)
}

// FieldSummary renders the accumulated violations for logging.
func (e *ValidationError) FieldSummary() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}
	return strings.Join(parts, ", ")
}

// CoherenceInput is the subset of fields checked against the shared
// currency/period/duration rules.
type CoherenceInput struct {
	Type           models.DepositLoanType
	Currency       models.Currency
	Period         models.Period
	PeriodDuration int
}

// ValidateCoherence checks currency, period and period/duration coherence,
// accumulating every violation before failing. The duration rules are
// evaluated independently of period membership, so a payload with a bad
// period still reports its duration problems.
func ValidateCoherence(in CoherenceInput) error {
	fields := map[string][]string{}

	if !in.Currency.IsValid() {
		addField(fields, "currency", fmt.Sprintf("currency %q is not supported", in.Currency))
	}
	if !in.Period.IsValid() {
		addField(fields, "period", fmt.Sprintf("period %q is not supported", in.Period))
	}

	switch in.Period {
	case models.PeriodOvernight:
		if in.PeriodDuration != 0 {
			addField(fields, "periodDuration", "periodDuration must be empty for overnight positions")
		}
	case models.PeriodMonths:
		if !models.MonthsDurations[in.PeriodDuration] {
			addField(fields, "periodDuration", "periodDuration must be one of 1, 2, 3, 6 or 12 months")
		}
	case models.PeriodWeeks:
		if in.PeriodDuration != 1 {
			addField(fields, "periodDuration", "periodDuration must be 1 week")
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Type: in.Type, Fields: fields}
	}
	return nil
}

// ValidateFull runs structural checks for a complete save request plus the
// shared coherence rules, reporting everything in one error.
func ValidateFull(candidate models.SavePosition) error {
	fields := map[string][]string{}

	if candidate.OwnerStaticID.IsEmpty() {
		addField(fields, "ownerStaticId", "ownerStaticId is required")
	}
	if !candidate.Type.IsValid() {
		addField(fields, "type", fmt.Sprintf("type %q is not supported", candidate.Type))
	}
	if candidate.PeriodDuration < 0 {
		addField(fields, "periodDuration", "periodDuration cannot be negative")
	}
	if candidate.Pricing != nil && *candidate.Pricing < 0 {
		addField(fields, "pricing", "pricing cannot be negative")
	}

	err := ValidateCoherence(CoherenceInput{
		Type:           candidate.Type,
		Currency:       candidate.Currency,
		Period:         candidate.Period,
		PeriodDuration: candidate.PeriodDuration,
	})
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		for field, messages := range vErr.Fields {
			fields[field] = append(fields[field], messages...)
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Type: candidate.Type, Fields: fields}
	}
	return nil
}

func addField(fields map[string][]string, field, message string) {
	fields[field] = append(fields[field], message)
}
