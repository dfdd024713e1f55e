package processor

import (
	"context"

	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/requests"
	"creditlines/internal/disclosure/validation"
	dErrors "creditlines/pkg/domain-errors"
)

// DeclineProcessor routes CreditLineRequestDeclined messages to the request
// service. Declines touch the request ledger, not the disclosed-position
// projection, so they bypass the reconciliation algorithm.
type DeclineProcessor struct {
	requests *requests.Service
}

// NewDeclineProcessor wires the decline route.
func NewDeclineProcessor(service *requests.Service) *DeclineProcessor {
	return &DeclineProcessor{requests: service}
}

func (p *DeclineProcessor) ShouldProcess(msg *models.CreditLineMessage) bool {
	return msg.MessageType == models.MessageTypeCreditLineRequestDeclined && msg.FeatureType.IsDepositLoan()
}

func (p *DeclineProcessor) ProcessMessage(ctx context.Context, msg *models.CreditLineMessage) error {
	if msg.Payload == nil {
		return dErrors.New(dErrors.CodeBadRequest, "message payload is required")
	}
	payload := msg.Payload

	if err := validation.ValidateCoherence(validation.CoherenceInput{
		Type:           payload.Type,
		Currency:       payload.Currency,
		Period:         payload.Period,
		PeriodDuration: payload.PeriodDuration,
	}); err != nil {
		return err
	}

	return p.requests.RequestDeclined(ctx, msg.OwnerStaticID, payload.Type, payload.Currency, payload.Period, payload.PeriodDuration)
}
