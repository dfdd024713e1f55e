package processor

import (
	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/notifications"
)

// ShareVariant handles ShareCreditLine broadcasts. The candidate carries the
// appetite and pricing the counterparty chose to disclose.
type ShareVariant struct{}

func (ShareVariant) MessageType() models.MessageType {
	return models.MessageTypeShareCreditLine
}

func (ShareVariant) PrepareAdditionalData(msg *models.CreditLineMessage) AdditionalData {
	if msg.Payload == nil || msg.Payload.Data == nil {
		return AdditionalData{}
	}
	appetite := msg.Payload.Data.Appetite
	return AdditionalData{
		Appetite: &appetite,
		Pricing:  msg.Payload.Data.Pricing,
	}
}

// SelectOperation reports a first-time disclosure when no visible record
// existed, or when appetite flips from absent to present. Anything else is
// an update to an already-disclosed position.
func (ShareVariant) SelectOperation(existing, candidate *models.DisclosedPosition) notifications.Operation {
	if existing == nil {
		return notifications.OperationDisclosed
	}
	if !existing.HasAppetite() && candidate.HasAppetite() {
		return notifications.OperationDisclosed
	}
	return notifications.OperationUpdateDisclosed
}
