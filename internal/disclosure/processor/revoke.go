package processor

import (
	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/notifications"
)

// RevokeVariant handles RevokeCreditLine broadcasts. Revocation clears the
// previously shared appetite and pricing regardless of what, if anything,
// the payload carries.
type RevokeVariant struct{}

func (RevokeVariant) MessageType() models.MessageType {
	return models.MessageTypeRevokeCreditLine
}

func (RevokeVariant) PrepareAdditionalData(*models.CreditLineMessage) AdditionalData {
	return AdditionalData{}
}

func (RevokeVariant) SelectOperation(_, _ *models.DisclosedPosition) notifications.Operation {
	return notifications.OperationRevokeDisclosed
}
