// Package notifications derives permission-scoped notifications from
// reconciliation outcomes. The free-text message is for humans; the context
// object is the machine-readable signal downstream consumers route on.
package notifications

import (
	"creditlines/internal/disclosure/models"
	id "creditlines/pkg/domain"
)

// Operation labels the semantic change a notification describes.
type Operation string

const (
	OperationDisclosed       Operation = "Disclosed"
	OperationUpdateDisclosed Operation = "UpdateDisclosed"
	OperationRevokeDisclosed Operation = "RevokeDisclosed"
	OperationDeclineRequest  Operation = "DeclineRequest"
)

// ProductID identifies the credit-lines product in notification routing.
const ProductID = "tradeFinance"

// NotificationType is the notification category consumed by the notification
// service.
const NotificationType = "CL.DepositLoan.info"

// Read actions gating who receives a notification, per position type.
const (
	ActionReadDeposit = "readDeposit"
	ActionReadLoan    = "readLoan"
)

// RequiredPermission scopes delivery to appropriately-permissioned viewers.
type RequiredPermission struct {
	ProductID string `json:"productId"`
	ActionID  string `json:"actionId"`
}

// Context is the structured, machine-readable payload of a notification.
type Context struct {
	OwnerStaticID  id.StaticID            `json:"ownerStaticId"`
	Type           models.DepositLoanType `json:"type"`
	Currency       models.Currency        `json:"currency"`
	Period         models.Period          `json:"period"`
	PeriodDuration int                    `json:"periodDuration,omitempty"`
	Operation      Operation              `json:"operation"`
}

// Notification is the outbound payload handed to the notification sender.
type Notification struct {
	ProductID          string             `json:"productId"`
	Type               string             `json:"type"`
	RequiredPermission RequiredPermission `json:"requiredPermission"`
	Context            Context            `json:"context"`
	Message            string             `json:"message"`
	Level              string             `json:"level"`
}
