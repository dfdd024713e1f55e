// Package ports declares the collaborator interfaces consumed by the
// disclosure pipeline. Stores return sentinel errors for infrastructure
// facts; services translate them into coded domain errors.
package ports

//go:generate mockgen -source=ports.go -destination=../mocks/mocks.go -package=mocks

import (
	"context"

	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/notifications"
	id "creditlines/pkg/domain"
)

// PositionStore persists the disclosed-position projection. Every read path
// excludes soft-deleted records; Create enforces natural-key uniqueness and
// returns sentinel.ErrConflict on a duplicate active tuple.
type PositionStore interface {
	Create(ctx context.Context, position *models.DisclosedPosition) (id.StaticID, error)
	// Update overwrites the active record matching StaticID, returning the
	// stored state; sentinel.ErrNotFound when no active record matches.
	Update(ctx context.Context, position *models.DisclosedPosition) (*models.DisclosedPosition, error)
	Get(ctx context.Context, positionType models.DepositLoanType, staticID id.StaticID) (*models.DisclosedPosition, error)
	// FindOne resolves the natural key to the single active record, or
	// sentinel.ErrNotFound.
	FindOne(ctx context.Context, positionType models.DepositLoanType, key models.NaturalKey) (*models.DisclosedPosition, error)
	Find(ctx context.Context, positionType models.DepositLoanType, filter models.PositionFilter, opts models.FindOptions) ([]*models.DisclosedPosition, error)
	Count(ctx context.Context, positionType models.DepositLoanType, filter models.PositionFilter) (int, error)
	// Delete soft-deletes; the record stays in storage but leaves every read
	// path.
	Delete(ctx context.Context, positionType models.DepositLoanType, staticID id.StaticID) error
	DisclosedSummary(ctx context.Context, positionType models.DepositLoanType, filter models.PositionFilter) ([]*models.DisclosedSummary, error)
}

// RequestStore persists pending disclosure requests.
type RequestStore interface {
	Create(ctx context.Context, request *models.DisclosureRequest) (id.StaticID, error)
	Update(ctx context.Context, request *models.DisclosureRequest) error
	// FindPending resolves the pending request for one counterparty and
	// natural-key tuple, or sentinel.ErrNotFound.
	FindPending(ctx context.Context, positionType models.DepositLoanType, companyStaticID id.StaticID, currency models.Currency, period models.Period, periodDuration int, direction models.RequestDirection) (*models.DisclosureRequest, error)
	FindAllPending(ctx context.Context, positionType models.DepositLoanType, currency models.Currency, period models.Period, periodDuration int) ([]*models.DisclosureRequest, error)
}

// Company is a member-registry record for a counterparty.
type Company struct {
	StaticID               id.StaticID
	Name                   string
	IsFinancialInstitution bool
}

// CompanyRegistry resolves counterparties against the member registry.
type CompanyRegistry interface {
	GetCompany(ctx context.Context, staticID id.StaticID) (*Company, error)
	// ValidateFinancialInstitution resolves the company and fails with an
	// InvalidDataError when it is unknown or not a financial institution.
	ValidateFinancialInstitution(ctx context.Context, staticID id.StaticID) (*Company, error)
}

// NotificationSender delivers notifications to the notification service.
type NotificationSender interface {
	Send(ctx context.Context, notification *notifications.Notification) error
}

// RequestClient publishes outbound credit-line messages to counterparties.
type RequestClient interface {
	SendCommonRequest(ctx context.Context, messageType models.MessageType, recipientStaticID id.StaticID, message *models.CreditLineMessage) error
}

// InvalidDataError marks an owner-authorization rejection: the disclosing
// counterparty is unknown or not a financial institution. Never retried.
type InvalidDataError struct {
	Message string
}

func (e *InvalidDataError) Error() string {
	return e.Message
}
