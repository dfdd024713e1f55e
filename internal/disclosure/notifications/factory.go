package notifications

import (
	"fmt"

	"creditlines/internal/disclosure/models"
)

// messageBuilder renders the human-readable text for one (operation, type)
// pair.
type messageBuilder func(position *models.DisclosedPosition, partyName string) string

type strategyKey struct {
	operation Operation
	position  models.DepositLoanType
}

// Factory maps (operation, position type) onto notification builders.
type Factory struct {
	strategies map[strategyKey]messageBuilder
}

// NewFactory builds the strategy table and verifies it is exhaustive over
// every operation and position type, so a gap is caught at wiring time
// rather than on the first unlucky message.
func NewFactory() *Factory {
	added := func(position *models.DisclosedPosition, partyName string) string {
		return fmt.Sprintf("%s has added %s information on %s %s",
			partyName, position.Type, position.Currency, periodDescription(position.Period, position.PeriodDuration))
	}
	// A revoke is presented to the viewer as an update of disclosed terms,
	// not a deletion, so both operations share the update wording.
	updated := func(position *models.DisclosedPosition, partyName string) string {
		return fmt.Sprintf("%s has updated %s information on %s %s",
			partyName, position.Type, position.Currency, periodDescription(position.Period, position.PeriodDuration))
	}
	declined := func(position *models.DisclosedPosition, partyName string) string {
		return fmt.Sprintf("%s has declined the request for %s information on %s %s",
			partyName, position.Type, position.Currency, periodDescription(position.Period, position.PeriodDuration))
	}

	f := &Factory{strategies: map[strategyKey]messageBuilder{}}
	for _, t := range []models.DepositLoanType{models.TypeDeposit, models.TypeLoan} {
		f.strategies[strategyKey{OperationDisclosed, t}] = added
		f.strategies[strategyKey{OperationUpdateDisclosed, t}] = updated
		f.strategies[strategyKey{OperationRevokeDisclosed, t}] = updated
		f.strategies[strategyKey{OperationDeclineRequest, t}] = declined
	}

	for _, op := range []Operation{OperationDisclosed, OperationUpdateDisclosed, OperationRevokeDisclosed, OperationDeclineRequest} {
		for _, t := range []models.DepositLoanType{models.TypeDeposit, models.TypeLoan} {
			if _, ok := f.strategies[strategyKey{op, t}]; !ok {
				panic(fmt.Sprintf("notification strategy missing for %s/%s", op, t))
			}
		}
	}
	return f
}

// GetNotification resolves the strategy for (operation, position type) and
// builds the notification. A missing strategy is a programming error and
// panics.
func (f *Factory) GetNotification(operation Operation, position *models.DisclosedPosition, disclosingPartyName string) *Notification {
	build, ok := f.strategies[strategyKey{operation, position.Type}]
	if !ok {
		panic(fmt.Sprintf("no notification strategy for %s/%s", operation, position.Type))
	}

	action := ActionReadDeposit
	if position.Type == models.TypeLoan {
		action = ActionReadLoan
	}

	return &Notification{
		ProductID: ProductID,
		Type:      NotificationType,
		RequiredPermission: RequiredPermission{
			ProductID: ProductID,
			ActionID:  action,
		},
		Context: Context{
			OwnerStaticID:  position.OwnerStaticID,
			Type:           position.Type,
			Currency:       position.Currency,
			Period:         position.Period,
			PeriodDuration: position.PeriodDuration,
			Operation:      operation,
		},
		Message: build(position, disclosingPartyName),
		Level:   "info",
	}
}

// periodDescription renders the tenor for customer-facing text.
func periodDescription(period models.Period, duration int) string {
	switch period {
	case models.PeriodOvernight:
		return "overnight"
	case models.PeriodWeeks:
		if duration == 1 {
			return "1 week"
		}
		return fmt.Sprintf("%d weeks", duration)
	case models.PeriodMonths:
		if duration == 1 {
			return "1 month"
		}
		return fmt.Sprintf("%d months", duration)
	default:
		return string(period)
	}
}
