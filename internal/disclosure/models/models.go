// Package models holds the deposit/loan disclosure domain types shared by the
// stores, processors and transports. Keep it free of I/O so every layer can
// depend on it.
package models

import (
	"time"

	id "creditlines/pkg/domain"
)

// DepositLoanType discriminates the two disclosure products.
type DepositLoanType string

const (
	TypeDeposit DepositLoanType = "Deposit"
	TypeLoan    DepositLoanType = "Loan"
)

var validTypes = map[DepositLoanType]bool{
	TypeDeposit: true,
	TypeLoan:    true,
}

// IsValid checks the type against the supported enum values.
func (t DepositLoanType) IsValid() bool {
	return validTypes[t]
}

// Currency is an ISO currency supported for disclosures.
type Currency string

const (
	CurrencyCHF Currency = "CHF"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyUSD Currency = "USD"
)

var validCurrencies = map[Currency]bool{
	CurrencyCHF: true,
	CurrencyEUR: true,
	CurrencyGBP: true,
	CurrencyJPY: true,
	CurrencyUSD: true,
}

// IsValid checks the currency against the supported set.
func (c Currency) IsValid() bool {
	return validCurrencies[c]
}

// Period is the tenor bucket of a deposit/loan position.
type Period string

const (
	PeriodOvernight Period = "Overnight"
	PeriodWeeks     Period = "Weeks"
	PeriodMonths    Period = "Months"
)

var validPeriods = map[Period]bool{
	PeriodOvernight: true,
	PeriodWeeks:     true,
	PeriodMonths:    true,
}

// IsValid checks the period against the supported enum values.
func (p Period) IsValid() bool {
	return validPeriods[p]
}

// MonthsDurations is the fixed set of tenors allowed when period is Months.
var MonthsDurations = map[int]bool{1: true, 2: true, 3: true, 6: true, 12: true}

// DisclosedPosition is the reconciled projection of a counterparty's
// currently-known deposit/loan risk appetite terms.
type DisclosedPosition struct {
	StaticID       id.StaticID     `json:"staticId"`
	OwnerStaticID  id.StaticID     `json:"ownerStaticId"`
	Type           DepositLoanType `json:"type"`
	Currency       Currency        `json:"currency"`
	Period         Period          `json:"period"`
	PeriodDuration int             `json:"periodDuration,omitempty"`
	Appetite       *bool           `json:"appetite,omitempty"`
	Pricing        *float64        `json:"pricing,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	// DeletedAt marks the record logically deleted. Read paths filter on it;
	// it never leaves the store layer.
	DeletedAt *time.Time `json:"-"`
}

// NaturalKey identifies at most one active disclosed position.
type NaturalKey struct {
	OwnerStaticID  id.StaticID
	Type           DepositLoanType
	Currency       Currency
	Period         Period
	PeriodDuration int
}

// NaturalKey returns the position's identifying tuple.
func (p *DisclosedPosition) NaturalKey() NaturalKey {
	return NaturalKey{
		OwnerStaticID:  p.OwnerStaticID,
		Type:           p.Type,
		Currency:       p.Currency,
		Period:         p.Period,
		PeriodDuration: p.PeriodDuration,
	}
}

// HasAppetite reports whether the counterparty currently declares appetite.
// An absent appetite counts as withdrawn.
func (p *DisclosedPosition) HasAppetite() bool {
	return p != nil && p.Appetite != nil && *p.Appetite
}

// DisclosedSummary is one row of the aggregate view over active disclosed
// positions, grouped by currency, period and duration.
type DisclosedSummary struct {
	Currency       Currency  `json:"currency"`
	Period         Period    `json:"period"`
	PeriodDuration int       `json:"periodDuration,omitempty"`
	AppetiteCount  int       `json:"appetiteCount"`
	LowestPricing  *float64  `json:"lowestPricing,omitempty"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// PositionFilter narrows Find and DisclosedSummary queries. Zero values mean
// "any"; soft-deleted records are always excluded regardless of the filter.
type PositionFilter struct {
	OwnerStaticID id.StaticID
	Currency      Currency
	Period        Period
}

// FindOptions carries pagination for list queries.
type FindOptions struct {
	Skip  int
	Limit int
}

// SavePosition is the complete authenticated save shape accepted by the
// own-position service; it passes through full validation before touching the
// store.
type SavePosition struct {
	OwnerStaticID  id.StaticID     `json:"ownerStaticId"`
	Type           DepositLoanType `json:"type"`
	Currency       Currency        `json:"currency"`
	Period         Period          `json:"period"`
	PeriodDuration int             `json:"periodDuration,omitempty"`
	Appetite       *bool           `json:"appetite,omitempty"`
	Pricing        *float64        `json:"pricing,omitempty"`
}
