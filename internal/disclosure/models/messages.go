package models

import (
	id "creditlines/pkg/domain"
)

// MessageType discriminates inbound credit-line broadcasts.
type MessageType string

const (
	MessageTypeShareCreditLine           MessageType = "ShareCreditLine"
	MessageTypeRevokeCreditLine          MessageType = "RevokeCreditLine"
	MessageTypeCreditLineRequest         MessageType = "CreditLineRequest"
	MessageTypeCreditLineRequestDeclined MessageType = "CreditLineRequestDeclined"
)

// FeatureType routes a broadcast to a feature pipeline. Only Deposit and
// Loan are handled here; BankLine and RiskCover belong to other services.
type FeatureType string

const (
	FeatureDeposit   FeatureType = "Deposit"
	FeatureLoan      FeatureType = "Loan"
	FeatureBankLine  FeatureType = "BankLine"
	FeatureRiskCover FeatureType = "RiskCover"
)

// IsDepositLoan reports whether the feature belongs to this pipeline.
func (f FeatureType) IsDepositLoan() bool {
	return f == FeatureDeposit || f == FeatureLoan
}

// FeatureOf maps a deposit/loan type onto its feature routing value.
func FeatureOf(t DepositLoanType) FeatureType {
	if t == TypeLoan {
		return FeatureLoan
	}
	return FeatureDeposit
}

// CreditLineMessage is the inbound broadcast envelope.
//
// The recepientStaticId tag preserves the historical misspelling on the wire
// contract; renaming it would break every peer on the network.
type CreditLineMessage struct {
	Version           int                 `json:"version"`
	MessageType       MessageType         `json:"messageType"`
	OwnerStaticID     id.StaticID         `json:"ownerStaticId"`
	RecipientStaticID id.StaticID         `json:"recepientStaticId"`
	FeatureType       FeatureType         `json:"featureType"`
	Payload           *DepositLoanPayload `json:"payload,omitempty"`
}

// DepositLoanPayload carries the disclosed terms of a broadcast.
type DepositLoanPayload struct {
	Type           DepositLoanType  `json:"type"`
	Currency       Currency         `json:"currency"`
	Period         Period           `json:"period"`
	PeriodDuration int              `json:"periodDuration,omitempty"`
	Comment        string           `json:"comment,omitempty"`
	Data           *DepositLoanData `json:"data,omitempty"`
}

// DepositLoanData is the optional appetite/pricing sub-object of a share
// broadcast. Revokes ignore it.
type DepositLoanData struct {
	Appetite bool     `json:"appetite"`
	Pricing  *float64 `json:"pricing,omitempty"`
}
