package models

import (
	"time"

	id "creditlines/pkg/domain"
)

// RequestStatus tracks the lifecycle of a disclosure request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusDisclosed RequestStatus = "Disclosed"
	RequestStatusDeclined  RequestStatus = "Declined"
)

// RequestDirection distinguishes requests we sent from requests we received.
type RequestDirection string

const (
	RequestRequested RequestDirection = "Requested"
	RequestReceived  RequestDirection = "Received"
)

// DisclosureRequest is a pending ask for a counterparty to disclose its
// deposit/loan terms for one natural-key tuple.
type DisclosureRequest struct {
	StaticID        id.StaticID      `json:"staticId"`
	CompanyStaticID id.StaticID      `json:"companyStaticId"`
	Type            DepositLoanType  `json:"type"`
	Currency        Currency         `json:"currency"`
	Period          Period           `json:"period"`
	PeriodDuration  int              `json:"periodDuration,omitempty"`
	Comment         string           `json:"comment,omitempty"`
	Direction       RequestDirection `json:"requestType"`
	Status          RequestStatus    `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
