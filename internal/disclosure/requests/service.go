// Package requests manages the lifecycle of disclosure requests: asks we
// send to counterparties for their deposit/loan terms, and asks we receive.
package requests

import (
	"context"
	"errors"
	"log/slog"

	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/notifications"
	"creditlines/internal/disclosure/ports"
	id "creditlines/pkg/domain"
	dErrors "creditlines/pkg/domain-errors"
	"creditlines/pkg/platform/sentinel"
)

// SaveRequest captures one outbound ask across several counterparties.
type SaveRequest struct {
	Currency         models.Currency `json:"currency"`
	Period           models.Period   `json:"period"`
	PeriodDuration   int             `json:"periodDuration,omitempty"`
	Comment          string          `json:"comment,omitempty"`
	CompanyStaticIDs []id.StaticID   `json:"companyIds"`
}

// Service coordinates the request store, the member registry and outbound
// messaging.
type Service struct {
	store         ports.RequestStore
	registry      ports.CompanyRegistry
	factory       *notifications.Factory
	sender        ports.NotificationSender
	requestClient ports.RequestClient
	companyID     id.StaticID
	logger        *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs the request service. companyID identifies this member on
// outbound messages.
func New(store ports.RequestStore, registry ports.CompanyRegistry, factory *notifications.Factory, sender ports.NotificationSender, requestClient ports.RequestClient, companyID id.StaticID, opts ...Option) *Service {
	s := &Service{
		store:         store,
		registry:      registry,
		factory:       factory,
		sender:        sender,
		requestClient: requestClient,
		companyID:     companyID,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRequests sends a CreditLineRequest message to each counterparty and
// records a pending outbound request per recipient. Returns the static IDs
// of the stored requests.
func (s *Service) CreateRequests(ctx context.Context, positionType models.DepositLoanType, req SaveRequest) ([]id.StaticID, error) {
	if len(req.CompanyStaticIDs) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "at least one company is required")
	}

	staticIDs := make([]id.StaticID, 0, len(req.CompanyStaticIDs))
	for _, companyID := range req.CompanyStaticIDs {
		if _, err := s.registry.ValidateFinancialInstitution(ctx, companyID); err != nil {
			return nil, err
		}

		staticID, err := s.store.Create(ctx, &models.DisclosureRequest{
			CompanyStaticID: companyID,
			Type:            positionType,
			Currency:        req.Currency,
			Period:          req.Period,
			PeriodDuration:  req.PeriodDuration,
			Comment:         req.Comment,
			Direction:       models.RequestRequested,
			Status:          models.RequestStatusPending,
		})
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store disclosure request")
		}

		message := s.buildMessage(models.MessageTypeCreditLineRequest, companyID, positionType, req.Currency, req.Period, req.PeriodDuration, req.Comment)
		if err := s.requestClient.SendCommonRequest(ctx, models.MessageTypeCreditLineRequest, companyID, message); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to send disclosure request")
		}
		staticIDs = append(staticIDs, staticID)
	}
	return staticIDs, nil
}

// RequestDeclined handles an inbound decline of a request we previously
// sent: the pending request is closed and a notification tells the viewer
// which counterparty declined. An unmatched decline is logged and dropped.
func (s *Service) RequestDeclined(ctx context.Context, companyStaticID id.StaticID, positionType models.DepositLoanType, currency models.Currency, period models.Period, periodDuration int) error {
	pending, err := s.store.FindPending(ctx, positionType, companyStaticID, currency, period, periodDuration, models.RequestRequested)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "decline received without a matching pending request",
				"company_static_id", companyStaticID,
				"type", positionType,
				"currency", currency,
			)
			return nil
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up pending request")
	}

	pending.Status = models.RequestStatusDeclined
	if err := s.store.Update(ctx, pending); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to close pending request")
	}

	company, err := s.registry.GetCompany(ctx, companyStaticID)
	if err != nil {
		return err
	}

	carrier := &models.DisclosedPosition{
		OwnerStaticID:  companyStaticID,
		Type:           positionType,
		Currency:       currency,
		Period:         period,
		PeriodDuration: periodDuration,
	}
	notification := s.factory.GetNotification(notifications.OperationDeclineRequest, carrier, company.Name)
	if err := s.sender.Send(ctx, notification); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to send notification")
	}
	return nil
}

// CloseAllPendingRequests marks every received pending request for the given
// tuple with the outcome status and, when declining, tells each requester.
// Returns the static IDs of the requests it closed.
func (s *Service) CloseAllPendingRequests(ctx context.Context, positionType models.DepositLoanType, currency models.Currency, period models.Period, periodDuration int, outcome models.RequestStatus) ([]id.StaticID, error) {
	pending, err := s.store.FindAllPending(ctx, positionType, currency, period, periodDuration)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pending requests")
	}

	closed := make([]id.StaticID, 0, len(pending))
	for _, req := range pending {
		if req.Direction != models.RequestReceived {
			continue
		}
		req.Status = outcome
		if err := s.store.Update(ctx, req); err != nil {
			return closed, dErrors.Wrap(err, dErrors.CodeInternal, "failed to close pending request")
		}
		if outcome == models.RequestStatusDeclined {
			message := s.buildMessage(models.MessageTypeCreditLineRequestDeclined, req.CompanyStaticID, positionType, currency, period, periodDuration, "")
			if err := s.requestClient.SendCommonRequest(ctx, models.MessageTypeCreditLineRequestDeclined, req.CompanyStaticID, message); err != nil {
				return closed, dErrors.Wrap(err, dErrors.CodeInternal, "failed to notify requester")
			}
		}
		closed = append(closed, req.StaticID)
	}
	return closed, nil
}

func (s *Service) buildMessage(messageType models.MessageType, recipient id.StaticID, positionType models.DepositLoanType, currency models.Currency, period models.Period, periodDuration int, comment string) *models.CreditLineMessage {
	return &models.CreditLineMessage{
		Version:           1,
		MessageType:       messageType,
		OwnerStaticID:     s.companyID,
		RecipientStaticID: recipient,
		FeatureType:       models.FeatureOf(positionType),
		Payload: &models.DepositLoanPayload{
			Type:           positionType,
			Currency:       currency,
			Period:         period,
			PeriodDuration: periodDuration,
			Comment:        comment,
		},
	}
}
