// Package processor reconciles inbound credit-line broadcasts against the
// disclosed-position projection.
//
// The reconciliation algorithm is shared; what varies per message type is
// how the candidate's appetite/pricing fields are derived and which
// operation the resulting notification carries. Variants supply exactly
// those two policies.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"creditlines/internal/disclosure/metrics"
	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/notifications"
	"creditlines/internal/disclosure/ports"
	"creditlines/internal/disclosure/validation"
	dErrors "creditlines/pkg/domain-errors"
	"creditlines/pkg/platform/sentinel"
)

// EventProcessor is the shape the consumer dispatch loop routes on.
type EventProcessor interface {
	ShouldProcess(msg *models.CreditLineMessage) bool
	ProcessMessage(ctx context.Context, msg *models.CreditLineMessage) error
}

// AdditionalData is the variant-specific slice of a candidate position.
type AdditionalData struct {
	Appetite *bool
	Pricing  *float64
}

// Variant captures the policy differences between disclosure message types.
type Variant interface {
	MessageType() models.MessageType
	PrepareAdditionalData(msg *models.CreditLineMessage) AdditionalData
	SelectOperation(existing, candidate *models.DisclosedPosition) notifications.Operation
}

// Processor runs the shared reconciliation algorithm for one variant.
type Processor struct {
	variant  Variant
	store    ports.PositionStore
	registry ports.CompanyRegistry
	factory  *notifications.Factory
	sender   ports.NotificationSender
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithMetrics attaches pipeline metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Processor) {
		p.metrics = m
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// New constructs a processor for the given variant.
func New(variant Variant, store ports.PositionStore, registry ports.CompanyRegistry, factory *notifications.Factory, sender ports.NotificationSender, opts ...Option) (*Processor, error) {
	if variant == nil {
		return nil, fmt.Errorf("processor variant is required")
	}
	if store == nil {
		return nil, fmt.Errorf("position store is required")
	}
	if registry == nil {
		return nil, fmt.Errorf("company registry is required")
	}
	if factory == nil {
		return nil, fmt.Errorf("notification factory is required")
	}
	if sender == nil {
		return nil, fmt.Errorf("notification sender is required")
	}

	p := &Processor{
		variant:  variant,
		store:    store,
		registry: registry,
		factory:  factory,
		sender:   sender,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// MessageType returns the fixed message type this processor accepts.
func (p *Processor) MessageType() models.MessageType {
	return p.variant.MessageType()
}

// ShouldProcess is a pure, side-effect-free filter: exact message type match
// and a deposit/loan feature. Everything else belongs to another pipeline.
func (p *Processor) ShouldProcess(msg *models.CreditLineMessage) bool {
	return msg.MessageType == p.variant.MessageType() && msg.FeatureType.IsDepositLoan()
}

// ProcessMessage validates, authorizes and reconciles one broadcast, then
// emits the notification describing the semantic change. Failures are logged
// with context and returned; retry policy belongs to the caller.
func (p *Processor) ProcessMessage(ctx context.Context, msg *models.CreditLineMessage) error {
	start := time.Now()
	err := p.process(ctx, msg)
	if err != nil {
		p.metrics.RecordMessage(string(msg.MessageType), "failure", time.Since(start))
		p.logger.ErrorContext(ctx, "credit line message processing failed",
			"message_type", msg.MessageType,
			"owner_static_id", msg.OwnerStaticID,
			"feature_type", msg.FeatureType,
			"error", err,
		)
		return err
	}
	p.metrics.RecordMessage(string(msg.MessageType), "success", time.Since(start))
	return nil
}

func (p *Processor) process(ctx context.Context, msg *models.CreditLineMessage) error {
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

	owner, err := p.registry.ValidateFinancialInstitution(ctx, msg.OwnerStaticID)
	if err != nil {
		return err
	}

	additional := p.variant.PrepareAdditionalData(msg)
	candidate := &models.DisclosedPosition{
		OwnerStaticID:  msg.OwnerStaticID,
		Type:           payload.Type,
		Currency:       payload.Currency,
		Period:         payload.Period,
		PeriodDuration: payload.PeriodDuration,
		Appetite:       additional.Appetite,
		Pricing:        additional.Pricing,
	}

	existing, err := p.store.FindOne(ctx, payload.Type, candidate.NaturalKey())
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up disclosed position")
	}

	if existing != nil {
		candidate.StaticID = existing.StaticID
		stored, err := p.store.Update(ctx, candidate)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update disclosed position")
		}
		candidate = stored
		p.logger.InfoContext(ctx, "disclosed position updated",
			"static_id", candidate.StaticID,
			"owner_static_id", candidate.OwnerStaticID,
			"type", candidate.Type,
		)
	} else {
		staticID, err := p.store.Create(ctx, candidate)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create disclosed position")
		}
		candidate.StaticID = staticID
		p.logger.InfoContext(ctx, "disclosed position created",
			"static_id", candidate.StaticID,
			"owner_static_id", candidate.OwnerStaticID,
			"type", candidate.Type,
		)
	}

	operation := p.variant.SelectOperation(existing, candidate)
	notification := p.factory.GetNotification(operation, candidate, owner.Name)
	if err := p.sender.Send(ctx, notification); err != nil {
		// Reconciled state stays committed; only the notification is lost.
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to send notification")
	}
	p.metrics.RecordNotification()
	return nil
}
