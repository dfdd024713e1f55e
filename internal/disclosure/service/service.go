// Package service exposes the disclosed-position projection to the HTTP read
// side and manages this member's own positions.
package service

import (
	"context"
	"errors"
	"log/slog"

	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/ports"
	"creditlines/internal/disclosure/requests"
	"creditlines/internal/disclosure/validation"
	id "creditlines/pkg/domain"
	dErrors "creditlines/pkg/domain-errors"
	"creditlines/pkg/platform/sentinel"
)

// Service wraps the position store with domain-error translation.
type Service struct {
	store    ports.PositionStore
	requests *requests.Service
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRequestService attaches the request service so saving a position can
// settle pending disclosure requests for the same tuple.
func WithRequestService(r *requests.Service) Option {
	return func(s *Service) {
		s.requests = r
	}
}

// New constructs the position service.
func New(store ports.PositionStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and stores a new position. A visible position with the
// same natural key already existing is a conflict.
func (s *Service) Create(ctx context.Context, positionType models.DepositLoanType, save models.SavePosition) (id.StaticID, error) {
	save.Type = positionType
	if err := validation.ValidateFull(save); err != nil {
		return "", err
	}

	position := &models.DisclosedPosition{
		OwnerStaticID:  save.OwnerStaticID,
		Type:           positionType,
		Currency:       save.Currency,
		Period:         save.Period,
		PeriodDuration: save.PeriodDuration,
		Appetite:       save.Appetite,
		Pricing:        save.Pricing,
	}

	staticID, err := s.store.Create(ctx, position)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return "", dErrors.New(dErrors.CodeConflict, "a position with these terms already exists")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to create position")
	}

	s.settleRequests(ctx, position)
	return staticID, nil
}

// Update validates and overwrites an existing position.
func (s *Service) Update(ctx context.Context, positionType models.DepositLoanType, staticID id.StaticID, save models.SavePosition) (*models.DisclosedPosition, error) {
	save.Type = positionType
	if err := validation.ValidateFull(save); err != nil {
		return nil, err
	}

	position := &models.DisclosedPosition{
		StaticID:       staticID,
		OwnerStaticID:  save.OwnerStaticID,
		Type:           positionType,
		Currency:       save.Currency,
		Period:         save.Period,
		PeriodDuration: save.PeriodDuration,
		Appetite:       save.Appetite,
		Pricing:        save.Pricing,
	}

	stored, err := s.store.Update(ctx, position)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "position not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update position")
	}

	s.settleRequests(ctx, stored)
	return stored, nil
}

// Get resolves one position by static ID.
func (s *Service) Get(ctx context.Context, positionType models.DepositLoanType, staticID id.StaticID) (*models.DisclosedPosition, error) {
	position, err := s.store.Get(ctx, positionType, staticID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "position not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load position")
	}
	return position, nil
}

// Find lists visible positions matching the filter.
func (s *Service) Find(ctx context.Context, positionType models.DepositLoanType, filter models.PositionFilter, opts models.FindOptions) ([]*models.DisclosedPosition, error) {
	positions, err := s.store.Find(ctx, positionType, filter, opts)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list positions")
	}
	return positions, nil
}

// Count reports how many visible positions match the filter.
func (s *Service) Count(ctx context.Context, positionType models.DepositLoanType, filter models.PositionFilter) (int, error) {
	count, err := s.store.Count(ctx, positionType, filter)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count positions")
	}
	return count, nil
}

// Delete soft-deletes a position, freeing its natural key for reuse.
func (s *Service) Delete(ctx context.Context, positionType models.DepositLoanType, staticID id.StaticID) error {
	if err := s.store.Delete(ctx, positionType, staticID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "position not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete position")
	}
	return nil
}

// Summary aggregates visible positions per natural-key tuple.
func (s *Service) Summary(ctx context.Context, positionType models.DepositLoanType, filter models.PositionFilter) ([]*models.DisclosedSummary, error) {
	summaries, err := s.store.DisclosedSummary(ctx, positionType, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build summary")
	}
	return summaries, nil
}

// settleRequests closes received pending requests for the saved tuple. A
// failure here never fails the save; the requests stay pending for a later
// pass.
func (s *Service) settleRequests(ctx context.Context, position *models.DisclosedPosition) {
	if s.requests == nil {
		return
	}
	_, err := s.requests.CloseAllPendingRequests(ctx, position.Type, position.Currency, position.Period, position.PeriodDuration, models.RequestStatusDisclosed)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to settle pending requests",
			"type", position.Type,
			"currency", position.Currency,
			"error", err,
		)
	}
}
