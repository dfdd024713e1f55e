// Package disclosed persists the disclosed-position projection. Both
// implementations enforce the natural-key invariant and exclude soft-deleted
// records from every read path.
package disclosed

import (
	"context"
	"sort"
	"sync"
	"time"

	"creditlines/internal/disclosure/models"
	id "creditlines/pkg/domain"
	"creditlines/pkg/platform/sentinel"
)

// InMemoryStore is a mutex-guarded map store for unit tests and local
// development.
type InMemoryStore struct {
	mu        sync.RWMutex
	positions map[id.StaticID]models.DisclosedPosition
	clock     func() time.Time
}

// InMemoryOption configures an InMemoryStore.
type InMemoryOption func(*InMemoryStore)

// WithClock sets the clock function for testability.
func WithClock(clock func() time.Time) InMemoryOption {
	return func(s *InMemoryStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewInMemory creates an empty in-memory disclosed-position store.
func NewInMemory(opts ...InMemoryOption) *InMemoryStore {
	s := &InMemoryStore{
		positions: make(map[id.StaticID]models.DisclosedPosition),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create inserts a new active record, generating its staticId. A second
// active record for the same natural key fails with sentinel.ErrConflict.
func (s *InMemoryStore) Create(_ context.Context, position *models.DisclosedPosition) (id.StaticID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := position.NaturalKey()
	for _, existing := range s.positions {
		if existing.DeletedAt == nil && existing.NaturalKey() == key {
			return "", sentinel.ErrConflict
		}
	}

	now := s.clock()
	stored := *position
	stored.StaticID = id.NewStaticID()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.DeletedAt = nil
	s.positions[stored.StaticID] = stored

	return stored.StaticID, nil
}

// Update overwrites the active record matching StaticID, preserving its
// creation timestamp.
func (s *InMemoryStore) Update(_ context.Context, position *models.DisclosedPosition) (*models.DisclosedPosition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.positions[position.StaticID]
	if !ok || existing.DeletedAt != nil {
		return nil, sentinel.ErrNotFound
	}

	stored := *position
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.clock()
	stored.DeletedAt = nil
	s.positions[stored.StaticID] = stored

	result := stored
	return &result, nil
}

// Get returns the active record with the given staticId and type.
func (s *InMemoryStore) Get(_ context.Context, positionType models.DepositLoanType, staticID id.StaticID) (*models.DisclosedPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	existing, ok := s.positions[staticID]
	if !ok || existing.DeletedAt != nil || existing.Type != positionType {
		return nil, sentinel.ErrNotFound
	}
	result := existing
	return &result, nil
}

// FindOne resolves the natural key to the single active record.
func (s *InMemoryStore) FindOne(_ context.Context, positionType models.DepositLoanType, key models.NaturalKey) (*models.DisclosedPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key.Type = positionType
	for _, existing := range s.positions {
		if existing.DeletedAt == nil && existing.NaturalKey() == key {
			result := existing
			return &result, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// Find lists active records matching the filter, newest first.
func (s *InMemoryStore) Find(_ context.Context, positionType models.DepositLoanType, filter models.PositionFilter, opts models.FindOptions) ([]*models.DisclosedPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := s.collect(positionType, filter)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].UpdatedAt.After(matches[j].UpdatedAt)
	})

	if opts.Skip > 0 {
		if opts.Skip >= len(matches) {
			return nil, nil
		}
		matches = matches[opts.Skip:]
	}
	if opts.Limit > 0 && opts.Limit < len(matches) {
		matches = matches[:opts.Limit]
	}
	return matches, nil
}

// Count returns the number of active records matching the filter.
func (s *InMemoryStore) Count(_ context.Context, positionType models.DepositLoanType, filter models.PositionFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collect(positionType, filter)), nil
}

// Delete soft-deletes the active record with the given staticId.
func (s *InMemoryStore) Delete(_ context.Context, positionType models.DepositLoanType, staticID id.StaticID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.positions[staticID]
	if !ok || existing.DeletedAt != nil || existing.Type != positionType {
		return sentinel.ErrNotFound
	}
	now := s.clock()
	existing.DeletedAt = &now
	existing.UpdatedAt = now
	s.positions[staticID] = existing
	return nil
}

// DisclosedSummary aggregates active records by currency, period and
// duration: count of records with appetite, lowest pricing, most recent
// update.
func (s *InMemoryStore) DisclosedSummary(_ context.Context, positionType models.DepositLoanType, filter models.PositionFilter) ([]*models.DisclosedSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type group struct {
		currency models.Currency
		period   models.Period
		duration int
	}
	groups := map[group]*models.DisclosedSummary{}

	for _, position := range s.collect(positionType, filter) {
		g := group{position.Currency, position.Period, position.PeriodDuration}
		summary, ok := groups[g]
		if !ok {
			summary = &models.DisclosedSummary{
				Currency:       position.Currency,
				Period:         position.Period,
				PeriodDuration: position.PeriodDuration,
			}
			groups[g] = summary
		}
		if position.HasAppetite() {
			summary.AppetiteCount++
		}
		if position.Pricing != nil && (summary.LowestPricing == nil || *position.Pricing < *summary.LowestPricing) {
			pricing := *position.Pricing
			summary.LowestPricing = &pricing
		}
		if position.UpdatedAt.After(summary.LastUpdated) {
			summary.LastUpdated = position.UpdatedAt
		}
	}

	result := make([]*models.DisclosedSummary, 0, len(groups))
	for _, summary := range groups {
		result = append(result, summary)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Currency != result[j].Currency {
			return result[i].Currency < result[j].Currency
		}
		if result[i].Period != result[j].Period {
			return result[i].Period < result[j].Period
		}
		return result[i].PeriodDuration < result[j].PeriodDuration
	})
	return result, nil
}

func (s *InMemoryStore) collect(positionType models.DepositLoanType, filter models.PositionFilter) []*models.DisclosedPosition {
	var matches []*models.DisclosedPosition
	for _, existing := range s.positions {
		if existing.DeletedAt != nil || existing.Type != positionType {
			continue
		}
		if !filter.OwnerStaticID.IsEmpty() && existing.OwnerStaticID != filter.OwnerStaticID {
			continue
		}
		if filter.Currency != "" && existing.Currency != filter.Currency {
			continue
		}
		if filter.Period != "" && existing.Period != filter.Period {
			continue
		}
		result := existing
		matches = append(matches, &result)
	}
	return matches
}
