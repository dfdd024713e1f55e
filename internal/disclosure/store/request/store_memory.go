// Package request persists pending disclosure requests: asks sent to (or
// received from) counterparties for deposit/loan terms on one natural-key
// tuple.
package request

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
	mu       sync.RWMutex
	requests map[id.StaticID]models.DisclosureRequest
	clock    func() time.Time
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

// NewInMemory creates an empty in-memory request store.
func NewInMemory(opts ...InMemoryOption) *InMemoryStore {
	s := &InMemoryStore{
		requests: make(map[id.StaticID]models.DisclosureRequest),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create inserts a new request, generating its staticId.
func (s *InMemoryStore) Create(_ context.Context, request *models.DisclosureRequest) (id.StaticID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	stored := *request
	stored.StaticID = id.NewStaticID()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.requests[stored.StaticID] = stored
	return stored.StaticID, nil
}

// Update overwrites the request matching StaticID.
func (s *InMemoryStore) Update(_ context.Context, request *models.DisclosureRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.requests[request.StaticID]
	if !ok {
		return sentinel.ErrNotFound
	}
	stored := *request
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.clock()
	s.requests[stored.StaticID] = stored
	return nil
}

// FindPending resolves the pending request for one counterparty and tuple.
func (s *InMemoryStore) FindPending(_ context.Context, positionType models.DepositLoanType, companyStaticID id.StaticID, currency models.Currency, period models.Period, periodDuration int, direction models.RequestDirection) (*models.DisclosureRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.requests {
		if existing.Status != models.RequestStatusPending || existing.Direction != direction {
			continue
		}
		if existing.Type != positionType || existing.CompanyStaticID != companyStaticID {
			continue
		}
		if existing.Currency != currency || existing.Period != period || existing.PeriodDuration != periodDuration {
			continue
		}
		result := existing
		return &result, nil
	}
	return nil, sentinel.ErrNotFound
}

// FindAllPending lists every pending request for a tuple, any counterparty.
func (s *InMemoryStore) FindAllPending(_ context.Context, positionType models.DepositLoanType, currency models.Currency, period models.Period, periodDuration int) ([]*models.DisclosureRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*models.DisclosureRequest
	for _, existing := range s.requests {
		if existing.Status != models.RequestStatusPending || existing.Type != positionType {
			continue
		}
		if existing.Currency != currency || existing.Period != period || existing.PeriodDuration != periodDuration {
			continue
		}
		result := existing
		matches = append(matches, &result)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return matches, nil
}
