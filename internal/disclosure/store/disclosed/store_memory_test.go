package disclosed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"creditlines/internal/disclosure/models"
	id "creditlines/pkg/domain"
	"creditlines/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.store = NewInMemory(WithClock(func() time.Time { return s.now }))
}

func (s *InMemoryStoreSuite) newPosition(owner string, currency models.Currency, duration int, appetite bool, pricing float64) *models.DisclosedPosition {
	return &models.DisclosedPosition{
		OwnerStaticID:  id.StaticID(owner),
		Type:           models.TypeDeposit,
		Currency:       currency,
		Period:         models.PeriodMonths,
		PeriodDuration: duration,
		Appetite:       &appetite,
		Pricing:        &pricing,
	}
}

func (s *InMemoryStoreSuite) TestCreateAssignsStaticIDAndTimestamps() {
	ctx := context.Background()

	staticID, err := s.store.Create(ctx, s.newPosition("O1", models.CurrencyUSD, 3, true, 0.9))
	s.Require().NoError(err)
	s.False(staticID.IsEmpty())

	stored, err := s.store.Get(ctx, models.TypeDeposit, staticID)
	s.Require().NoError(err)
	s.Equal(s.now, stored.CreatedAt)
	s.Equal(s.now, stored.UpdatedAt)
}

func (s *InMemoryStoreSuite) TestCreateRejectsDuplicateNaturalKey() {
	ctx := context.Background()

	_, err := s.store.Create(ctx, s.newPosition("O1", models.CurrencyUSD, 3, true, 0.9))
	s.Require().NoError(err)

	_, err = s.store.Create(ctx, s.newPosition("O1", models.CurrencyUSD, 3, false, 1.2))
	s.ErrorIs(err, sentinel.ErrConflict)

	// Different duration is a different natural key.
	_, err = s.store.Create(ctx, s.newPosition("O1", models.CurrencyUSD, 6, true, 0.9))
	s.NoError(err)
}

func (s *InMemoryStoreSuite) TestFindOneResolvesNaturalKey() {
	ctx := context.Background()

	staticID, err := s.store.Create(ctx, s.newPosition("O1", models.CurrencyEUR, 6, true, 1.1))
	s.Require().NoError(err)

	found, err := s.store.FindOne(ctx, models.TypeDeposit, models.NaturalKey{
		OwnerStaticID:  "O1",
		Currency:       models.CurrencyEUR,
		Period:         models.PeriodMonths,
		PeriodDuration: 6,
	})
	s.Require().NoError(err)
	s.Equal(staticID, found.StaticID)

	_, err = s.store.FindOne(ctx, models.TypeLoan, models.NaturalKey{
		OwnerStaticID:  "O1",
		Currency:       models.CurrencyEUR,
		Period:         models.PeriodMonths,
		PeriodDuration: 6,
	})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestUpdatePreservesStaticIDAndCreatedAt() {
	ctx := context.Background()

	staticID, err := s.store.Create(ctx, s.newPosition("O1", models.CurrencyUSD, 3, true, 0.9))
	s.Require().NoError(err)
	createdAt := s.now

	s.now = s.now.Add(time.Hour)
	updated := s.newPosition("O1", models.CurrencyUSD, 3, false, 1.5)
	updated.StaticID = staticID

	result, err := s.store.Update(ctx, updated)
	s.Require().NoError(err)
	s.Equal(staticID, result.StaticID)
	s.Equal(createdAt, result.CreatedAt)
	s.Equal(s.now, result.UpdatedAt)
	s.False(result.HasAppetite())
}

func (s *InMemoryStoreSuite) TestUpdateUnknownStaticIDFails() {
	ctx := context.Background()

	missing := s.newPosition("O1", models.CurrencyUSD, 3, true, 0.9)
	missing.StaticID = "nope"

	_, err := s.store.Update(ctx, missing)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestSoftDeleteExcludesFromAllReadPaths() {
	ctx := context.Background()

	staticID, err := s.store.Create(ctx, s.newPosition("O1", models.CurrencyUSD, 3, true, 0.9))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Delete(ctx, models.TypeDeposit, staticID))

	_, err = s.store.Get(ctx, models.TypeDeposit, staticID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindOne(ctx, models.TypeDeposit, models.NaturalKey{
		OwnerStaticID:  "O1",
		Currency:       models.CurrencyUSD,
		Period:         models.PeriodMonths,
		PeriodDuration: 3,
	})
	s.ErrorIs(err, sentinel.ErrNotFound)

	positions, err := s.store.Find(ctx, models.TypeDeposit, models.PositionFilter{}, models.FindOptions{})
	s.Require().NoError(err)
	s.Empty(positions)

	summaries, err := s.store.DisclosedSummary(ctx, models.TypeDeposit, models.PositionFilter{})
	s.Require().NoError(err)
	s.Empty(summaries)

	// The natural key is free again: a new create succeeds.
	_, err = s.store.Create(ctx, s.newPosition("O1", models.CurrencyUSD, 3, true, 1.0))
	s.NoError(err)
}

func (s *InMemoryStoreSuite) TestDeleteTwiceFails() {
	ctx := context.Background()

	staticID, err := s.store.Create(ctx, s.newPosition("O1", models.CurrencyUSD, 3, true, 0.9))
	s.Require().NoError(err)

	s.Require().NoError(s.store.Delete(ctx, models.TypeDeposit, staticID))
	s.ErrorIs(s.store.Delete(ctx, models.TypeDeposit, staticID), sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestFindFiltersAndPaginates() {
	ctx := context.Background()

	durations := []int{1, 2, 3}
	for i, owner := range []string{"O1", "O2", "O3"} {
		s.now = s.now.Add(time.Minute)
		_, err := s.store.Create(ctx, s.newPosition(owner, models.CurrencyUSD, durations[i], true, 0.9))
		s.Require().NoError(err)
	}

	all, err := s.store.Find(ctx, models.TypeDeposit, models.PositionFilter{Currency: models.CurrencyUSD}, models.FindOptions{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.True(all[0].UpdatedAt.After(all[2].UpdatedAt), "newest first")

	page, err := s.store.Find(ctx, models.TypeDeposit, models.PositionFilter{}, models.FindOptions{Skip: 1, Limit: 1})
	s.Require().NoError(err)
	s.Len(page, 1)

	byOwner, err := s.store.Find(ctx, models.TypeDeposit, models.PositionFilter{OwnerStaticID: "O2"}, models.FindOptions{})
	s.Require().NoError(err)
	s.Len(byOwner, 1)

	count, err := s.store.Count(ctx, models.TypeDeposit, models.PositionFilter{})
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *InMemoryStoreSuite) TestDisclosedSummaryAggregates() {
	ctx := context.Background()

	// Two owners with appetite on the same USD 3-months tuple, one without,
	// plus an unrelated EUR overnight position.
	_, err := s.store.Create(ctx, s.newPosition("O1", models.CurrencyUSD, 3, true, 0.9))
	s.Require().NoError(err)

	s.now = s.now.Add(time.Hour)
	_, err = s.store.Create(ctx, s.newPosition("O2", models.CurrencyUSD, 3, true, 0.7))
	s.Require().NoError(err)

	_, err = s.store.Create(ctx, s.newPosition("O3", models.CurrencyUSD, 3, false, 1.4))
	s.Require().NoError(err)

	overnight := s.newPosition("O1", models.CurrencyEUR, 0, true, 0.5)
	overnight.Period = models.PeriodOvernight
	_, err = s.store.Create(ctx, overnight)
	s.Require().NoError(err)

	summaries, err := s.store.DisclosedSummary(ctx, models.TypeDeposit, models.PositionFilter{})
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)

	eur, usd := summaries[0], summaries[1]
	s.Equal(models.CurrencyEUR, eur.Currency)
	s.Equal(1, eur.AppetiteCount)

	s.Equal(models.CurrencyUSD, usd.Currency)
	s.Equal(models.PeriodMonths, usd.Period)
	s.Equal(3, usd.PeriodDuration)
	s.Equal(2, usd.AppetiteCount, "withdrawn appetite does not count")
	s.Require().NotNil(usd.LowestPricing)
	s.Equal(0.7, *usd.LowestPricing)
	s.Equal(s.now, usd.LastUpdated)
}
