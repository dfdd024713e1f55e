//go:build integration

package request_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/store/request"
	id "creditlines/pkg/domain"
	"creditlines/pkg/platform/sentinel"
	"creditlines/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *request.PostgresStore
	ctx      context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T(), request.Schema)
	s.store = request.NewPostgres(s.postgres.DB)
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "disclosure_requests"))
}

func testRequest(company string, direction models.RequestDirection) *models.DisclosureRequest {
	return &models.DisclosureRequest{
		CompanyStaticID: id.StaticID(company),
		Type:            models.TypeLoan,
		Currency:        models.CurrencyEUR,
		Period:          models.PeriodWeeks,
		PeriodDuration:  1,
		Comment:         "please disclose",
		Direction:       direction,
		Status:          models.RequestStatusPending,
	}
}

func (s *PostgresStoreSuite) TestCreateAndFindPending() {
	req := testRequest("bank-001", models.RequestRequested)
	staticID, err := s.store.Create(s.ctx, req)
	s.Require().NoError(err)

	found, err := s.store.FindPending(s.ctx, models.TypeLoan, "bank-001", models.CurrencyEUR, models.PeriodWeeks, 1, models.RequestRequested)
	s.Require().NoError(err)
	s.Equal(staticID, found.StaticID)
	s.Equal("please disclose", found.Comment)
}

func (s *PostgresStoreSuite) TestClosedRequestLeavesPendingView() {
	req := testRequest("bank-001", models.RequestRequested)
	staticID, err := s.store.Create(s.ctx, req)
	s.Require().NoError(err)

	req.StaticID = staticID
	req.Status = models.RequestStatusDeclined
	s.Require().NoError(s.store.Update(s.ctx, req))

	_, err = s.store.FindPending(s.ctx, models.TypeLoan, "bank-001", models.CurrencyEUR, models.PeriodWeeks, 1, models.RequestRequested)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUpdateUnknownFails() {
	req := testRequest("bank-001", models.RequestRequested)
	req.StaticID = id.NewStaticID()

	s.ErrorIs(s.store.Update(s.ctx, req), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestFindAllPendingSpansCounterparties() {
	_, err := s.store.Create(s.ctx, testRequest("bank-001", models.RequestReceived))
	s.Require().NoError(err)
	_, err = s.store.Create(s.ctx, testRequest("bank-002", models.RequestRequested))
	s.Require().NoError(err)

	other := testRequest("bank-003", models.RequestReceived)
	other.Currency = models.CurrencyUSD
	_, err = s.store.Create(s.ctx, other)
	s.Require().NoError(err)

	pending, err := s.store.FindAllPending(s.ctx, models.TypeLoan, models.CurrencyEUR, models.PeriodWeeks, 1)
	s.Require().NoError(err)
	s.Len(pending, 2)
}
