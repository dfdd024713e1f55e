package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"creditlines/internal/disclosure/mocks"
	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/validation"
	id "creditlines/pkg/domain"
	dErrors "creditlines/pkg/domain-errors"
	"creditlines/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *mocks.MockPositionStore
	service *Service
	ctx     context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockPositionStore(s.ctrl)
	s.service = New(s.store)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func validSave() models.SavePosition {
	appetite := true
	pricing := 1.1
	return models.SavePosition{
		OwnerStaticID:  "member-self",
		Currency:       models.CurrencyUSD,
		Period:         models.PeriodMonths,
		PeriodDuration: 6,
		Appetite:       &appetite,
		Pricing:        &pricing,
	}
}

func (s *ServiceSuite) TestCreateStoresValidatedPosition() {
	s.store.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, position *models.DisclosedPosition) (id.StaticID, error) {
			s.Equal(models.TypeDeposit, position.Type)
			s.Equal(models.CurrencyUSD, position.Currency)
			return id.StaticID("pos-1"), nil
		})

	staticID, err := s.service.Create(s.ctx, models.TypeDeposit, validSave())

	s.NoError(err)
	s.Equal(id.StaticID("pos-1"), staticID)
}

func (s *ServiceSuite) TestCreateRejectsIncoherentTuple() {
	save := validSave()
	save.Period = models.PeriodWeeks
	save.PeriodDuration = 2

	_, err := s.service.Create(s.ctx, models.TypeDeposit, save)

	var vErr *validation.ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Contains(vErr.Fields, "periodDuration")
}

func (s *ServiceSuite) TestCreateTranslatesConflict() {
	s.store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id.StaticID(""), sentinel.ErrConflict)

	_, err := s.service.Create(s.ctx, models.TypeDeposit, validSave())

	s.Equal(dErrors.CodeConflict, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestUpdateTranslatesNotFound() {
	s.store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Update(s.ctx, models.TypeDeposit, "missing", validSave())

	s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestGetTranslatesNotFound() {
	s.store.EXPECT().Get(gomock.Any(), models.TypeLoan, id.StaticID("missing")).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Get(s.ctx, models.TypeLoan, "missing")

	s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestDeleteTranslatesNotFound() {
	s.store.EXPECT().Delete(gomock.Any(), models.TypeLoan, id.StaticID("missing")).Return(sentinel.ErrNotFound)

	err := s.service.Delete(s.ctx, models.TypeLoan, "missing")

	s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestFindWrapsStoreFailure() {
	s.store.EXPECT().
		Find(gomock.Any(), models.TypeDeposit, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := s.service.Find(s.ctx, models.TypeDeposit, models.PositionFilter{}, models.FindOptions{})

	s.Equal(dErrors.CodeInternal, dErrors.CodeOf(err))
}

func (s *ServiceSuite) TestSummaryPassesThrough() {
	pricing := 0.5
	s.store.EXPECT().
		DisclosedSummary(gomock.Any(), models.TypeDeposit, models.PositionFilter{Currency: models.CurrencyUSD}).
		Return([]*models.DisclosedSummary{{
			Currency:      models.CurrencyUSD,
			Period:        models.PeriodOvernight,
			AppetiteCount: 2,
			LowestPricing: &pricing,
		}}, nil)

	summaries, err := s.service.Summary(s.ctx, models.TypeDeposit, models.PositionFilter{Currency: models.CurrencyUSD})

	s.NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(2, summaries[0].AppetiteCount)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
