package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/processor"
	"creditlines/internal/disclosure/ports"
	"creditlines/internal/disclosure/validation"
	platformconsumer "creditlines/internal/platform/kafka/consumer"
	dErrors "creditlines/pkg/domain-errors"
)

type stubProcessor struct {
	messageType models.MessageType
	err         error
	calls       int
}

func (p *stubProcessor) ShouldProcess(msg *models.CreditLineMessage) bool {
	return msg.MessageType == p.messageType && msg.FeatureType.IsDepositLoan()
}

func (p *stubProcessor) ProcessMessage(context.Context, *models.CreditLineMessage) error {
	p.calls++
	return p.err
}

type TopicHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *TopicHandlerSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *TopicHandlerSuite) record(msg *models.CreditLineMessage) *platformconsumer.Message {
	value, err := json.Marshal(msg)
	s.Require().NoError(err)
	return &platformconsumer.Message{Topic: "creditlines.inbound", Value: value}
}

func (s *TopicHandlerSuite) newHandler(processors ...processor.EventProcessor) *TopicHandler {
	return NewTopicHandler(processors, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *TopicHandlerSuite) TestDispatchesToMatchingProcessor() {
	share := &stubProcessor{messageType: models.MessageTypeShareCreditLine}
	revoke := &stubProcessor{messageType: models.MessageTypeRevokeCreditLine}
	h := s.newHandler(share, revoke)

	err := h.Handle(s.ctx, s.record(&models.CreditLineMessage{
		MessageType: models.MessageTypeRevokeCreditLine,
		FeatureType: models.FeatureLoan,
	}))

	s.NoError(err)
	s.Equal(0, share.calls)
	s.Equal(1, revoke.calls)
}

func (s *TopicHandlerSuite) TestMalformedJSONCommitted() {
	share := &stubProcessor{messageType: models.MessageTypeShareCreditLine}
	h := s.newHandler(share)

	err := h.Handle(s.ctx, &platformconsumer.Message{Value: []byte("{not json")})

	s.NoError(err)
	s.Equal(0, share.calls)
}

func (s *TopicHandlerSuite) TestUnsupportedMessageCommitted() {
	share := &stubProcessor{messageType: models.MessageTypeShareCreditLine}
	h := s.newHandler(share)

	err := h.Handle(s.ctx, s.record(&models.CreditLineMessage{
		MessageType: models.MessageTypeShareCreditLine,
		FeatureType: models.FeatureBankLine,
	}))

	s.NoError(err)
	s.Equal(0, share.calls)
}

func (s *TopicHandlerSuite) TestValidationFailureCommitted() {
	share := &stubProcessor{
		messageType: models.MessageTypeShareCreditLine,
		err:         &validation.ValidationError{Type: models.TypeDeposit, Fields: map[string][]string{"currency": {"bad"}}},
	}
	h := s.newHandler(share)

	err := h.Handle(s.ctx, s.record(&models.CreditLineMessage{
		MessageType: models.MessageTypeShareCreditLine,
		FeatureType: models.FeatureDeposit,
	}))

	s.NoError(err)
	s.Equal(1, share.calls)
}

func (s *TopicHandlerSuite) TestRejectedOwnerCommitted() {
	share := &stubProcessor{
		messageType: models.MessageTypeShareCreditLine,
		err:         &ports.InvalidDataError{Message: "not a financial institution"},
	}
	h := s.newHandler(share)

	s.NoError(h.Handle(s.ctx, s.record(&models.CreditLineMessage{
		MessageType: models.MessageTypeShareCreditLine,
		FeatureType: models.FeatureDeposit,
	})))
}

func (s *TopicHandlerSuite) TestBadRequestCodeCommitted() {
	share := &stubProcessor{
		messageType: models.MessageTypeShareCreditLine,
		err:         dErrors.New(dErrors.CodeBadRequest, "message payload is required"),
	}
	h := s.newHandler(share)

	s.NoError(h.Handle(s.ctx, s.record(&models.CreditLineMessage{
		MessageType: models.MessageTypeShareCreditLine,
		FeatureType: models.FeatureDeposit,
	})))
}

func (s *TopicHandlerSuite) TestTransientFailureLeftUncommitted() {
	share := &stubProcessor{
		messageType: models.MessageTypeShareCreditLine,
		err:         errors.New("connection reset"),
	}
	h := s.newHandler(share)

	err := h.Handle(s.ctx, s.record(&models.CreditLineMessage{
		MessageType: models.MessageTypeShareCreditLine,
		FeatureType: models.FeatureDeposit,
	}))

	s.Error(err)
}

func (s *TopicHandlerSuite) TestWrappedInternalFailureLeftUncommitted() {
	share := &stubProcessor{
		messageType: models.MessageTypeShareCreditLine,
		err:         dErrors.Wrap(errors.New("timeout"), dErrors.CodeInternal, "failed to update disclosed position"),
	}
	h := s.newHandler(share)

	s.Error(h.Handle(s.ctx, s.record(&models.CreditLineMessage{
		MessageType: models.MessageTypeShareCreditLine,
		FeatureType: models.FeatureDeposit,
	})))
}

func TestTopicHandlerSuite(t *testing.T) {
	suite.Run(t, new(TopicHandlerSuite))
}
