// Package consumer adapts the Kafka record stream to the disclosure
// processors, deciding per record whether a failure is permanent (drop and
// commit) or transient (leave uncommitted for redelivery).
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/processor"
	"creditlines/internal/disclosure/ports"
	"creditlines/internal/disclosure/validation"
	platformconsumer "creditlines/internal/platform/kafka/consumer"
	dErrors "creditlines/pkg/domain-errors"
)

// TopicHandler decodes credit-line envelopes and dispatches them to the
// first processor that claims them.
type TopicHandler struct {
	processors []processor.EventProcessor
	logger     *slog.Logger
}

// NewTopicHandler builds the dispatch handler.
func NewTopicHandler(processors []processor.EventProcessor, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		processors: processors,
		logger:     logger,
	}
}

// Handle implements the consumer contract. A nil return commits the record;
// an error leaves it uncommitted for redelivery. Malformed and invalid
// messages can never succeed on retry, so they are logged and committed.
func (h *TopicHandler) Handle(ctx context.Context, msg *platformconsumer.Message) error {
	var envelope models.CreditLineMessage
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		h.logger.ErrorContext(ctx, "dropping undecodable message",
			"topic", msg.Topic,
			"offset", msg.Offset,
			"error", err,
		)
		return nil
	}

	for _, p := range h.processors {
		if !p.ShouldProcess(&envelope) {
			continue
		}
		err := p.ProcessMessage(ctx, &envelope)
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			h.logger.ErrorContext(ctx, "dropping invalid message",
				"topic", msg.Topic,
				"offset", msg.Offset,
				"message_type", envelope.MessageType,
				"error", err,
			)
			return nil
		}
		return err
	}

	h.logger.WarnContext(ctx, "no processor for message, skipping",
		"topic", msg.Topic,
		"offset", msg.Offset,
		"message_type", envelope.MessageType,
		"feature_type", envelope.FeatureType,
	)
	return nil
}

// isPermanent reports whether retrying the message can never help:
// validation failures, rejected disclosing parties, and anything coded as
// caller error.
func isPermanent(err error) bool {
	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	var invalidData *ports.InvalidDataError
	if errors.As(err, &invalidData) {
		return true
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return true
	}
	return false
}
