// Package outbound publishes the pipeline's outgoing traffic: notifications
// for this member's users and credit-line messages to counterparties.
package outbound

import (
	"context"

	"creditlines/internal/disclosure/models"
	"creditlines/internal/disclosure/notifications"
	"creditlines/internal/platform/kafka/producer"
	id "creditlines/pkg/domain"
)

// NotificationPublisher sends notifications to the notification topic,
// keyed by owner so per-counterparty ordering is preserved.
type NotificationPublisher struct {
	producer *producer.Producer
	topic    string
}

// NewNotificationPublisher builds a publisher for the given topic.
func NewNotificationPublisher(p *producer.Producer, topic string) *NotificationPublisher {
	return &NotificationPublisher{producer: p, topic: topic}
}

func (p *NotificationPublisher) Send(ctx context.Context, notification *notifications.Notification) error {
	return p.producer.Publish(ctx, p.topic, []byte(notification.Context.OwnerStaticID), notification)
}

// RequestPublisher sends credit-line messages to counterparties via the
// requests topic, keyed by recipient.
type RequestPublisher struct {
	producer *producer.Producer
	topic    string
}

// NewRequestPublisher builds a publisher for the given topic.
func NewRequestPublisher(p *producer.Producer, topic string) *RequestPublisher {
	return &RequestPublisher{producer: p, topic: topic}
}

func (p *RequestPublisher) SendCommonRequest(ctx context.Context, messageType models.MessageType, recipientStaticID id.StaticID, message *models.CreditLineMessage) error {
	message.MessageType = messageType
	message.RecipientStaticID = recipientStaticID
	return p.producer.Publish(ctx, p.topic, []byte(recipientStaticID), message)
}
