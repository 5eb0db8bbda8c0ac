package notify

import (
	"context"

	"github.com/tair/storefront/internal/shop/domain"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
)

// KafkaNotifier forwards shop events to the shop-events topic so other
// surfaces (or a toast relay) can react to them. Publish failures are
// logged and dropped; the mutation has already happened.
type KafkaNotifier struct {
	publisher *kafka.Publisher
}

// NewKafkaNotifier creates a Kafka-backed notifier
func NewKafkaNotifier(publisher *kafka.Publisher) *KafkaNotifier {
	return &KafkaNotifier{publisher: publisher}
}

func (n *KafkaNotifier) Notify(ctx context.Context, event domain.Event) {
	err := n.publisher.PublishShopEvent(ctx, kafka.ShopEvent{
		EventType:   string(event.Type),
		SessionID:   event.SessionID,
		ProductID:   event.ProductID,
		Quantity:    event.Quantity,
		Title:       event.Title,
		Description: event.Description,
	})
	if err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("event_type", string(event.Type)).
			Msg("Failed to publish shop event, notification dropped")
	}
}
