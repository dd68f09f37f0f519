package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/shop_api/internal/logging"
)

const (
	TopicUserEvents  = "user_events"
	TopicCartEvents  = "cart_events"
	TopicOrderEvents = "order_events"
)

const publishTimeout = 5 * time.Second

// publish is best effort: a broker failure is logged, never returned.
func publish(ctx context.Context, pub EventPublisher, topic, key string, event map[string]any) {
	if pub == nil {
		return
	}
	event["event_id"] = uuid.NewString()
	event["occurred_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := pub.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("publish_event_error", "topic", topic, "type", event["type"], "error", err)
	}
}
