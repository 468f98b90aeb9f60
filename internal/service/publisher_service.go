// FILE: internal/service/publisher_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"micro-automation-hub/internal/pkg/logger"
	"micro-automation-hub/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// LiveTopic carries domain events inside the process toward the live feed.
const LiveTopic = "hub_live_events"

// IPublisherService fans a domain event out to every configured channel.
type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

// EventBus is the durable cross-process bus (NATS JetStream in production).
type EventBus interface {
	Publish(ctx context.Context, event events.Event) error
}

type liveEnvelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type publisherService struct {
	publisher message.Publisher
	topicName string
	bus       EventBus // nil when NATS is unavailable
	logger    logger.ILogger
}

func NewPublisherService(publisher message.Publisher, topicName string, bus EventBus, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topicName: topicName,
		bus:       bus,
		logger:    log,
	}
}

// Publish never fails the caller's write because of a side channel; failures are logged
// and the first one is returned for tests and callers that care.
func (p *publisherService) Publish(ctx context.Context, event events.Event) error {
	var firstErr error

	payload, err := json.Marshal(liveEnvelope{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err == nil {
		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.SetContext(ctx)
		err = p.publisher.Publish(p.topicName, msg)
	}
	if err != nil {
		firstErr = err
		p.logger.Warn("PublisherService", "Failed to publish live event", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
	}

	if p.bus != nil {
		if err := p.bus.Publish(ctx, event); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			p.logger.Warn("PublisherService", "Failed to publish to event bus", map[string]interface{}{"type": event.EventType(), "error": err.Error()})
		}
	}

	return firstErr
}
