// FILE: internal/service/broadcaster_service.go
package service

import (
	"context"
	"encoding/json"
	"strings"

	"micro-automation-hub/internal/pkg/logger"
	internalWS "micro-automation-hub/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
)

// LiveBroadcaster is satisfied by the websocket hub.
type LiveBroadcaster interface {
	Broadcast(ctx context.Context, msg internalWS.Message) error
}

type IBroadcasterService interface {
	Consume(ctx context.Context) error
}

type broadcasterService struct {
	subscriber message.Subscriber
	topicName  string
	hub        LiveBroadcaster
	logger     logger.ILogger
}

func NewBroadcasterService(subscriber message.Subscriber, topicName string, hub LiveBroadcaster, log logger.ILogger) IBroadcasterService {
	return &broadcasterService{
		subscriber: subscriber,
		topicName:  topicName,
		hub:        hub,
		logger:     log,
	}
}

func (bs *broadcasterService) Consume(ctx context.Context) error {
	messages, err := bs.subscriber.Subscribe(ctx, bs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			bs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (bs *broadcasterService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope liveEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		bs.logger.Error("BroadcasterService", "Failed to unmarshal live event", map[string]interface{}{"error": err})
		msg.Ack() // poison message, never retry
		return
	}

	err := bs.hub.Broadcast(ctx, internalWS.Message{
		Type: liveEventName(envelope.Type),
		Data: envelope.Data,
	})
	if err != nil {
		// Local clients already got it; only the cluster fan-out failed.
		bs.logger.Warn("BroadcasterService", "Cluster fan-out failed", map[string]interface{}{"type": envelope.Type, "error": err.Error()})
	}
	msg.Ack()
}

// liveEventName turns FEEDBACK_VOTED into feedback.voted.
func liveEventName(eventType string) string {
	return strings.ToLower(strings.Replace(eventType, "_", ".", 1))
}
