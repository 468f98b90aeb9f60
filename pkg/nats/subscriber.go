package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"micro-automation-hub/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventHandler processes one event. Returning an error naks the message for redelivery.
type EventHandler func(ctx context.Context, event events.Event) error

type Subscriber struct {
	conn     *Conn
	contexts []jetstream.ConsumeContext
}

func NewSubscriber(conn *Conn) *Subscriber {
	return &Subscriber{conn: conn}
}

// Subscribe attaches a durable consumer to the EVENTS stream so nothing is lost across restarts.
func (s *Subscriber) Subscribe(ctx context.Context, subject, durableName string, handler EventHandler) error {
	consumer, err := s.conn.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    5,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		event, err := decode(msg)
		if err != nil {
			// Malformed payloads will never succeed.
			_ = msg.Term()
			return
		}
		if err := handler(context.Background(), event); err != nil {
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	s.contexts = append(s.contexts, cc)
	return nil
}

func (s *Subscriber) Stop() {
	for _, cc := range s.contexts {
		cc.Stop()
	}
	s.contexts = nil
}

func decode(msg jetstream.Msg) (events.BaseEvent, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Data(), &payload); err != nil {
		return events.BaseEvent{}, err
	}
	return buildEvent(msg.Subject(), msg.Headers(), payload), nil
}

func buildEvent(subject string, headers nats.Header, payload map[string]interface{}) events.BaseEvent {
	eventType := headers.Get(headerEventType)
	if eventType == "" {
		eventType = strings.TrimPrefix(subject, SubjectPrefix)
	}

	occurredAt := time.Now()
	if raw := headers.Get(headerOccurredAt); raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			occurredAt = t
		}
	}

	return events.BaseEvent{Type: eventType, Data: payload, OccurredAt: occurredAt}
}
