package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"micro-automation-hub/pkg/events"

	"github.com/nats-io/nats.go"
)

// Publisher sends events to the EVENTS stream under "events.<TYPE>".
type Publisher struct {
	conn *Conn
}

func NewPublisher(conn *Conn) *Publisher {
	return &Publisher{conn: conn}
}

func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := nats.NewMsg(SubjectPrefix + event.EventType())
	msg.Data = data
	msg.Header.Set(headerEventType, event.EventType())
	msg.Header.Set(headerOccurredAt, event.Timestamp().UTC().Format(time.RFC3339Nano))

	if _, err := p.conn.js.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to subject %s: %w", msg.Subject, err)
	}
	return nil
}
