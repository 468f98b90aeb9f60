package events

import "time"

// Event is a domain fact published by the hub. Payload values must survive a
// JSON round trip, so numbers may come back as float64 on the consumer side.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string               { return e.Type }
func (e BaseEvent) Payload() map[string]interface{} { return e.Data }
func (e BaseEvent) Timestamp() time.Time            { return e.OccurredAt }

// StringField reads a string payload value, tolerating missing keys.
func StringField(e Event, key string) string {
	if v, ok := e.Payload()[key].(string); ok {
		return v
	}
	return ""
}
