package nats

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
)

func TestBuildEvent(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		subject  string
		headers  nats.Header
		wantType string
		wantAt   *time.Time
	}{
		{
			name:     "headers win",
			subject:  "events.SOMETHING_ELSE",
			headers:  nats.Header{headerEventType: []string{"FEEDBACK_VOTED"}, headerOccurredAt: []string{at.Format(time.RFC3339Nano)}},
			wantType: "FEEDBACK_VOTED",
			wantAt:   &at,
		},
		{
			name:     "type from subject",
			subject:  "events.FEEDBACK_SUBMITTED",
			headers:  nats.Header{},
			wantType: "FEEDBACK_SUBMITTED",
		},
		{
			name:     "bad timestamp falls back to now",
			subject:  "events.X",
			headers:  nats.Header{headerOccurredAt: []string{"yesterday"}},
			wantType: "X",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := buildEvent(tt.subject, tt.headers, map[string]interface{}{"title": "x"})

			assert.Equal(t, tt.wantType, event.EventType())
			assert.Equal(t, "x", event.Payload()["title"])
			if tt.wantAt != nil {
				assert.True(t, tt.wantAt.Equal(event.Timestamp()))
			} else {
				assert.WithinDuration(t, time.Now(), event.Timestamp(), 5*time.Second)
			}
		})
	}
}
