package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"micro-automation-hub/internal/pkg/logger"
	internalWS "micro-automation-hub/internal/websocket"
	"micro-automation-hub/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHub struct {
	mu       sync.Mutex
	messages []internalWS.Message
}

func (h *recordingHub) Broadcast(ctx context.Context, msg internalWS.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
	return nil
}

func (h *recordingHub) received() []internalWS.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]internalWS.Message(nil), h.messages...)
}

func TestPublishedEventsReachTheHub(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	hub := &recordingHub{}
	require.NoError(t, NewBroadcasterService(pubSub, LiveTopic, hub, logger.NewNopLogger()).Consume(ctx))

	bus := &fakePublisher{}
	publisher := NewPublisherService(pubSub, LiveTopic, bus, logger.NewNopLogger())

	event := events.FeedbackVoted(uuid.New(), "MCP Library", "upvote", 7, time.Now())
	require.NoError(t, publisher.Publish(ctx, event))

	require.Eventually(t, func() bool { return len(hub.received()) == 1 }, time.Second, 5*time.Millisecond)
	msg := hub.received()[0]
	assert.Equal(t, "feedback.voted", msg.Type)
	assert.Equal(t, "MCP Library", msg.Data.(map[string]interface{})["title"])

	require.Len(t, bus.published, 1)
	assert.Equal(t, events.TypeFeedbackVoted, bus.published[0].EventType())
}

func TestPublisherWithoutBus(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	publisher := NewPublisherService(pubSub, LiveTopic, nil, logger.NewNopLogger())

	assert.NoError(t, publisher.Publish(context.Background(), events.BaseEvent{Type: "X"}))
}

func TestLiveEventName(t *testing.T) {
	assert.Equal(t, "feedback.submitted", liveEventName(events.TypeFeedbackSubmitted))
	assert.Equal(t, "feedback.voted", liveEventName(events.TypeFeedbackVoted))
	assert.Equal(t, "ping", liveEventName("PING"))
}
