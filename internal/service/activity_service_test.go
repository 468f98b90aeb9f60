package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"micro-automation-hub/internal/pkg/logger"
	"micro-automation-hub/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRecordsSubmittedIdeaAndNotifiesSteward(t *testing.T) {
	factory := newFakeFactory()
	mail := &fakeMailer{}
	svc := NewActivityService(factory, mail, "steward@example.com", logger.NewNopLogger())
	at := time.Date(2025, 5, 1, 9, 36, 0, 0, time.UTC)

	err := svc.HandleEvent(context.Background(), events.FeedbackSubmitted(uuid.New(), "JIRA ticket agent", "Under review", at))

	require.NoError(t, err)
	require.Len(t, factory.uow.atlas.activity, 1)
	entry := factory.uow.atlas.activity[0]
	assert.Equal(t, "Feedback board", entry.Actor)
	assert.Equal(t, "Submitted idea `JIRA ticket agent`", entry.Action)
	assert.Equal(t, events.TypeFeedbackSubmitted, entry.EventType)
	assert.True(t, at.Equal(entry.OccurredAt))

	require.Len(t, mail.sent, 1)
	assert.Equal(t, sentMail{"steward@example.com", "JIRA ticket agent", "Under review"}, mail.sent[0])
}

func TestActivityDescribesVotesFromDecodedPayload(t *testing.T) {
	factory := newFakeFactory()
	mail := &fakeMailer{}
	svc := NewActivityService(factory, mail, "steward@example.com", logger.NewNopLogger())

	// Payloads that crossed the bus carry JSON numbers.
	event := events.BaseEvent{
		Type: events.TypeFeedbackVoted,
		Data: map[string]interface{}{"title": "MCP Library", "vote_type": "downvote", "votes": float64(11)},
	}

	require.NoError(t, svc.HandleEvent(context.Background(), event))

	require.Len(t, factory.uow.atlas.activity, 1)
	assert.Equal(t, "Downvoted idea `MCP Library` (now 11 votes)", factory.uow.atlas.activity[0].Action)
	assert.False(t, factory.uow.atlas.activity[0].OccurredAt.IsZero())
	assert.Empty(t, mail.sent)
}

func TestActivityIgnoresUnknownEvents(t *testing.T) {
	factory := newFakeFactory()
	svc := NewActivityService(factory, nil, "", logger.NewNopLogger())

	require.NoError(t, svc.HandleEvent(context.Background(), events.BaseEvent{Type: "SOMETHING_ELSE"}))
	assert.Empty(t, factory.uow.atlas.activity)
}

func TestActivityMailFailureIsNotRetried(t *testing.T) {
	factory := newFakeFactory()
	mail := &fakeMailer{err: errors.New("smtp down")}
	svc := NewActivityService(factory, mail, "steward@example.com", logger.NewNopLogger())

	err := svc.HandleEvent(context.Background(), events.FeedbackSubmitted(uuid.New(), "x", "y", time.Now()))

	assert.NoError(t, err)
	assert.Len(t, factory.uow.atlas.activity, 1)
}

func TestActivityStoreFailureAsksForRedelivery(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.atlas.err = errors.New("db down")
	svc := NewActivityService(factory, nil, "", logger.NewNopLogger())

	err := svc.HandleEvent(context.Background(), events.FeedbackSubmitted(uuid.New(), "x", "y", time.Now()))

	assert.Error(t, err)
}
