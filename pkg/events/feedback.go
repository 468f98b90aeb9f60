package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeFeedbackSubmitted = "FEEDBACK_SUBMITTED"
	TypeFeedbackVoted     = "FEEDBACK_VOTED"
)

func FeedbackSubmitted(id uuid.UUID, title, state string, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeFeedbackSubmitted,
		Data: map[string]interface{}{
			"feedback_id": id.String(),
			"title":       title,
			"state":       state,
		},
		OccurredAt: at,
	}
}

func FeedbackVoted(id uuid.UUID, title, voteType string, votes int, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeFeedbackVoted,
		Data: map[string]interface{}{
			"feedback_id": id.String(),
			"title":       title,
			"vote_type":   voteType,
			"votes":       votes,
		},
		OccurredAt: at,
	}
}
