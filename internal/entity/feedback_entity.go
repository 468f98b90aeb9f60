package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackItem struct {
	Id        uuid.UUID
	Title     string
	Votes     int
	State     string // "Under review" | "Accepted" | "Investigating" ...
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

// Delta is the signed change a vote applies. Unknown vote types yield 0.
func (v VoteType) Delta() int {
	switch v {
	case VoteUp:
		return 1
	case VoteDown:
		return -1
	default:
		return 0
	}
}
