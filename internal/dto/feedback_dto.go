package dto

import "github.com/google/uuid"

type FeedbackResponse struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Votes int       `json:"votes"`
	State string    `json:"state"`
}

type SubmitFeedbackRequest struct {
	Title string `json:"title" validate:"required"`
	State string `json:"state" validate:"required"`
}

type VoteFeedbackRequest struct {
	FeedbackId uuid.UUID `json:"feedback_id" validate:"required"`
	VoteType   string    `json:"vote_type" validate:"required,oneof=upvote downvote"`
}
