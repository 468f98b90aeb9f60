package dto

type ChatMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessageRequest `json:"messages" validate:"required,min=1,dive"`
}

// ChatTokenEvent is the data payload of each streamed SSE frame.
type ChatTokenEvent struct {
	Content string `json:"content"`
}

type ChatErrorEvent struct {
	Message string `json:"message"`
}
