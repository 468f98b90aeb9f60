package dto

import "time"

type FailureModeResponse struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Playbooks   int    `json:"playbooks"`
}

type ActivityResponse struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	EventType string    `json:"event_type,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type FailureAtlasResponse struct {
	Modes    []*FailureModeResponse `json:"modes"`
	Activity []*ActivityResponse    `json:"activity"`
}
