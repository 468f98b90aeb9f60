package dto

import "github.com/google/uuid"

type AutomationResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Summary         string    `json:"summary"`
	Owner           string    `json:"owner"`
	Status          string    `json:"status"`
	LastRunRelative string    `json:"last_run_relative"`
	RunRate         string    `json:"run_rate"`
}
