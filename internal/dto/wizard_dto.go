package dto

import (
	"time"

	"micro-automation-hub/pkg/wizard"
)

type CreateWizardSessionResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	State     wizard.Snapshot `json:"state"`
}

// WizardStateResponse is returned by every wizard mutation. Applied is false
// when the event was not valid in the current stage and nothing changed.
type WizardStateResponse struct {
	Applied bool            `json:"applied"`
	State   wizard.Snapshot `json:"state"`
}

type SelectBlueprintRequest struct {
	Blueprint string `json:"blueprint" validate:"required"`
}

// Pointer fields distinguish "not sent" from an empty value.
type UpdateRagDraftRequest struct {
	Name           *string `json:"name"`
	Summary        *string `json:"summary"`
	Owner          *string `json:"owner"`
	Guardrails     *string `json:"guardrails"`
	RefreshCadence *string `json:"refresh_cadence"`
	ChunkSize      *int    `json:"chunk_size"`
	TopK           *int    `json:"top_k"`
}

type RagURLRequest struct {
	URL string `json:"url" validate:"required"`
}

type UpdateChainDraftRequest struct {
	Name       *string `json:"name"`
	Summary    *string `json:"summary"`
	Trigger    *string `json:"trigger"`
	Evaluation *string `json:"evaluation"`
}

type UpdateChainStepRequest struct {
	Title        *string `json:"title"`
	Prompt       *string `json:"prompt"`
	HandoffNotes *string `json:"handoff_notes"`
}

type BlueprintsResponse struct {
	Blueprints []wizard.Blueprint      `json:"blueprints"`
	Cadences   []wizard.RefreshCadence `json:"cadences"`
	Hints      RagParameterHints       `json:"hints"`
}

type RagParameterHints struct {
	ChunkSizeMin int `json:"chunk_size_min"`
	ChunkSizeMax int `json:"chunk_size_max"`
	TopKMin      int `json:"top_k_min"`
	TopKMax      int `json:"top_k_max"`
}
