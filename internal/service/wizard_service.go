// FILE: internal/service/wizard_service.go
package service

import (
	"context"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/pkg/logger"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/repository/memory"
	"micro-automation-hub/pkg/wizard"

	"github.com/google/uuid"
)

const (
	msgWizardSessionNotFound = "Wizard session not found or expired"
	msgReviewUnavailable     = "Review is only available in the review stage"
)

type IWizardService interface {
	Blueprints() *dto.BlueprintsResponse
	Create(ctx context.Context) (*dto.CreateWizardSessionResponse, error)
	State(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	Discard(ctx context.Context, sessionID string) error

	SelectBlueprint(ctx context.Context, sessionID string, req *dto.SelectBlueprintRequest) (*dto.WizardStateResponse, error)
	ChangeBlueprint(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	AdvanceToReview(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	EditFromReview(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	StageDraft(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	Restart(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)

	UpdateRag(ctx context.Context, sessionID string, req *dto.UpdateRagDraftRequest) (*dto.WizardStateResponse, error)
	AddRagURL(ctx context.Context, sessionID, url string) (*dto.WizardStateResponse, error)
	RemoveRagURL(ctx context.Context, sessionID, url string) (*dto.WizardStateResponse, error)
	AddRagUploads(ctx context.Context, sessionID string, files []wizard.FileRef) (*dto.WizardStateResponse, error)
	RemoveRagUpload(ctx context.Context, sessionID string, index int) (*dto.WizardStateResponse, error)

	UpdateChain(ctx context.Context, sessionID string, req *dto.UpdateChainDraftRequest) (*dto.WizardStateResponse, error)
	AddChainStep(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	UpdateChainStep(ctx context.Context, sessionID, stepID string, req *dto.UpdateChainStepRequest) (*dto.WizardStateResponse, error)
	RemoveChainStep(ctx context.Context, sessionID, stepID string) (*dto.WizardStateResponse, error)

	Review(ctx context.Context, sessionID string) (*wizard.Review, error)
}

type wizardService struct {
	sessions *memory.WizardSessionRepository
	tokens   *serverutils.SessionTokens
	options  []wizard.Option
	logger   logger.ILogger
}

func NewWizardService(
	sessions *memory.WizardSessionRepository,
	tokens *serverutils.SessionTokens,
	log logger.ILogger,
	options ...wizard.Option,
) IWizardService {
	return &wizardService{
		sessions: sessions,
		tokens:   tokens,
		options:  options,
		logger:   log,
	}
}

func (s *wizardService) Blueprints() *dto.BlueprintsResponse {
	return &dto.BlueprintsResponse{
		Blueprints: wizard.Blueprints(),
		Cadences:   wizard.Cadences(),
		Hints: dto.RagParameterHints{
			ChunkSizeMin: wizard.ChunkSizeMin,
			ChunkSizeMax: wizard.ChunkSizeMax,
			TopKMin:      wizard.TopKMin,
			TopKMax:      wizard.TopKMax,
		},
	}
}

func (s *wizardService) Create(ctx context.Context) (*dto.CreateWizardSessionResponse, error) {
	id := uuid.NewString()
	session := wizard.NewSession(s.options...)

	token, expiresAt, err := s.tokens.Issue(id)
	if err != nil {
		return nil, serverutils.Internal("Failed to issue session token", err)
	}
	s.sessions.Create(id, session)

	s.logger.Debug("WizardService", "Session created", map[string]interface{}{"session_id": id})
	return &dto.CreateWizardSessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		State:     session.Snapshot(),
	}, nil
}

func (s *wizardService) State(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(*wizard.Session) bool { return true })
}

func (s *wizardService) Discard(ctx context.Context, sessionID string) error {
	if !s.sessions.Delete(sessionID) {
		return serverutils.NotFound(msgWizardSessionNotFound)
	}
	return nil
}

// apply runs one wizard event under the session lock. A rejected event is not an
// error: the caller gets Applied=false and the unchanged state.
func (s *wizardService) apply(sessionID string, event func(*wizard.Session) bool) (*dto.WizardStateResponse, error) {
	var res dto.WizardStateResponse
	found := s.sessions.Update(sessionID, func(session *wizard.Session) {
		res.Applied = event(session)
		res.State = session.Snapshot()
	})
	if !found {
		return nil, serverutils.NotFound(msgWizardSessionNotFound)
	}
	return &res, nil
}

func (s *wizardService) SelectBlueprint(ctx context.Context, sessionID string, req *dto.SelectBlueprintRequest) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		key, ok := wizard.ParseBlueprintKey(req.Blueprint)
		return ok && session.SelectBlueprint(key)
	})
}

func (s *wizardService) ChangeBlueprint(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, (*wizard.Session).ChangeBlueprint)
}

func (s *wizardService) AdvanceToReview(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, (*wizard.Session).AdvanceToReview)
}

func (s *wizardService) EditFromReview(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, (*wizard.Session).EditFromReview)
}

func (s *wizardService) StageDraft(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	res, err := s.apply(sessionID, (*wizard.Session).StageDraft)
	if err == nil && res.Applied {
		s.logger.Info("WizardService", "Draft staged", map[string]interface{}{"session_id": sessionID, "blueprint": res.State.Selected})
	}
	return res, err
}

func (s *wizardService) Restart(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		session.Restart()
		return true
	})
}

// UpdateRag applies a partial patch atomically: an invalid cadence rejects the whole patch.
func (s *wizardService) UpdateRag(ctx context.Context, sessionID string, req *dto.UpdateRagDraftRequest) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		draft, ok := session.EditableRag()
		if !ok {
			return false
		}
		if req.RefreshCadence != nil && !wizard.RefreshCadence(*req.RefreshCadence).Valid() {
			return false
		}

		if req.Name != nil {
			draft.SetName(*req.Name)
		}
		if req.Summary != nil {
			draft.SetSummary(*req.Summary)
		}
		if req.Owner != nil {
			draft.SetOwner(*req.Owner)
		}
		if req.Guardrails != nil {
			draft.SetGuardrails(*req.Guardrails)
		}
		if req.RefreshCadence != nil {
			draft.SetRefreshCadence(wizard.RefreshCadence(*req.RefreshCadence))
		}
		if req.ChunkSize != nil {
			draft.SetChunkSize(*req.ChunkSize)
		}
		if req.TopK != nil {
			draft.SetTopK(*req.TopK)
		}
		return true
	})
}

func (s *wizardService) AddRagURL(ctx context.Context, sessionID, url string) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		draft, ok := session.EditableRag()
		return ok && draft.AddURL(url)
	})
}

func (s *wizardService) RemoveRagURL(ctx context.Context, sessionID, url string) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		draft, ok := session.EditableRag()
		return ok && draft.RemoveURL(url)
	})
}

func (s *wizardService) AddRagUploads(ctx context.Context, sessionID string, files []wizard.FileRef) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		draft, ok := session.EditableRag()
		return ok && draft.AddUploads(files...)
	})
}

func (s *wizardService) RemoveRagUpload(ctx context.Context, sessionID string, index int) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		draft, ok := session.EditableRag()
		return ok && draft.RemoveUpload(index)
	})
}

func (s *wizardService) UpdateChain(ctx context.Context, sessionID string, req *dto.UpdateChainDraftRequest) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		draft, ok := session.EditableChain()
		if !ok {
			return false
		}
		if req.Name != nil {
			draft.SetName(*req.Name)
		}
		if req.Summary != nil {
			draft.SetSummary(*req.Summary)
		}
		if req.Trigger != nil {
			draft.SetTrigger(*req.Trigger)
		}
		if req.Evaluation != nil {
			draft.SetEvaluation(*req.Evaluation)
		}
		return true
	})
}

func (s *wizardService) AddChainStep(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		draft, ok := session.EditableChain()
		if !ok {
			return false
		}
		draft.AddStep()
		return true
	})
}

// UpdateChainStep rejects the patch when the step id is unknown.
func (s *wizardService) UpdateChainStep(ctx context.Context, sessionID, stepID string, req *dto.UpdateChainStepRequest) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		draft, ok := session.EditableChain()
		if !ok {
			return false
		}
		if _, exists := draft.Step(stepID); !exists {
			return false
		}
		if req.Title != nil {
			draft.SetStepTitle(stepID, *req.Title)
		}
		if req.Prompt != nil {
			draft.SetStepPrompt(stepID, *req.Prompt)
		}
		if req.HandoffNotes != nil {
			draft.SetStepHandoffNotes(stepID, *req.HandoffNotes)
		}
		return true
	})
}

func (s *wizardService) RemoveChainStep(ctx context.Context, sessionID, stepID string) (*dto.WizardStateResponse, error) {
	return s.apply(sessionID, func(session *wizard.Session) bool {
		draft, ok := session.EditableChain()
		return ok && draft.RemoveStep(stepID)
	})
}

func (s *wizardService) Review(ctx context.Context, sessionID string) (*wizard.Review, error) {
	var (
		review    wizard.Review
		available bool
	)
	found := s.sessions.View(sessionID, func(session *wizard.Session) {
		review, available = session.Review()
	})
	if !found {
		return nil, serverutils.NotFound(msgWizardSessionNotFound)
	}
	if !available {
		return nil, serverutils.Conflict(msgReviewUnavailable)
	}
	return &review, nil
}
