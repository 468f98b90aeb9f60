// Package wizard implements the automation authoring flow: blueprint selection,
// draft configuration and review. A Session is plain in-memory state; callers
// own it and must serialise access to a single session themselves.
package wizard

// Session is one authoring run. Both drafts live for the whole session so that
// switching blueprints does not discard earlier edits.
type Session struct {
	Stage     Stage
	Selected  BlueprintKey
	Submitted bool

	Rag   *RagDraft
	Chain *ChainDraft

	nextID IDGenerator
}

type Option func(*Session)

// WithIDGenerator overrides how chain step ids are produced.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Session) {
		if gen != nil {
			s.nextID = gen
		}
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{nextID: defaultStepID}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.Stage = StageSelectBlueprint
	s.Selected = BlueprintNone
	s.Submitted = false
	s.Rag = NewRagDraft()
	s.Chain = NewChainDraft(s.nextID)
}

func (s *Session) SelectBlueprint(key BlueprintKey) bool {
	if s.Stage != StageSelectBlueprint {
		return false
	}
	if _, ok := LookupBlueprint(key); !ok {
		return false
	}
	s.Selected = key
	s.Stage = StageConfigure
	s.Submitted = false
	return true
}

func (s *Session) ChangeBlueprint() bool {
	if s.Stage != StageConfigure {
		return false
	}
	s.Stage = StageSelectBlueprint
	s.Selected = BlueprintNone
	s.Submitted = false
	return true
}

// CanAdvance reports whether the active draft is complete enough for review.
func (s *Session) CanAdvance() bool {
	if s.Stage != StageConfigure {
		return false
	}
	switch s.Selected {
	case BlueprintRAG:
		return s.Rag.ready()
	case BlueprintChain:
		return s.Chain.ready()
	default:
		return false
	}
}

func (s *Session) AdvanceToReview() bool {
	if !s.CanAdvance() {
		return false
	}
	s.Submitted = false
	s.Stage = StageReview
	return true
}

func (s *Session) EditFromReview() bool {
	if s.Stage != StageReview {
		return false
	}
	s.Submitted = false
	s.Stage = StageConfigure
	return true
}

// StageDraft marks the reviewed draft as staged. Nothing is written anywhere.
func (s *Session) StageDraft() bool {
	if s.Stage != StageReview || s.Submitted {
		return false
	}
	s.Submitted = true
	return true
}

// Restart discards both drafts and returns to blueprint selection.
func (s *Session) Restart() {
	s.reset()
}

// EditableRag returns the RAG draft while it is being configured.
func (s *Session) EditableRag() (*RagDraft, bool) {
	if s.Stage != StageConfigure || s.Selected != BlueprintRAG {
		return nil, false
	}
	return s.Rag, true
}

// EditableChain returns the chain draft while it is being configured.
func (s *Session) EditableChain() (*ChainDraft, bool) {
	if s.Stage != StageConfigure || s.Selected != BlueprintChain {
		return nil, false
	}
	return s.Chain, true
}

// Snapshot is a detached copy of a session, safe to render or compare.
type Snapshot struct {
	Stage      Stage        `json:"stage"`
	Selected   BlueprintKey `json:"selected_blueprint"`
	Submitted  bool         `json:"submitted"`
	CanAdvance bool         `json:"can_advance"`
	Rag        RagDraft     `json:"rag"`
	Chain      ChainDraft   `json:"chain"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Stage:      s.Stage,
		Selected:   s.Selected,
		Submitted:  s.Submitted,
		CanAdvance: s.CanAdvance(),
		Rag:        s.Rag.clone(),
		Chain:      s.Chain.clone(),
	}
}
