package wizard

const ReviewNotice = "This summary captures blueprint inputs so the backend can be wired later. Nothing is persisted yet."

const StagedNotice = "This blueprint has been staged locally. Connect the persistence layer to finalize publishing."

// Review is the read-only projection shown before staging. Exactly one of
// Rag and Chain is set, matching Blueprint.Key.
type Review struct {
	Blueprint Blueprint   `json:"blueprint"`
	Rag       *RagDraft   `json:"rag,omitempty"`
	Chain     *ChainDraft `json:"chain,omitempty"`
	Submitted bool        `json:"submitted"`
	Notice    string      `json:"notice"`
}

// Review is only available in the review stage.
func (s *Session) Review() (Review, bool) {
	if s.Stage != StageReview {
		return Review{}, false
	}
	bp, ok := LookupBlueprint(s.Selected)
	if !ok {
		return Review{}, false
	}

	r := Review{Blueprint: bp, Submitted: s.Submitted, Notice: ReviewNotice}
	if s.Submitted {
		r.Notice = StagedNotice
	}
	switch s.Selected {
	case BlueprintRAG:
		rag := s.Rag.clone()
		r.Rag = &rag
	case BlueprintChain:
		chain := s.Chain.clone()
		r.Chain = &chain
	}
	return r, true
}
