package wizard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator yields step identifiers. Every call must return a new value.
type IDGenerator func() string

func defaultStepID() string {
	return "step-" + uuid.NewString()
}

type Step struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Prompt       string `json:"prompt"`
	HandoffNotes string `json:"handoff_notes"`
}

type ChainDraft struct {
	Name       string `json:"name"`
	Summary    string `json:"summary"`
	Trigger    string `json:"trigger"`
	Evaluation string `json:"evaluation"`
	Steps      []Step `json:"steps"`

	nextID IDGenerator
}

// NewChainDraft returns a draft holding a single empty "Step 1".
func NewChainDraft(nextID IDGenerator) *ChainDraft {
	if nextID == nil {
		nextID = defaultStepID
	}
	d := &ChainDraft{nextID: nextID}
	d.Steps = []Step{d.newStep(1)}
	return d
}

func (d *ChainDraft) newStep(position int) Step {
	return Step{ID: d.nextID(), Title: fmt.Sprintf("Step %d", position)}
}

func (d *ChainDraft) SetName(v string)       { d.Name = v }
func (d *ChainDraft) SetSummary(v string)    { d.Summary = v }
func (d *ChainDraft) SetTrigger(v string)    { d.Trigger = v }
func (d *ChainDraft) SetEvaluation(v string) { d.Evaluation = v }

// AddStep appends an empty step titled after its new position and returns it.
func (d *ChainDraft) AddStep() Step {
	step := d.newStep(len(d.Steps) + 1)
	d.Steps = append(d.Steps, step)
	return step
}

// RemoveStep drops the step with the given id. The last remaining step is never removed.
func (d *ChainDraft) RemoveStep(id string) bool {
	if len(d.Steps) <= 1 {
		return false
	}
	i := d.indexOf(id)
	if i < 0 {
		return false
	}
	d.Steps = append(d.Steps[:i:i], d.Steps[i+1:]...)
	return true
}

func (d *ChainDraft) SetStepTitle(id, v string) bool {
	return d.editStep(id, func(s *Step) { s.Title = v })
}

func (d *ChainDraft) SetStepPrompt(id, v string) bool {
	return d.editStep(id, func(s *Step) { s.Prompt = v })
}

func (d *ChainDraft) SetStepHandoffNotes(id, v string) bool {
	return d.editStep(id, func(s *Step) { s.HandoffNotes = v })
}

func (d *ChainDraft) Step(id string) (Step, bool) {
	i := d.indexOf(id)
	if i < 0 {
		return Step{}, false
	}
	return d.Steps[i], true
}

func (d *ChainDraft) editStep(id string, fn func(*Step)) bool {
	i := d.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&d.Steps[i])
	return true
}

func (d *ChainDraft) indexOf(id string) int {
	for i := range d.Steps {
		if d.Steps[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *ChainDraft) ready() bool {
	if strings.TrimSpace(d.Name) == "" {
		return false
	}
	for _, s := range d.Steps {
		if strings.TrimSpace(s.Prompt) == "" {
			return false
		}
	}
	return true
}

func (d *ChainDraft) clone() ChainDraft {
	c := *d
	c.Steps = append([]Step{}, d.Steps...)
	c.nextID = nil
	return c
}
