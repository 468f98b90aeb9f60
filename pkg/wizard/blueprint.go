package wizard

// Stage is the wizard phase a session is currently in.
type Stage string

const (
	StageSelectBlueprint Stage = "select"
	StageConfigure       Stage = "configure"
	StageReview          Stage = "review"
)

// BlueprintKey identifies a blueprint template. The zero value means no selection.
type BlueprintKey string

const (
	BlueprintNone  BlueprintKey = ""
	BlueprintRAG   BlueprintKey = "rag"
	BlueprintChain BlueprintKey = "chain"
)

type Blueprint struct {
	Key        BlueprintKey `json:"key"`
	Title      string       `json:"title"`
	Blurb      string       `json:"blurb"`
	Highlights []string     `json:"highlights"`
	Badge      string       `json:"badge"`
}

var catalog = []Blueprint{
	{
		Key:   BlueprintRAG,
		Title: "Retrieval-Augmented Knowledge Agent",
		Blurb: "Ground responses in curated knowledge sources. Configure link crawlers and document uploads in a single flow.",
		Highlights: []string{
			"Blend live web references with controlled document uploads",
			"Tune chunking + top-k retrieval parameters per collection",
			"Document guardrails and human handoff plan",
		},
		Badge: "Knowledge Ops",
	},
	{
		Key:   BlueprintChain,
		Title: "Agentic Prompt Chain",
		Blurb: "Compose multi-step prompt workflows with explicit handoffs so teams can automate complex playbooks.",
		Highlights: []string{
			"Define trigger context and downstream success signal",
			"Author iterative prompt stages with reviewer notes",
			"Capture evaluation rubric for safe launch",
		},
		Badge: "Workflow Design",
	},
}

// Blueprints returns a copy of the blueprint catalog in display order.
func Blueprints() []Blueprint {
	out := make([]Blueprint, len(catalog))
	for i, b := range catalog {
		b.Highlights = append([]string(nil), b.Highlights...)
		out[i] = b
	}
	return out
}

// LookupBlueprint finds a catalog entry by key.
func LookupBlueprint(key BlueprintKey) (Blueprint, bool) {
	for _, b := range Blueprints() {
		if b.Key == key {
			return b, true
		}
	}
	return Blueprint{}, false
}

// ParseBlueprintKey accepts only keys present in the catalog.
func ParseBlueprintKey(s string) (BlueprintKey, bool) {
	key := BlueprintKey(s)
	if _, ok := LookupBlueprint(key); !ok {
		return BlueprintNone, false
	}
	return key, true
}
