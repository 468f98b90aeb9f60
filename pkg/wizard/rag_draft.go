package wizard

import "strings"

// RefreshCadence controls how often the knowledge sources are re-crawled.
type RefreshCadence string

const (
	CadenceDaily    RefreshCadence = "Daily"
	CadenceWeekly   RefreshCadence = "Weekly"
	CadenceBiWeekly RefreshCadence = "Bi-weekly"
	CadenceMonthly  RefreshCadence = "Monthly"
)

var cadences = []RefreshCadence{CadenceDaily, CadenceWeekly, CadenceBiWeekly, CadenceMonthly}

// Cadences lists the accepted refresh cadences in display order.
func Cadences() []RefreshCadence {
	return append([]RefreshCadence(nil), cadences...)
}

func (c RefreshCadence) Valid() bool {
	for _, known := range cadences {
		if c == known {
			return true
		}
	}
	return false
}

// Display hints for the numeric retrieval parameters. They are not enforced.
const (
	ChunkSizeMin = 200
	ChunkSizeMax = 2000
	TopKMin      = 1
	TopKMax      = 10
)

const (
	defaultChunkSize = 800
	defaultTopK      = 4
)

// FileRef points at a user-selected file. Only the name and byte size are kept.
type FileRef struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type RagDraft struct {
	Name           string         `json:"name"`
	Summary        string         `json:"summary"`
	Owner          string         `json:"owner"`
	Guardrails     string         `json:"guardrails"`
	URLs           []string       `json:"urls"`
	Uploads        []FileRef      `json:"uploads"`
	RefreshCadence RefreshCadence `json:"refresh_cadence"`
	ChunkSize      int            `json:"chunk_size"`
	TopK           int            `json:"top_k"`
}

func NewRagDraft() *RagDraft {
	return &RagDraft{
		URLs:           []string{},
		Uploads:        []FileRef{},
		RefreshCadence: CadenceWeekly,
		ChunkSize:      defaultChunkSize,
		TopK:           defaultTopK,
	}
}

func (d *RagDraft) SetName(v string)       { d.Name = v }
func (d *RagDraft) SetSummary(v string)    { d.Summary = v }
func (d *RagDraft) SetOwner(v string)      { d.Owner = v }
func (d *RagDraft) SetGuardrails(v string) { d.Guardrails = v }
func (d *RagDraft) SetChunkSize(v int)     { d.ChunkSize = v }
func (d *RagDraft) SetTopK(v int)          { d.TopK = v }

// SetRefreshCadence ignores values outside the cadence enum.
func (d *RagDraft) SetRefreshCadence(c RefreshCadence) bool {
	if !c.Valid() {
		return false
	}
	d.RefreshCadence = c
	return true
}

// AddURL appends the trimmed url unless it is empty or already present.
// Duplicates are matched on the raw trimmed string.
func (d *RagDraft) AddURL(raw string) bool {
	url := strings.TrimSpace(raw)
	if url == "" || d.HasURL(url) {
		return false
	}
	d.URLs = append(d.URLs, url)
	return true
}

func (d *RagDraft) HasURL(url string) bool {
	for _, existing := range d.URLs {
		if existing == url {
			return true
		}
	}
	return false
}

func (d *RagDraft) RemoveURL(url string) bool {
	for i, existing := range d.URLs {
		if existing == url {
			d.URLs = append(d.URLs[:i:i], d.URLs[i+1:]...)
			return true
		}
	}
	return false
}

// AddUploads appends file references in the given order. Names may repeat.
func (d *RagDraft) AddUploads(refs ...FileRef) bool {
	if len(refs) == 0 {
		return false
	}
	d.Uploads = append(d.Uploads, refs...)
	return true
}

func (d *RagDraft) RemoveUpload(index int) bool {
	if index < 0 || index >= len(d.Uploads) {
		return false
	}
	d.Uploads = append(d.Uploads[:index:index], d.Uploads[index+1:]...)
	return true
}

func (d *RagDraft) ready() bool {
	return strings.TrimSpace(d.Name) != "" && (len(d.URLs) > 0 || len(d.Uploads) > 0)
}

func (d *RagDraft) clone() RagDraft {
	c := *d
	c.URLs = append([]string{}, d.URLs...)
	c.Uploads = append([]FileRef{}, d.Uploads...)
	return c
}
