package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddURL(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{
			name:   "trims input",
			inputs: []string{"  https://a.com\t"},
			want:   []string{"https://a.com"},
		},
		{
			name:   "ignores blank",
			inputs: []string{"", "   "},
			want:   []string{},
		},
		{
			name:   "keeps first insertion order",
			inputs: []string{"https://b.com", "https://a.com", "https://b.com", "https://c.com", " https://a.com"},
			want:   []string{"https://b.com", "https://a.com", "https://c.com"},
		},
		{
			name:   "no normalisation of trailing slash or scheme",
			inputs: []string{"https://a.com", "https://a.com/", "http://a.com", "HTTPS://a.com"},
			want:   []string{"https://a.com", "https://a.com/", "http://a.com", "HTTPS://a.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewRagDraft()
			for _, in := range tt.inputs {
				d.AddURL(in)
			}
			assert.Equal(t, tt.want, d.URLs)

			seen := map[string]bool{}
			for _, u := range d.URLs {
				assert.False(t, seen[u], "duplicate %q", u)
				seen[u] = true
			}
		})
	}
}

func TestRemoveURL(t *testing.T) {
	d := NewRagDraft()
	d.AddURL("https://a.com")
	d.AddURL("https://b.com")
	d.AddURL("https://c.com")

	assert.True(t, d.RemoveURL("https://b.com"))
	assert.Equal(t, []string{"https://a.com", "https://c.com"}, d.URLs)

	assert.False(t, d.RemoveURL("https://missing.com"))
	assert.Len(t, d.URLs, 2)

	assert.True(t, d.AddURL("https://b.com"))
	assert.Equal(t, []string{"https://a.com", "https://c.com", "https://b.com"}, d.URLs)
}

func TestUploads(t *testing.T) {
	d := NewRagDraft()

	assert.False(t, d.AddUploads())
	assert.True(t, d.AddUploads(FileRef{Name: "a.pdf", Size: 1}, FileRef{Name: "b.csv", Size: 2}))
	assert.True(t, d.AddUploads(FileRef{Name: "a.pdf", Size: 1}))
	require.Len(t, d.Uploads, 3)
	assert.Equal(t, "a.pdf", d.Uploads[2].Name)

	assert.False(t, d.RemoveUpload(-1))
	assert.False(t, d.RemoveUpload(3))
	assert.True(t, d.RemoveUpload(0))
	assert.Equal(t, []FileRef{{Name: "b.csv", Size: 2}, {Name: "a.pdf", Size: 1}}, d.Uploads)
}

func TestRagScalarSetters(t *testing.T) {
	d := NewRagDraft()

	assert.False(t, d.SetRefreshCadence("Hourly"))
	assert.Equal(t, CadenceWeekly, d.RefreshCadence)
	assert.True(t, d.SetRefreshCadence(CadenceBiWeekly))
	assert.Equal(t, CadenceBiWeekly, d.RefreshCadence)

	// Out-of-range values are kept as entered.
	d.SetChunkSize(50)
	d.SetTopK(99)
	assert.Equal(t, 50, d.ChunkSize)
	assert.Equal(t, 99, d.TopK)
}

func TestAddStepTitlesByPosition(t *testing.T) {
	d := NewChainDraft(counterIDs())

	d.AddStep()
	d.AddStep()
	require.Len(t, d.Steps, 3)
	assert.Equal(t, "Step 3", d.Steps[2].Title)

	require.True(t, d.RemoveStep(d.Steps[1].ID))
	added := d.AddStep()

	assert.Equal(t, "Step 3", added.Title)
	assert.Equal(t, "step-4", added.ID)
	assert.Empty(t, added.Prompt)
	assert.Empty(t, added.HandoffNotes)
}

func TestRemoveStepKeepsAtLeastOne(t *testing.T) {
	d := NewChainDraft(counterIDs())
	only := d.Steps[0].ID

	assert.False(t, d.RemoveStep(only))
	assert.Len(t, d.Steps, 1)

	second := d.AddStep()
	assert.False(t, d.RemoveStep("nope"))
	assert.True(t, d.RemoveStep(only))
	assert.False(t, d.RemoveStep(second.ID))
	require.Len(t, d.Steps, 1)
	assert.Equal(t, second.ID, d.Steps[0].ID)
}

func TestStepEditsKeepIDs(t *testing.T) {
	d := NewChainDraft(counterIDs())
	id := d.Steps[0].ID

	assert.True(t, d.SetStepTitle(id, "Classify"))
	assert.True(t, d.SetStepPrompt(id, "Classify the ticket"))
	assert.True(t, d.SetStepHandoffNotes(id, "Escalate P0"))
	assert.False(t, d.SetStepPrompt("missing", "x"))
	d.SetName("renamed")

	step, ok := d.Step(id)
	require.True(t, ok)
	assert.Equal(t, Step{ID: id, Title: "Classify", Prompt: "Classify the ticket", HandoffNotes: "Escalate P0"}, step)
}

func TestStepIDsUniqueWithDefaultGenerator(t *testing.T) {
	d := NewChainDraft(nil)
	for i := 0; i < 20; i++ {
		d.AddStep()
	}
	seen := map[string]bool{}
	for _, s := range d.Steps {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestParseBlueprintKey(t *testing.T) {
	key, ok := ParseBlueprintKey("rag")
	assert.True(t, ok)
	assert.Equal(t, BlueprintRAG, key)

	_, ok = ParseBlueprintKey("")
	assert.False(t, ok)
	_, ok = ParseBlueprintKey("RAG")
	assert.False(t, ok)
}
