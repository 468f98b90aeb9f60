package factory

import (
	"testing"

	"micro-automation-hub/pkg/llm"
	"micro-automation-hub/pkg/llm/ollama"
	"micro-automation-hub/pkg/llm/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider(Config{Provider: "openai"})
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.Nil(t, p)

	p, err = NewLLMProvider(Config{Provider: "openai", OpenAIAPIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &openai.Provider{}, p)

	p, err = NewLLMProvider(Config{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	require.IsType(t, &ollama.OllamaProvider{}, p)
	assert.Equal(t, "http://localhost:11434", p.(*ollama.OllamaProvider).BaseURL)

	_, err = NewLLMProvider(Config{Provider: "huggingface"})
	assert.Error(t, err)
}
