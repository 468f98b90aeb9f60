package factory

import (
	"fmt"

	"micro-automation-hub/pkg/llm"
	"micro-automation-hub/pkg/llm/ollama"
	"micro-automation-hub/pkg/llm/openai"
)

type Config struct {
	Provider      string // "openai" or "ollama"
	Model         string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OllamaBaseURL string
}

// NewLLMProvider returns llm.ErrNotConfigured when the selected backend lacks credentials.
func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "", "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, llm.ErrNotConfigured
		}
		return openai.NewProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model)
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
