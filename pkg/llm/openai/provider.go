package openai

import (
	"context"
	"errors"
	"fmt"
	"io"

	"micro-automation-hub/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4-turbo"

// Provider talks to OpenAI or any OpenAI-compatible endpoint.
type Provider struct {
	client *goopenai.Client
	model  string
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, baseURL, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Provider{
		client: goopenai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (p *Provider) Stream(ctx context.Context, history []llm.Message, onToken llm.TokenHandler, opts ...llm.Option) error {
	options := llm.Apply(opts...)

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	messages := make([]goopenai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		messages[i] = goopenai.ChatCompletionMessage{Role: msg.Role, Content: msg.Content}
	}

	req := goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(options.Temperature),
		Stream:      true,
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = options.MaxTokens
	}

	stream, err := p.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return fmt.Errorf("openai stream request failed: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("openai stream recv: %w", err)
		}
		for _, choice := range resp.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			if err := onToken(choice.Delta.Content); err != nil {
				return err
			}
		}
	}
}
