package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrNotConfigured is returned by the factory when no usable provider is set up.
var ErrNotConfigured = errors.New("llm provider is not configured")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Apply folds opts over the defaults.
func Apply(opts ...Option) Options {
	o := Options{Temperature: 0.7}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// TokenHandler receives each streamed fragment. Returning an error stops the stream.
type TokenHandler func(token string) error

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Stream sends the chat history and calls onToken for every content fragment
	// until the model finishes, ctx is done, or onToken fails.
	Stream(ctx context.Context, history []Message, onToken TokenHandler, options ...Option) error
}
