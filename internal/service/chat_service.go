// FILE: internal/service/chat_service.go
package service

import (
	"context"
	"time"

	"micro-automation-hub/internal/constant"
	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/pkg/logger"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/pkg/llm"
)

const msgLLMNotConfigured = "LLM provider is not configured"

type IChatService interface {
	// Prepare validates the request and builds the provider history. It fails
	// before any bytes are streamed so the caller can still answer with JSON.
	Prepare(req *dto.ChatRequest) ([]llm.Message, error)
	Stream(ctx context.Context, history []llm.Message, onToken llm.TokenHandler) error
	Timeout() time.Duration
}

type chatService struct {
	provider llm.LLMProvider // nil when not configured
	timeout  time.Duration
	logger   logger.ILogger
}

func NewChatService(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) IChatService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &chatService{
		provider: provider,
		timeout:  timeout,
		logger:   log,
	}
}

func (s *chatService) Prepare(req *dto.ChatRequest) ([]llm.Message, error) {
	if s.provider == nil {
		return nil, serverutils.Internal(msgLLMNotConfigured, nil)
	}
	if len(req.Messages) == 0 {
		return nil, serverutils.BadRequest("At least one message is required")
	}

	history := make([]llm.Message, 0, len(req.Messages)+1)
	history = append(history, llm.Message{Role: constant.ChatMessageRoleSystem, Content: constant.ChatAssistantSystemPromptV1})
	for _, m := range req.Messages {
		if m.Role != constant.ChatMessageRoleUser && m.Role != constant.ChatMessageRoleAssistant {
			return nil, serverutils.BadRequest("Unsupported message role: " + m.Role)
		}
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}
	return history, nil
}

func (s *chatService) Stream(ctx context.Context, history []llm.Message, onToken llm.TokenHandler) error {
	if s.provider == nil {
		return serverutils.Internal(msgLLMNotConfigured, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	tokens := 0
	err := s.provider.Stream(ctx, history, func(tok string) error {
		tokens++
		return onToken(tok)
	})

	details := map[string]interface{}{"tokens": tokens, "duration_ms": time.Since(start).Milliseconds()}
	if err != nil {
		details["error"] = err
		s.logger.Error("ChatService", "Chat stream failed", details)
		return err
	}
	s.logger.Info("ChatService", "Chat stream completed", details)
	return nil
}

func (s *chatService) Timeout() time.Duration {
	return s.timeout
}
