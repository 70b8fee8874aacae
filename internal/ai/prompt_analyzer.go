package ai

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"NetSentry/internal/config"
)

// PromptAnalyzer answers free-form operator prompts as a stream, backing the
// AnalyzePromptStream RPC.
type PromptAnalyzer struct {
	cfg    *config.AIConfig
	client *openai.Client
}

// NewPromptAnalyzer creates a new instance of PromptAnalyzer.
func NewPromptAnalyzer(cfg *config.AIConfig) (*PromptAnalyzer, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return &PromptAnalyzer{cfg: cfg, client: client}, nil
}

// AnalyzeStream processes a prompt and forwards each response chunk to
// sendChunk as it arrives.
func (a *PromptAnalyzer) AnalyzeStream(ctx context.Context, prompt string, sendChunk func(string) error) error {
	req := openai.ChatCompletionRequest{
		Model:     a.cfg.Model,
		MaxTokens: 2048,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: true,
	}

	stream, err := a.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create chat completion stream: %w", err)
	}
	defer stream.Close()

	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil // Stream finished successfully
		}
		if err != nil {
			return fmt.Errorf("stream error: %w", err)
		}

		chunk := response.Choices[0].Delta.Content
		if err := sendChunk(chunk); err != nil {
			// The client likely disconnected mid-stream.
			return fmt.Errorf("failed to send chunk to client: %w", err)
		}
	}
}
