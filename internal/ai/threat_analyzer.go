package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"NetSentry/internal/config"
)

// ThreatAnalyzer implements the Analyzer interface over the OpenAI API,
// turning alert digests into an operator-facing assessment.
type ThreatAnalyzer struct {
	cfg    *config.AIConfig
	client *openai.Client
}

// NewThreatAnalyzer creates a new instance of ThreatAnalyzer.
func NewThreatAnalyzer(cfg *config.AIConfig) (*ThreatAnalyzer, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ThreatAnalyzer{cfg: cfg, client: client}, nil
}

// AnalyzeThreats analyzes the alert digest and returns the assessment.
func (a *ThreatAnalyzer) AnalyzeThreats(ctx context.Context, input string) (string, error) {
	// Craft the prompt for the AI model
	prompt := fmt.Sprintf(
		"You are a senior intrusion analyst. "+
			"Please analyze the following alert digest from the NetSentry intrusion detection engine. "+
			"The alerts were raised by a machine-learning classifier over per-connection traffic features. "+
			"Assess the likely attack campaign, its severity, and recommended next steps for containment and investigation. "+
			"The output should be clear and actionable.\n\n"+
			"--- Alert Digest ---\n%s\n--- End of Alert Digest ---", input,
	)

	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.cfg.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("AI request timeout: %w", err)
		}
		if errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("AI request canceled by client: %w", err)
		}
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI API returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
