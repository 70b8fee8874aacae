// Package ai wraps the OpenAI-compatible chat API behind the Analyzer
// interfaces used by the digester and the AI service.
package ai

import (
	"fmt"

	"github.com/sashabaranov/go-openai"

	"NetSentry/internal/config"
)

// newClient builds an OpenAI client from the AI config. A custom BaseURL
// lets deployments point at any OpenAI-compatible endpoint.
func newClient(cfg *config.AIConfig) (*openai.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI API key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig), nil
}
