package model

import (
	"context"
)

// Analyzer defines the standard interface for an AI analyzer.
type Analyzer interface {
	// AnalyzeThreats receives a textual threat summary and returns the
	// analysis result from the AI model.
	AnalyzeThreats(ctx context.Context, input string) (string, error)
}
