package ai

import "context"

// Generator sends a system and user prompt to a model and returns its text.
type Generator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

// GeneratorOptions configures a vendor Generator.
type GeneratorOptions struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}
