package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/skin-advisor/internal/ai"
	"github.com/spigell/skin-advisor/internal/ai/anthropic"
	"github.com/spigell/skin-advisor/internal/ai/gemini"
	"github.com/spigell/skin-advisor/internal/ai/openai"
	"github.com/spigell/skin-advisor/internal/secrets"
)

const (
	providerGroq      = "groq"
	providerOpenAI    = "openai"
	providerGemini    = "gemini"
	providerAnthropic = "anthropic"
)

// apiKeyEnv maps a provider to the environment variable holding its key.
var apiKeyEnv = map[string]string{
	providerGroq:      "GROQ_API_KEY",
	providerOpenAI:    "OPENAI_API_KEY",
	providerGemini:    "GEMINI_API_KEY",
	providerAnthropic: "ANTHROPIC_API_KEY",
}

func newAdvisor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (*ai.Advisor, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider == "" {
		provider = providerGroq
	}

	env, ok := apiKeyEnv[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  provider + " api key",
		Value: cfg.APIKey,
		File:  cfg.APIKeyFile,
		Env:   env,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (or set ai.api-key-file)", err)
	}

	opts := ai.GeneratorOptions{
		APIKey:      apiKey,
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}

	var generator ai.Generator
	switch provider {
	case providerGroq:
		generator, err = openai.NewGroqGenerator(opts)
	case providerOpenAI:
		generator, err = openai.NewGenerator(opts)
	case providerGemini:
		generator, err = gemini.NewGenerator(ctx, opts)
	case providerAnthropic:
		generator, err = anthropic.NewGenerator(opts)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s generator: %w", provider, err)
	}

	return ai.NewAdvisor(generator, provider, cfg.MaxLogLength, logger), nil
}
