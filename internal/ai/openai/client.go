// Package openai generates advice through the Chat Completions API. It also
// serves OpenAI-compatible vendors such as Groq via a base URL.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/spigell/skin-advisor/internal/ai"
)

const (
	// GroqBaseURL is the OpenAI-compatible endpoint of Groq.
	GroqBaseURL = "https://api.groq.com/openai/v1/"
	// GroqDefaultModel is used for Groq when no model is configured.
	GroqDefaultModel = "llama-3.1-8b-instant"

	defaultModel = "gpt-4o-mini"
)

// Generator implements ai.Generator on top of openai-go.
type Generator struct {
	client      openai.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewGenerator builds a Chat Completions generator. SDK retries are turned
// off; a failed call is reported to the caller right away.
func NewGenerator(opts ai.GeneratorOptions) (*Generator, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL := strings.TrimSpace(opts.BaseURL); baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultModel
	}

	return &Generator{
		client:      openai.NewClient(reqOpts...),
		model:       model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
	}, nil
}

// NewGroqGenerator is NewGenerator with Groq's endpoint and default model.
func NewGroqGenerator(opts ai.GeneratorOptions) (*Generator, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = GroqBaseURL
	}
	if strings.TrimSpace(opts.Model) == "" {
		opts.Model = GroqDefaultModel
	}
	return NewGenerator(opts)
}

func (g *Generator) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if system = strings.TrimSpace(system); system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(g.model),
		Messages:    messages,
		Temperature: openai.Float(g.temperature),
	}
	if g.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(g.maxTokens))
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completions: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("response contained no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("response contained no content")
	}
	return content, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}
