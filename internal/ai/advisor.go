// Package ai asks a text-generation service for personalised skincare advice.
package ai

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/skin-advisor/internal/logger"
	"github.com/spigell/skin-advisor/internal/skincare"
)

// SystemPrompt frames every advice request.
const SystemPrompt = "You are a skincare expert."

const defaultMaxLogLength = 200

//go:embed prompt.md
var promptTemplate string

// Request carries what the model needs to know about a consultation.
type Request struct {
	Issue    skincare.Issue
	SkinType skincare.SkinType
	Answers  []skincare.Answer
}

// Advisor turns a consultation into a prompt and returns the generated advice.
type Advisor struct {
	generator Generator
	provider  string
	logger    *zap.Logger
	maxLogLen int
}

func NewAdvisor(generator Generator, provider string, maxLogLength int, log *zap.Logger) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Advisor{
		generator: generator,
		provider:  provider,
		logger:    logger.WithCommonFields(log, provider, generator.Model()),
		maxLogLen: maxLogLength,
	}
}

// Provider returns the configured provider name.
func (a *Advisor) Provider() string { return a.provider }

// Model returns the model used by the underlying generator.
func (a *Advisor) Model() string { return a.generator.Model() }

// Advise returns generated advice for req. Generator errors are wrapped with
// the provider name; the caller decides how to present them.
func (a *Advisor) Advise(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(string(req.Issue)) == "" {
		return "", errors.New("issue is required")
	}

	prompt := BuildPrompt(req)

	a.logger.Debug("advice request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, SystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", a.provider, err)
	}

	advice := strings.TrimSpace(raw)
	if advice == "" {
		return "", fmt.Errorf("%s: empty advice", a.provider)
	}

	a.logger.Debug("advice response",
		zap.Int("response_length", utf8.RuneCountInString(advice)),
		zap.String("response_preview", logger.TruncateForLog(advice, a.maxLogLen)),
	)

	return advice, nil
}

// BuildPrompt fills the advice template. Answers keep the order in which the
// questions were asked; unanswered questions are listed as "not answered".
func BuildPrompt(req Request) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Skin issue: {{ISSUE}}\nSkin type: {{SKIN_TYPE}}\nUser details:\n{{DETAILS}}\n"
	}

	skin := string(req.SkinType)
	if skin == "" {
		skin = string(skincare.SkinUnknown)
	}

	prompt := strings.ReplaceAll(template, "{{ISSUE}}", string(req.Issue))
	prompt = strings.ReplaceAll(prompt, "{{SKIN_TYPE}}", skin)
	prompt = strings.ReplaceAll(prompt, "{{DETAILS}}", formatDetails(req.Answers))
	return strings.TrimSpace(prompt)
}

func formatDetails(answers []skincare.Answer) string {
	if len(answers) == 0 {
		return "- none"
	}

	lines := make([]string, 0, len(answers))
	for _, answer := range answers {
		text := singleLine(answer.Text)
		if text == "" {
			text = "not answered"
		}
		lines = append(lines, fmt.Sprintf("- %s %s", singleLine(answer.Question), text))
	}
	return strings.Join(lines, "\n")
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
