package quote

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Generator is the external text-generation collaborator. Both calls
// may fail; callers substitute fixed fallback strings.
type Generator interface {
	DailyQuote(ctx context.Context) (string, error)
	Reflection(ctx context.Context, content string) (string, error)
}

const (
	dailyQuotePrompt = "Generate one short, unique, and uplifting motivational quote."

	reflectionPrompt = "Based on the following journal entry, provide one short, thoughtful, " +
		"and positive question or affirmation to encourage reflection. Keep it under 20 words. " +
		"The entry is: %q"
)

// Gemini generates quotes and reflections through Google's Gemini API.
type Gemini struct {
	model llms.Model
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Gemini{model: llm}, nil
}

func (g *Gemini) DailyQuote(ctx context.Context) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.model, dailyQuotePrompt)
}

func (g *Gemini) Reflection(ctx context.Context, content string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, g.model, fmt.Sprintf(reflectionPrompt, content))
}

// Disabled stands in when no API key is configured, so every call
// takes the fallback path.
type Disabled struct{}

func (Disabled) DailyQuote(context.Context) (string, error) {
	return "", fmt.Errorf("text generation is not configured")
}

func (Disabled) Reflection(context.Context, string) (string, error) {
	return "", fmt.Errorf("text generation is not configured")
}
