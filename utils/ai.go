package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"foundryos/backend/models"
)

type AIConfig struct {
	APIKey   string
	GenModel string
}

func NewAIClient(ctx context.Context, cfg AIConfig) (*genai.Client, error) {
	return genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
}

func GenerateText(ctx context.Context, client *genai.Client, model string, parts ...genai.Part) (string, error) {
	m := client.GenerativeModel(model)
	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if resp != nil {
		for _, c := range resp.Candidates {
			if c == nil || c.Content == nil {
				continue
			}
			for _, p := range c.Content.Parts {
				if t, ok := p.(genai.Text); ok {
					b.WriteString(string(t))
				}
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// GuideFunc produces a short encouragement for a submitted reflection.
type GuideFunc func(ctx context.Context, c models.Covenant, ref models.Reflection) (string, error)

// StaticGuide answers with the covenant's weekly prompt. It is used when no
// AI key is configured and as the fallback when generation fails.
func StaticGuide(_ context.Context, c models.Covenant, _ models.Reflection) (string, error) {
	return "Keep building with purpose. This week, consider: " + c.WeeklyPrompt, nil
}

// GeminiGuide asks Gemini for a few sentences of covenant-grounded feedback.
func GeminiGuide(cfg AIConfig) GuideFunc {
	return func(ctx context.Context, c models.Covenant, ref models.Reflection) (string, error) {
		client, err := NewAIClient(ctx, cfg)
		if err != nil {
			return "", fmt.Errorf("ai client: %w", err)
		}
		defer client.Close()

		prompt := fmt.Sprintf(`You are a mentor for founders who follow the %s (principles: %s).
Reply in at most three sentences of encouragement and one concrete next action.
Weekly focus: %s
Reflection: %s
%s: %s`,
			c.Name, strings.Join(c.PrincipleNames(), ", "),
			ref.WeeklyFocus, ref.Reflection, c.IntentionLabel, ref.PrayerIntention)
		text, err := GenerateText(ctx, client, cfg.GenModel, genai.Text(prompt))
		if err != nil {
			return "", fmt.Errorf("generate guidance: %w", err)
		}
		return text, nil
	}
}
