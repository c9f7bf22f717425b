package translate

import (
	"context"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

// claudeTranslator translates via Anthropic's messages API.
type claudeTranslator struct {
	client *anthropic.Client
	model  string
}

// NewClaude creates a Claude translator. If apiKey is empty,
// ANTHROPIC_API_KEY is used.
func NewClaude(apiKey string) Translator {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	return &claudeTranslator{
		client: anthropic.NewClient(apiKey),
		model:  "claude-3-5-haiku-latest",
	}
}

func (c *claudeTranslator) Name() string { return ProviderClaude }

func (c *claudeTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		System:    translationPrompt(source, target),
		MaxTokens: 2048,
		Messages: []anthropic.Message{
			{
				Role:    anthropic.RoleUser,
				Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(text)},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude translate: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("claude translate: empty response")
	}
	return strings.TrimSpace(resp.Content[0].GetText()), nil
}
