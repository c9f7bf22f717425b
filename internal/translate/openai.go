package translate

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// openaiTranslator translates via an OpenAI chat completion.
type openaiTranslator struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI translator. If apiKey is empty,
// OPENAI_API_KEY is used.
func NewOpenAI(apiKey string) Translator {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	return &openaiTranslator{
		client: openai.NewClient(apiKey),
		model:  "gpt-4o-mini",
	}
}

func (o *openaiTranslator) Name() string { return ProviderOpenAI }

func (o *openaiTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: translationPrompt(source, target),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		MaxTokens:   2048,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("openai translate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai translate: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// translationPrompt is the system prompt shared by the LLM-backed
// providers.
func translationPrompt(source, target string) string {
	return fmt.Sprintf(
		"You are a translator. Translate the user's text from %s to %s. Reply with the translation only, no commentary.",
		Name(source), Name(target))
}
