package translate

import (
	"context"
	"fmt"
)

// Provider name constants.
const (
	ProviderDict   = "dict"
	ProviderBaidu  = "baidu"
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
)

// Translator is the common interface all translation providers
// implement.
type Translator interface {
	// Translate renders text from the source language into the target
	// language. Both are supported language codes.
	Translate(ctx context.Context, text, source, target string) (string, error)

	// Name returns the provider name.
	Name() string
}

// New constructs the Translator for the named provider.
//
//   - provider: "dict", "baidu", "openai", "claude"
//   - baiduAppID/baiduSecret: Baidu Fanyi credentials (baidu only)
//   - apiKey: provider API key (empty = read from env in the concrete
//     provider; ignored by dict and baidu)
func New(provider, baiduAppID, baiduSecret, apiKey string) (Translator, error) {
	switch provider {
	case ProviderDict:
		return NewDict(), nil
	case ProviderBaidu:
		return NewBaidu(baiduAppID, baiduSecret), nil
	case ProviderOpenAI:
		return NewOpenAI(apiKey), nil
	case ProviderClaude:
		return NewClaude(apiKey), nil
	default:
		return nil, fmt.Errorf("translate: unknown provider %q; valid providers: dict, baidu, openai, claude", provider)
	}
}
