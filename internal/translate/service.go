package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Recorder stores finished translations and serves cached results.
// Implemented by the history store; a nil Recorder disables caching.
type Recorder interface {
	// Lookup returns the most recent cached translation for the request,
	// if any.
	Lookup(sourceText, sourceLang, targetLang string) (string, bool)

	// Record persists a finished translation. provider names the
	// provider that produced it.
	Record(sourceText, translated, sourceLang, targetLang, provider string) error
}

// Result is a finished translation.
type Result struct {
	Text     string
	Provider string
	Cached   bool
}

// Service runs translations through a primary provider with the
// dictionary as fallback, consulting the history cache first. Remote
// provider failures degrade to the dictionary rather than surfacing to
// the caller.
type Service struct {
	primary  Translator
	fallback Translator
	history  Recorder
	log      zerolog.Logger
}

// NewService wires a Service around the primary provider. history may be
// nil.
func NewService(primary Translator, history Recorder, logger zerolog.Logger) *Service {
	return &Service{
		primary:  primary,
		fallback: NewDict(),
		history:  history,
		log:      logger,
	}
}

// Translate validates the request and produces a translation. Unsupported
// languages and empty text are the only error cases; provider failures
// fall back to the dictionary.
func (s *Service) Translate(ctx context.Context, text, source, target string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("translate: text must not be empty")
	}
	if !IsSupported(source) {
		return Result{}, fmt.Errorf("translate: unsupported source language %q", source)
	}
	if !IsSupported(target) {
		return Result{}, fmt.Errorf("translate: unsupported target language %q", target)
	}

	if source == target {
		return Result{Text: text, Provider: s.primary.Name()}, nil
	}

	if s.history != nil {
		if cached, ok := s.history.Lookup(text, source, target); ok {
			return Result{Text: cached, Provider: s.primary.Name(), Cached: true}, nil
		}
	}

	provider := s.primary
	out, err := provider.Translate(ctx, text, source, target)
	if err != nil {
		s.log.Warn().Err(err).Str("provider", provider.Name()).
			Msg("provider failed, falling back to dictionary")
		provider = s.fallback
		out, err = provider.Translate(ctx, text, source, target)
		if err != nil {
			return Result{}, fmt.Errorf("translate: %w", err)
		}
	}

	if s.history != nil {
		if recErr := s.history.Record(text, out, source, target, provider.Name()); recErr != nil {
			s.log.Warn().Err(recErr).Msg("failed to record translation history")
		}
	}
	return Result{Text: out, Provider: provider.Name()}, nil
}
