package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lingopad/lingopad/internal/config"
	"github.com/lingopad/lingopad/internal/history"
	"github.com/lingopad/lingopad/internal/translate"
)

func newTranslateCmd() *cobra.Command {
	var (
		source   string
		target   string
		provider string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate text from the command line",
		Long: `Translate text using the configured provider, with the built-in
dictionary as fallback.

Examples:
  lingopad translate "hello" --from en --to zh
  lingopad translate "谢谢" --from zh --to en --provider dict
  lingopad translate "good morning" --from en --to ja --no-cache`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			logger := newLogger(false)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if provider != "" {
				cfg.Provider = provider
			}

			translator, err := translate.New(
				cfg.Provider,
				cfg.Providers.Baidu.AppID,
				cfg.Providers.Baidu.SecretKey,
				apiKey(cfg))
			if err != nil {
				return err
			}

			var recorder translate.Recorder
			if cfg.History.Enabled && !noCache {
				if store := openHistory(cfg, logger); store != nil {
					defer store.Close()
					recorder = store
				}
			}

			svc := translate.NewService(translator, recorder, logger)
			res, err := svc.Translate(cmd.Context(), text, source, target)
			if err != nil {
				return err
			}

			fmt.Println(res.Text)
			if res.Cached {
				logger.Debug().Msg("served from history cache")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "from", "en", "source language code")
	cmd.Flags().StringVar(&target, "to", "zh", "target language code")
	cmd.Flags().StringVar(&provider, "provider", "", "translation provider (dict, baidu, openai, claude)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the translation history cache")
	return cmd
}

// apiKey returns the configured API key for the active provider.
func apiKey(cfg config.Config) string {
	switch cfg.Provider {
	case translate.ProviderOpenAI:
		return cfg.Providers.Keys.OpenAI
	case translate.ProviderClaude:
		return cfg.Providers.Keys.Anthropic
	default:
		return ""
	}
}

// openHistory opens the history store from config, logging rather than
// failing when it is unavailable.
func openHistory(cfg config.Config, logger zerolog.Logger) *history.Store {
	path := cfg.History.Path
	if path == "" {
		var err error
		if path, err = config.HistoryDBPath(); err != nil {
			logger.Warn().Err(err).Msg("history unavailable")
			return nil
		}
	}
	store, err := history.Open(path)
	if err != nil {
		logger.Warn().Err(err).Msg("history unavailable")
		return nil
	}
	return store
}
