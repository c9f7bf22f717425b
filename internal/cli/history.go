package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingopad/lingopad/internal/config"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit int
		stats bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent translations and usage stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(false)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			store := openHistory(cfg, logger)
			if store == nil {
				return fmt.Errorf("history store unavailable")
			}
			defer store.Close()

			if stats {
				st, err := store.Stats()
				if err != nil {
					return err
				}
				fmt.Printf("Translations: %d\n", st.Total)
				for provider, n := range st.ByProvider {
					fmt.Printf("  %-8s %d\n", provider, n)
				}
				for pair, n := range st.ByPair {
					fmt.Printf("  %-8s %d\n", pair, n)
				}
				return nil
			}

			entries, err := store.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No translations recorded.")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("[%s] (%s) %s -> %s\n  %s → %s\n",
					e.CreatedAt.Format("2006-01-02 15:04"), e.Provider,
					e.SourceLang, e.TargetLang, e.SourceText, e.TranslatedText)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show")
	cmd.Flags().BoolVar(&stats, "stats", false, "show aggregate usage stats")
	return cmd
}
