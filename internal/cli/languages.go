package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingopad/lingopad/internal/translate"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			for _, code := range translate.Codes {
				fmt.Printf("%s  %s\n", code, translate.Supported[code])
			}
		},
	}
}
