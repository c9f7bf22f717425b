package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lingopad/lingopad/internal/translate"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <text>",
		Short: "Detect the language of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("text must not be empty")
			}

			code, confidence := translate.Detect(text)
			fmt.Printf("%s (%s), confidence %.0f%%\n", translate.Name(code), code, confidence*100)
			return nil
		},
	}
}
