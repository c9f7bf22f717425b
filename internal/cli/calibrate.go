package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lingopad/lingopad/internal/padding"
)

// calibrateSamples are the filler counts measured per estimation method.
var calibrateSamples = []int{100, 500, 1000, 2000, 5000, 10000}

func newCalibrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calibrate",
		Short: "Measure filler-unit token cost per estimation method",
		Long: `Sweep filler sequences of increasing length through each token
estimation method and report the measured tokens-per-unit ratio. Useful
for sizing CONTEXT_WINDOW_TARGET against a model's real tokenizer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			methods := []padding.Method{padding.MethodHeuristic, padding.MethodPrecise}

			bar := progressbar.NewOptions(len(methods)*len(calibrateSamples),
				progressbar.OptionSetDescription("  Calibrating"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)

			type row struct {
				method padding.Method
				n      int
				tokens int
			}
			var rows []row
			for _, method := range methods {
				est := padding.NewEstimator(method)
				for _, n := range calibrateSamples {
					padded := padding.Distribute("", n)
					rows = append(rows, row{est.Method(), n, est.Estimate(padded)})
					_ = bar.Add(1)
				}
			}
			_ = bar.Finish()

			fmt.Printf("%-10s %8s %8s %8s\n", "method", "units", "tokens", "ratio")
			for _, r := range rows {
				fmt.Printf("%-10s %8d %8d %8.4f\n",
					r.method, r.n, r.tokens, float64(r.tokens)/float64(r.n))
			}
			return nil
		},
	}
}
