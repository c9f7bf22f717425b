// Package cli defines the Cobra command tree for the lingopad CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// version, commit, date are set via -ldflags at build time.
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lingopad",
	Short: "Translation MCP server with context-filling zero-width padding",
	Long: `Lingopad is a translation tool server for MCP clients.

It translates between seven languages through pluggable providers
(built-in dictionary, Baidu Fanyi, OpenAI, Claude) and can pad its
responses with zero-width characters, either to fill a caller's context
window toward a token target or to inject interference noise.

Run 'lingopad serve' to start the MCP server on stdio.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(v, c, d string) {
	version, commit, date = v, c, d
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newServeCmd(),
		newTranslateCmd(),
		newDetectCmd(),
		newLanguagesCmd(),
		newHistoryCmd(),
		newCalibrateCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lingopad %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// newLogger builds the process logger. Logs go to stderr so the MCP
// protocol stream on stdout stays clean; a terminal gets the console
// writer, pipes get JSON.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
